// Package render builds the fixed routing manifest skeletons from a
// generation request. Rendering is pure: the same request always
// produces the same manifests.
package render

import (
	"github.com/meshforge/meshgen/pkg/types"
)

const (
	defaultSubset      = "v1"
	externalFallback   = "example.com"
	roundRobinPolicy   = "ROUND_ROBIN"
	ingressGatewayName = "ingressgateway"
)

// Manifests renders all four routing manifests for the request, in
// generation order.
func Manifests(req types.GenerationRequest) []types.Manifest {
	return []types.Manifest{
		VirtualService(req),
		DestinationRule(req),
		Gateway(req),
		ServiceEntry(req),
	}
}

// ForKind renders the manifest for a single resource kind.
func ForKind(kind types.ResourceKind, req types.GenerationRequest) types.Manifest {
	switch kind {
	case types.KindVirtualService:
		return VirtualService(req)
	case types.KindDestinationRule:
		return DestinationRule(req)
	case types.KindGateway:
		return Gateway(req)
	case types.KindServiceEntry:
		return ServiceEntry(req)
	default:
		return types.Manifest{}
	}
}

// VirtualService routes all HTTP traffic for the service host to the
// default subset.
func VirtualService(req types.GenerationRequest) types.Manifest {
	host := serviceHost(req)
	return manifest(types.KindVirtualService, req, types.VirtualServiceSpec{
		Hosts: []string{host},
		HTTP: []types.HTTPRoute{
			{
				Route: []types.RouteDestination{
					{
						Destination: types.Destination{
							Host:   host,
							Subset: defaultSubset,
						},
						Weight: 100,
					},
				},
			},
		},
	})
}

// DestinationRule configures round-robin load balancing and the default
// subset for the service host.
func DestinationRule(req types.GenerationRequest) types.Manifest {
	return manifest(types.KindDestinationRule, req, types.DestinationRuleSpec{
		Host: serviceHost(req),
		TrafficPolicy: &types.TrafficPolicy{
			LoadBalancer: &types.LoadBalancerSettings{
				Simple: roundRobinPolicy,
			},
		},
		Subsets: []types.Subset{
			{
				Name:   defaultSubset,
				Labels: map[string]string{"version": defaultSubset},
			},
		},
	})
}

// Gateway exposes plain HTTP for the domain on the mesh ingress gateway.
// Without a domain the gateway accepts any host.
func Gateway(req types.GenerationRequest) types.Manifest {
	hosts := []string{"*"}
	if req.Domain != "" {
		hosts = []string{"*." + req.Domain}
	}
	return manifest(types.KindGateway, req, types.GatewaySpec{
		Selector: map[string]string{"istio": ingressGatewayName},
		Servers: []types.Server{
			{
				Port: types.Port{
					Number:   80,
					Name:     "http",
					Protocol: "HTTP",
				},
				Hosts: hosts,
			},
		},
	})
}

// ServiceEntry registers the service's external HTTPS host with the mesh.
// Without a domain the host falls back to <service>.example.com.
func ServiceEntry(req types.GenerationRequest) types.Manifest {
	domain := req.Domain
	if domain == "" {
		domain = externalFallback
	}
	return manifest(types.KindServiceEntry, req, types.ServiceEntrySpec{
		Hosts: []string{req.Service + "." + domain},
		Ports: []types.Port{
			{
				Number:   443,
				Name:     "https",
				Protocol: "HTTPS",
			},
		},
		Resolution: "DNS",
		Location:   "MESH_EXTERNAL",
	})
}

func manifest(kind types.ResourceKind, req types.GenerationRequest, spec interface{}) types.Manifest {
	return types.Manifest{
		APIVersion: types.IstioAPIVersion,
		Kind:       kind,
		Metadata: types.Metadata{
			Name:      types.ResourceName(req.Service, kind),
			Namespace: req.Namespace,
		},
		Spec: spec,
	}
}

// serviceHost is the host the VirtualService and DestinationRule target:
// the service's FQDN when a domain was supplied, the bare service name
// otherwise.
func serviceHost(req types.GenerationRequest) string {
	if req.Domain != "" {
		return req.Service + "." + req.Domain
	}
	return req.Service
}
