package render

import (
	"testing"

	"github.com/meshforge/meshgen/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func request(domain string) types.GenerationRequest {
	return types.GenerationRequest{
		Service:   "checkout",
		Namespace: "payments",
		Domain:    domain,
	}
}

func TestManifestsCoverAllKinds(t *testing.T) {
	manifests := Manifests(request("example.com"))
	require.Len(t, manifests, 4)

	for i, kind := range types.Kinds() {
		m := manifests[i]
		assert.Equal(t, kind, m.Kind)
		assert.Equal(t, types.IstioAPIVersion, m.APIVersion)
		assert.Equal(t, types.ResourceName("checkout", kind), m.Metadata.Name)
		assert.Equal(t, "payments", m.Metadata.Namespace)
	}
}

func TestVirtualService(t *testing.T) {
	t.Run("with domain", func(t *testing.T) {
		m := VirtualService(request("example.com"))
		spec, ok := m.Spec.(types.VirtualServiceSpec)
		require.True(t, ok)

		assert.Equal(t, []string{"checkout.example.com"}, spec.Hosts)
		require.Len(t, spec.HTTP, 1)
		require.Len(t, spec.HTTP[0].Route, 1)
		route := spec.HTTP[0].Route[0]
		assert.Equal(t, "checkout.example.com", route.Destination.Host)
		assert.Equal(t, "v1", route.Destination.Subset)
		assert.Equal(t, 100, route.Weight)
	})

	t.Run("without domain", func(t *testing.T) {
		m := VirtualService(request(""))
		spec := m.Spec.(types.VirtualServiceSpec)
		assert.Equal(t, []string{"checkout"}, spec.Hosts)
		assert.Equal(t, "checkout", spec.HTTP[0].Route[0].Destination.Host)
	})
}

func TestDestinationRule(t *testing.T) {
	m := DestinationRule(request("example.com"))
	spec, ok := m.Spec.(types.DestinationRuleSpec)
	require.True(t, ok)

	assert.Equal(t, "checkout.example.com", spec.Host)
	require.NotNil(t, spec.TrafficPolicy)
	require.NotNil(t, spec.TrafficPolicy.LoadBalancer)
	assert.Equal(t, "ROUND_ROBIN", spec.TrafficPolicy.LoadBalancer.Simple)
	require.Len(t, spec.Subsets, 1)
	assert.Equal(t, "v1", spec.Subsets[0].Name)
	assert.Equal(t, map[string]string{"version": "v1"}, spec.Subsets[0].Labels)
}

func TestGateway(t *testing.T) {
	t.Run("with domain", func(t *testing.T) {
		m := Gateway(request("example.com"))
		spec := m.Spec.(types.GatewaySpec)

		assert.Equal(t, map[string]string{"istio": "ingressgateway"}, spec.Selector)
		require.Len(t, spec.Servers, 1)
		server := spec.Servers[0]
		assert.Equal(t, 80, server.Port.Number)
		assert.Equal(t, "http", server.Port.Name)
		assert.Equal(t, "HTTP", server.Port.Protocol)
		assert.Equal(t, []string{"*.example.com"}, server.Hosts)
	})

	t.Run("without domain", func(t *testing.T) {
		m := Gateway(request(""))
		spec := m.Spec.(types.GatewaySpec)
		assert.Equal(t, []string{"*"}, spec.Servers[0].Hosts)
	})
}

func TestServiceEntry(t *testing.T) {
	t.Run("with domain", func(t *testing.T) {
		m := ServiceEntry(request("example.com"))
		spec := m.Spec.(types.ServiceEntrySpec)

		assert.Equal(t, []string{"checkout.example.com"}, spec.Hosts)
		require.Len(t, spec.Ports, 1)
		assert.Equal(t, 443, spec.Ports[0].Number)
		assert.Equal(t, "https", spec.Ports[0].Name)
		assert.Equal(t, "HTTPS", spec.Ports[0].Protocol)
		assert.Equal(t, "DNS", spec.Resolution)
		assert.Equal(t, "MESH_EXTERNAL", spec.Location)
	})

	t.Run("without domain falls back to example.com", func(t *testing.T) {
		m := ServiceEntry(request(""))
		spec := m.Spec.(types.ServiceEntrySpec)
		assert.Equal(t, []string{"checkout.example.com"}, spec.Hosts)
	})
}

func TestForKind(t *testing.T) {
	req := request("example.com")
	for _, kind := range types.Kinds() {
		m := ForKind(kind, req)
		assert.Equal(t, kind, m.Kind)
	}

	unknown := ForKind(types.ResourceKind("Sidecar"), req)
	assert.Empty(t, unknown.Kind)
}

func TestRenderingIsDeterministic(t *testing.T) {
	req := request("example.com")
	assert.Equal(t, Manifests(req), Manifests(req))
}
