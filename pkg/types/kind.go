package types

// ResourceKind identifies one of the Istio routing resource kinds that
// meshgen generates.
type ResourceKind string

const (
	// KindVirtualService routes traffic for a service host.
	KindVirtualService ResourceKind = "VirtualService"

	// KindDestinationRule configures load balancing and subsets for a host.
	KindDestinationRule ResourceKind = "DestinationRule"

	// KindGateway exposes hosts on the mesh ingress gateway.
	KindGateway ResourceKind = "Gateway"

	// KindServiceEntry registers an external host with the mesh.
	KindServiceEntry ResourceKind = "ServiceEntry"
)

// IstioAPIVersion is the apiVersion stamped on every generated manifest.
const IstioAPIVersion = "networking.istio.io/v1alpha3"

// Kinds returns all resource kinds in generation order.
func Kinds() []ResourceKind {
	return []ResourceKind{
		KindVirtualService,
		KindDestinationRule,
		KindGateway,
		KindServiceEntry,
	}
}

// Slug returns the lowercase identifier for the kind, used in resource
// names and file names.
func (k ResourceKind) Slug() string {
	switch k {
	case KindVirtualService:
		return "virtualservice"
	case KindDestinationRule:
		return "destinationrule"
	case KindGateway:
		return "gateway"
	case KindServiceEntry:
		return "serviceentry"
	default:
		return ""
	}
}

// Valid reports whether k is one of the known resource kinds.
func (k ResourceKind) Valid() bool {
	return k.Slug() != ""
}
