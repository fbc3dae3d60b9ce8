package types

// Manifest is a rendered routing resource, ready to be serialized as a
// YAML document. The Spec field holds the kind-specific structure.
type Manifest struct {
	APIVersion string       `json:"apiVersion" yaml:"apiVersion"`
	Kind       ResourceKind `json:"kind" yaml:"kind"`
	Metadata   Metadata     `json:"metadata" yaml:"metadata"`
	Spec       interface{}  `json:"spec" yaml:"spec"`
}

// Metadata identifies a manifest within its namespace.
type Metadata struct {
	Name      string `json:"name" yaml:"name"`
	Namespace string `json:"namespace" yaml:"namespace"`
}

// VirtualServiceSpec routes HTTP traffic for a single host to a subset.
type VirtualServiceSpec struct {
	Hosts []string    `json:"hosts" yaml:"hosts"`
	HTTP  []HTTPRoute `json:"http" yaml:"http"`
}

// HTTPRoute is a weighted set of route destinations.
type HTTPRoute struct {
	Route []RouteDestination `json:"route" yaml:"route"`
}

// RouteDestination sends a share of traffic to a destination subset.
type RouteDestination struct {
	Destination Destination `json:"destination" yaml:"destination"`
	Weight      int         `json:"weight" yaml:"weight"`
}

// Destination names a host and optional subset to route to.
type Destination struct {
	Host   string `json:"host" yaml:"host"`
	Subset string `json:"subset,omitempty" yaml:"subset,omitempty"`
}

// DestinationRuleSpec configures traffic policy and subsets for a host.
type DestinationRuleSpec struct {
	Host          string         `json:"host" yaml:"host"`
	TrafficPolicy *TrafficPolicy `json:"trafficPolicy,omitempty" yaml:"trafficPolicy,omitempty"`
	Subsets       []Subset       `json:"subsets,omitempty" yaml:"subsets,omitempty"`
}

// TrafficPolicy holds load balancing settings for a destination.
type TrafficPolicy struct {
	LoadBalancer *LoadBalancerSettings `json:"loadBalancer,omitempty" yaml:"loadBalancer,omitempty"`
}

// LoadBalancerSettings selects a load balancing algorithm.
type LoadBalancerSettings struct {
	Simple string `json:"simple,omitempty" yaml:"simple,omitempty"`
}

// Subset is a labeled version of a destination's workloads.
type Subset struct {
	Name   string            `json:"name" yaml:"name"`
	Labels map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`
}

// GatewaySpec binds server ports and hosts to a gateway workload.
type GatewaySpec struct {
	Selector map[string]string `json:"selector" yaml:"selector"`
	Servers  []Server          `json:"servers" yaml:"servers"`
}

// Server is one port/hosts binding on a gateway.
type Server struct {
	Port  Port     `json:"port" yaml:"port"`
	Hosts []string `json:"hosts" yaml:"hosts"`
}

// Port describes a network port exposed by a gateway or service entry.
type Port struct {
	Number   int    `json:"number" yaml:"number"`
	Name     string `json:"name" yaml:"name"`
	Protocol string `json:"protocol" yaml:"protocol"`
}

// ServiceEntrySpec registers hosts outside the mesh.
type ServiceEntrySpec struct {
	Hosts      []string `json:"hosts" yaml:"hosts"`
	Ports      []Port   `json:"ports" yaml:"ports"`
	Resolution string   `json:"resolution" yaml:"resolution"`
	Location   string   `json:"location" yaml:"location"`
}
