package types

import (
	"fmt"
	"strings"
)

// DefaultNamespace is used when a request does not name a namespace.
const DefaultNamespace = "default"

// GenerationRequest holds the user-supplied parameters for a single
// generate or delete invocation.
type GenerationRequest struct {
	// Name of the service the manifests are generated for (required)
	Service string `json:"service" yaml:"service"`

	// Namespace the manifests belong to (optional, defaults to "default")
	Namespace string `json:"namespace,omitempty" yaml:"namespace,omitempty"`

	// Domain appended to the service host, e.g. "example.com" (optional)
	Domain string `json:"domain,omitempty" yaml:"domain,omitempty"`
}

// ApplyDefaults fills in defaults for optional fields.
func (r *GenerationRequest) ApplyDefaults() {
	if r.Namespace == "" {
		r.Namespace = DefaultNamespace
	}
}

// Validate checks that the request can be rendered and stored.
func (r *GenerationRequest) Validate() error {
	if r.Service == "" {
		return NewValidationError("service name is required")
	}
	for _, field := range []struct{ name, value string }{
		{"service", r.Service},
		{"namespace", r.Namespace},
		{"domain", r.Domain},
	} {
		if strings.ContainsAny(field.value, "/\\ ") {
			return NewValidationError(fmt.Sprintf("%s must not contain spaces or path separators: %q", field.name, field.value))
		}
	}
	return nil
}

// ResourceName returns the convention-based name for a service and kind,
// e.g. "checkout-virtualservice". Names are deterministic and cannot
// collide across kinds for the same service.
func ResourceName(service string, kind ResourceKind) string {
	return service + "-" + kind.Slug()
}

// FileName returns the file name a rendered manifest is stored under.
func FileName(service string, kind ResourceKind) string {
	return ResourceName(service, kind) + ".yaml"
}
