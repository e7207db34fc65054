package observability

import (
	"context"
	"net/http"
	"strings"
)

// HealthStatus is the state reported on /health.
type HealthStatus string

const (
	HealthStatusUp       HealthStatus = "up"
	HealthStatusDown     HealthStatus = "down"
	HealthStatusDegraded HealthStatus = "degraded"
)

// Health describes one part of the receiver, such as the mapper registry or
// the telemetry exporter.
type Health struct {
	Name    string            `json:"name"`
	Status  HealthStatus      `json:"status"`
	Message string            `json:"message,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// ServiceHealth aggregates component health. The worst component status wins.
type ServiceHealth struct {
	Service    string       `json:"service"`
	Status     HealthStatus `json:"status"`
	Version    string       `json:"version,omitempty"`
	Components []Health     `json:"components,omitempty"`
}

// HealthChecker reports the health of an optional dependency.
type HealthChecker interface {
	CheckHealth(ctx context.Context) Health
}

// NewServiceHealth starts an up report.
func NewServiceHealth(service, version string) *ServiceHealth {
	return &ServiceHealth{
		Service: service,
		Status:  HealthStatusUp,
		Version: version,
	}
}

// AddComponent records ch and lowers the overall status if needed.
func (sh *ServiceHealth) AddComponent(ch Health) {
	sh.Components = append(sh.Components, ch)

	switch ch.Status {
	case HealthStatusDown:
		sh.Status = HealthStatusDown
	case HealthStatusDegraded:
		if sh.Status != HealthStatusDown {
			sh.Status = HealthStatusDegraded
		}
	}
}

// HTTPStatus is 503 when any component is down, 200 otherwise.
func (sh *ServiceHealth) HTTPStatus() int {
	if sh.Status == HealthStatusDown {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}

// ProvidersHealth reports a component that serves the named providers. A
// component with no providers is degraded.
func ProvidersHealth(name string, providers []string) Health {
	if len(providers) == 0 {
		return Health{Name: name, Status: HealthStatusDegraded, Message: "no providers registered"}
	}
	return Health{
		Name:    name,
		Status:  HealthStatusUp,
		Details: map[string]string{"providers": strings.Join(providers, ",")},
	}
}
