package health

import (
	"context"
	"net"
	"sync"
	"time"
)

// Status is the reported state of the service or one of its components.
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusDegraded  Status = "degraded"
	StatusUnhealthy Status = "unhealthy"
)

// CheckFunc probes a single dependency. A nil error means the dependency is
// healthy.
type CheckFunc func(ctx context.Context) error

// Component is the outcome of one dependency check.
type Component struct {
	Name      string  `json:"name"`
	Status    Status  `json:"status"`
	LatencyMS float64 `json:"latency_ms"`
	Message   string  `json:"message,omitempty"`
}

// Report is the aggregate health of the service at one point in time.
type Report struct {
	Status        Status      `json:"status"`
	Service       string      `json:"service"`
	Version       string      `json:"version"`
	UptimeSeconds float64     `json:"uptime_seconds"`
	Timestamp     string      `json:"timestamp"`
	Components    []Component `json:"components,omitempty"`
}

// Checker runs named dependency checks and aggregates the outcome. A service
// with no failing components is healthy; any failure degrades it.
type Checker struct {
	service string
	version string
	started time.Time

	mu     sync.RWMutex
	names  []string // registration order, kept stable in reports
	checks map[string]CheckFunc
}

// NewChecker creates a checker for the named service.
func NewChecker(service, version string) *Checker {
	if version == "" {
		version = "1.0.0"
	}
	return &Checker{
		service: service,
		version: version,
		started: time.Now(),
		checks:  make(map[string]CheckFunc),
	}
}

// AddCheck registers a named dependency check. Re-registering a name
// replaces the previous check.
func (c *Checker) AddCheck(name string, fn CheckFunc) {
	if name == "" || fn == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.checks[name]; !exists {
		c.names = append(c.names, name)
	}
	c.checks[name] = fn
}

// Run executes all registered checks and returns the aggregate report.
func (c *Checker) Run(ctx context.Context) Report {
	c.mu.RLock()
	names := make([]string, len(c.names))
	copy(names, c.names)
	checks := make(map[string]CheckFunc, len(c.checks))
	for name, fn := range c.checks {
		checks[name] = fn
	}
	c.mu.RUnlock()

	components := make([]Component, 0, len(names))
	status := StatusHealthy

	for _, name := range names {
		start := time.Now()
		err := checks[name](ctx)
		latency := float64(time.Since(start).Microseconds()) / 1000

		component := Component{Name: name, Status: StatusHealthy, LatencyMS: latency}
		if err != nil {
			component.Status = StatusUnhealthy
			component.Message = err.Error()
			status = StatusDegraded
		}
		components = append(components, component)
	}

	return Report{
		Status:        status,
		Service:       c.service,
		Version:       c.version,
		UptimeSeconds: time.Since(c.started).Seconds(),
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		Components:    components,
	}
}

// TCPCheck probes a TCP endpoint such as "db:5432".
func TCPCheck(addr string, timeout time.Duration) CheckFunc {
	return func(ctx context.Context) error {
		d := net.Dialer{Timeout: timeout}
		conn, err := d.DialContext(ctx, "tcp", addr)
		if err != nil {
			return err
		}
		return conn.Close()
	}
}
