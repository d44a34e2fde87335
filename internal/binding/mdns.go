package binding

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/grandcat/zeroconf"
	"go.uber.org/zap"

	"github.com/muurk/spinbutton/internal/logging"
)

const (
	// ServiceType is the mDNS service type announced by bindings
	ServiceType = "_spinbutton._tcp"

	// ServiceDomain is the mDNS domain (typically "local.")
	ServiceDomain = "local."

	// DefaultScanTimeout is the default timeout for discovery
	DefaultScanTimeout = 5 * time.Second
)

// Endpoint is a binding found on the network.
type Endpoint struct {
	Instance string
	Hostname string
	IP       string
	Port     int
	WidgetID string
	Path     string

	// Metadata holds all TXT record pairs
	Metadata map[string]string

	DiscoveredAt time.Time
}

// URL returns the WebSocket URL of the endpoint.
func (e *Endpoint) URL() string {
	host := e.IP
	if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}
	return fmt.Sprintf("ws://%s:%d%s", host, e.Port, e.Path)
}

// String returns a human-readable string representation of the endpoint
func (e *Endpoint) String() string {
	return fmt.Sprintf("%s (%s) at %s", e.WidgetID, e.Instance, e.URL())
}

// Advertisement is a running mDNS registration.
type Advertisement struct {
	server *zeroconf.Server
}

// Advertise announces a binding for widgetID on port.
func Advertise(instance, widgetID string, port int) (*Advertisement, error) {
	txt := []string{"id=" + widgetID, "path=" + Path}
	server, err := zeroconf.Register(instance, ServiceType, ServiceDomain, port, txt, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to register mDNS service: %w", err)
	}
	logging.Info("Advertising binding",
		zap.String("instance", instance),
		zap.String("id", widgetID),
		zap.Int("port", port),
	)
	return &Advertisement{server: server}, nil
}

// Stop withdraws the announcement.
func (a *Advertisement) Stop() {
	if a != nil && a.server != nil {
		a.server.Shutdown()
	}
}

// Scanner handles mDNS binding discovery
type Scanner struct {
	// Timeout is the maximum time to wait for answers
	Timeout time.Duration
}

// NewScanner creates a new mDNS scanner with default settings
func NewScanner() *Scanner {
	return &Scanner{
		Timeout: DefaultScanTimeout,
	}
}

// Scan collects every binding that answers before the timeout or ctx ends.
func (s *Scanner) Scan(ctx context.Context) ([]*Endpoint, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS resolver: %w", err)
	}

	entries := make(chan *zeroconf.ServiceEntry)
	var (
		mu        sync.Mutex
		endpoints []*Endpoint
		seen      = make(map[string]bool)
	)

	go func() {
		for entry := range entries {
			ep := parseServiceEntry(entry)
			if ep == nil {
				continue
			}
			mu.Lock()
			key := ep.URL()
			if !seen[key] {
				seen[key] = true
				endpoints = append(endpoints, ep)
			}
			mu.Unlock()
		}
	}()

	if err := resolver.Browse(ctx, ServiceType, ServiceDomain, entries); err != nil {
		return nil, fmt.Errorf("failed to browse for mDNS services: %w", err)
	}

	<-ctx.Done()

	mu.Lock()
	defer mu.Unlock()
	result := make([]*Endpoint, len(endpoints))
	copy(result, endpoints)
	return result, nil
}

// parseServiceEntry converts a zeroconf service entry to an Endpoint.
// Returns nil if the entry carries no widget id or no address.
func parseServiceEntry(entry *zeroconf.ServiceEntry) *Endpoint {
	if entry == nil {
		return nil
	}

	metadata := make(map[string]string)
	for _, txt := range entry.Text {
		if k, v, ok := strings.Cut(txt, "="); ok {
			metadata[k] = v
		}
	}
	id := metadata["id"]
	if id == "" {
		return nil
	}

	var ip string
	switch {
	case len(entry.AddrIPv4) > 0:
		ip = entry.AddrIPv4[0].String()
	case len(entry.AddrIPv6) > 0:
		ip = entry.AddrIPv6[0].String()
	default:
		return nil
	}

	path := metadata["path"]
	if path == "" {
		path = Path
	}

	return &Endpoint{
		Instance:     entry.Instance,
		Hostname:     strings.TrimSuffix(entry.HostName, "."),
		IP:           ip,
		Port:         entry.Port,
		WidgetID:     id,
		Path:         path,
		Metadata:     metadata,
		DiscoveredAt: time.Now(),
	}
}
