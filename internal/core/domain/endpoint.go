package domain

import (
	"fmt"
	"net"
	"regexp"
	"strconv"
	"strings"
)

// Defaults used when a product URL leaves parts out.
const (
	DefaultScheme  = "http"
	DefaultHost    = "localhost"
	DefaultPort    = 8001
	DefaultProduct = "Default"

	// APIVersion is the service version segment used in every API path.
	APIVersion = "v6"
)

var productNameRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// Endpoint is the fully composed address of a remote service.
// It is immutable once built.
type Endpoint struct {
	Scheme string
	Host   string
	Port   int
	Path   string
}

// NewEndpoint validates and composes an endpoint.
func NewEndpoint(scheme, host string, port int, path string) (Endpoint, error) {
	if scheme != "http" && scheme != "https" {
		return Endpoint{}, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidInput, scheme)
	}
	if host == "" {
		return Endpoint{}, fmt.Errorf("%w: empty host", ErrInvalidInput)
	}
	if port <= 0 || port > 65535 {
		return Endpoint{}, fmt.Errorf("%w: port %d out of range", ErrInvalidInput, port)
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return Endpoint{Scheme: scheme, Host: host, Port: port, Path: path}, nil
}

// URL returns the endpoint as an absolute URL.
func (e Endpoint) URL() string {
	return e.Scheme + "://" + net.JoinHostPort(e.Host, strconv.Itoa(e.Port)) + e.Path
}

// String implements fmt.Stringer.
func (e Endpoint) String() string {
	return e.URL()
}

// ProductURL identifies one product on a report server, as typed by users:
// "https://server:8443/MyProduct".
type ProductURL struct {
	Scheme  string
	Host    string
	Port    int
	Product string
}

// ParseProductURL parses [scheme://]host[:port][/product]. Missing parts fall
// back to http, localhost, 8001 (443 for https) and "Default".
func ParseProductURL(raw string) (ProductURL, error) {
	p := ProductURL{Scheme: DefaultScheme, Host: DefaultHost, Product: DefaultProduct}

	rest := strings.TrimSpace(raw)
	if rest == "" {
		p.Port = DefaultPort
		return p, nil
	}

	if idx := strings.Index(rest, "://"); idx >= 0 {
		p.Scheme = strings.ToLower(rest[:idx])
		rest = rest[idx+3:]
	}
	if p.Scheme != "http" && p.Scheme != "https" {
		return ProductURL{}, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidInput, p.Scheme)
	}

	hostPort := rest
	if idx := strings.Index(rest, "/"); idx >= 0 {
		hostPort = rest[:idx]
		product := strings.Trim(rest[idx+1:], "/")
		if product != "" {
			p.Product = product
		}
	}
	if !productNameRe.MatchString(p.Product) {
		return ProductURL{}, fmt.Errorf("%w: invalid product name %q", ErrInvalidInput, p.Product)
	}

	host, port, err := splitHostPort(hostPort)
	if err != nil {
		return ProductURL{}, err
	}
	if host != "" {
		p.Host = host
	}
	switch {
	case port != 0:
		p.Port = port
	case p.Scheme == "https":
		p.Port = 443
	default:
		p.Port = DefaultPort
	}
	return p, nil
}

func splitHostPort(hostPort string) (string, int, error) {
	if hostPort == "" {
		return "", 0, nil
	}

	// Bare IPv6 literal or a host without port.
	if !strings.Contains(hostPort, ":") ||
		(strings.HasPrefix(hostPort, "[") && strings.HasSuffix(hostPort, "]")) {
		return strings.Trim(hostPort, "[]"), 0, nil
	}

	host, portStr, err := net.SplitHostPort(hostPort)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 || port > 65535 {
		return "", 0, fmt.Errorf("%w: invalid port %q", ErrInvalidInput, portStr)
	}
	return host, port, nil
}

// String returns the canonical product URL.
func (p ProductURL) String() string {
	return p.Scheme + "://" + net.JoinHostPort(p.Host, strconv.Itoa(p.Port)) + "/" + p.Product
}

// ReportEndpoint returns the address of the product's report service.
func (p ProductURL) ReportEndpoint() Endpoint {
	return Endpoint{
		Scheme: p.Scheme,
		Host:   p.Host,
		Port:   p.Port,
		Path:   "/" + p.Product + "/" + APIVersion + "/CodeCheckerService",
	}
}

// AuthEndpoint returns the address of the server's authentication service.
// Authentication is server wide, so the product is not part of the path.
func (p ProductURL) AuthEndpoint() Endpoint {
	return Endpoint{
		Scheme: p.Scheme,
		Host:   p.Host,
		Port:   p.Port,
		Path:   "/" + APIVersion + "/Authentication",
	}
}
