package mcp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/2yum7/forword/pkg/app"
)

// Transport selects how the journal is exposed to assistants.
type Transport string

const (
	// TransportStdio speaks MCP over stdin and stdout, the way desktop
	// assistants launch local tools.
	TransportStdio Transport = "stdio"
	// TransportHTTP serves the streamable HTTP transport.
	TransportHTTP Transport = "http"
)

const (
	DefaultHTTPHost     = "127.0.0.1"
	DefaultHTTPPort     = 7733
	DefaultEndpointPath = "/forword/mcp"

	instructions = "This is a personal journal. Entries are append only: " +
		"they can be listed, searched, read and added, never edited. " +
		"Prefer journal_stats and search_entries over dumping every entry."
)

// ParseTransport maps a flag value to a Transport. Blank means stdio.
func ParseTransport(s string) (Transport, error) {
	switch t := Transport(strings.ToLower(strings.TrimSpace(s))); t {
	case "":
		return TransportStdio, nil
	case TransportStdio, TransportHTTP:
		return t, nil
	default:
		return "", fmt.Errorf("unsupported transport %q (expected stdio or http)", s)
	}
}

// EndpointPath cleans an HTTP endpoint path, falling back to
// DefaultEndpointPath.
func EndpointPath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return DefaultEndpointPath
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

// ListenURL is the address a client should connect to once the server is
// bound to addr. Wildcard hosts are shown as loopback.
func ListenURL(addr net.Addr, host, path string, tls bool) string {
	scheme := "http"
	if tls {
		scheme = "https"
	}
	tcp, ok := addr.(*net.TCPAddr)
	if !ok {
		return fmt.Sprintf("%s://%s%s", scheme, addr.String(), path)
	}
	switch host {
	case "", "0.0.0.0", "::":
		host = DefaultHTTPHost
		if tcp.IP != nil && !tcp.IP.IsUnspecified() {
			host = tcp.IP.String()
		}
	}
	return fmt.Sprintf("%s://%s%s", scheme, net.JoinHostPort(host, strconv.Itoa(tcp.Port)), path)
}

// Runner serves the journal over MCP until its context ends.
type Runner struct {
	App     *app.Service
	Version string
	Logger  *zap.Logger

	Transport Transport

	// HTTP transport settings.
	Host     string
	Port     int
	Path     string
	CertFile string
	KeyFile  string
	// OnListening receives the client URL once the HTTP listener is bound.
	OnListening func(url string)
}

// Do executes the runner.
func (r Runner) Do(ctx context.Context) error {
	if r.App == nil {
		return errors.New("mcp runner requires a journal")
	}
	version := r.Version
	if version == "" {
		version = "dev"
	}
	log := r.Logger
	if log == nil {
		log = zap.NewNop()
	}

	srv := server.NewMCPServer(
		"forword",
		version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions(instructions),
		server.WithResourceRecovery(),
		server.WithRecovery(),
	)

	svc := NewService(r.App)
	registerResources(srv, svc)
	registerTools(srv, svc)

	transport, err := ParseTransport(string(r.Transport))
	if err != nil {
		return err
	}
	log.Info("mcp server starting", zap.String("transport", string(transport)))
	if transport == TransportStdio {
		return server.ServeStdio(srv)
	}
	return r.serveHTTP(ctx, srv, log)
}

func (r Runner) serveHTTP(ctx context.Context, srv *server.MCPServer, log *zap.Logger) error {
	if (r.CertFile == "") != (r.KeyFile == "") {
		return errors.New("both tls cert and key must be provided")
	}
	tls := r.CertFile != ""

	host := strings.TrimSpace(r.Host)
	if host == "" {
		host = DefaultHTTPHost
	}
	if r.Port < 0 || r.Port > 65535 {
		return fmt.Errorf("invalid http port %d", r.Port)
	}
	path := EndpointPath(r.Path)

	mux := http.NewServeMux()
	mux.Handle(path, server.NewStreamableHTTPServer(srv))
	httpSrv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", net.JoinHostPort(host, strconv.Itoa(r.Port)))
	if err != nil {
		return fmt.Errorf("mcp: listen: %w", err)
	}
	url := ListenURL(ln.Addr(), host, path, tls)
	log.Info("mcp http listening", zap.String("url", url))
	if r.OnListening != nil {
		r.OnListening(url)
	}

	stopped := make(chan struct{})
	defer close(stopped)
	go func() {
		select {
		case <-ctx.Done():
		case <-stopped:
			return
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			log.Warn("mcp http shutdown", zap.Error(err))
		}
	}()

	if tls {
		err = httpSrv.ServeTLS(ln, r.CertFile, r.KeyFile)
	} else {
		err = httpSrv.Serve(ln)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
