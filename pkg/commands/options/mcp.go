package options

import (
	"github.com/spf13/cobra"

	"github.com/2yum7/forword/pkg/runner/mcp"
)

// MCPOptions
type MCPOptions struct {
	Transport string
	Host      string
	Port      int
	Path      string
	TLSCert   string
	TLSKey    string
}

func AddMCPArgs(cmd *cobra.Command, o *MCPOptions) {
	cmd.Flags().StringVar(&o.Transport, "transport", string(mcp.TransportStdio),
		"How assistants connect: stdio (launched by the assistant) or http.")
	cmd.Flags().StringVar(&o.Host, "http-host", mcp.DefaultHTTPHost,
		"Interface to bind with --transport=http. The journal is private, keep it on loopback unless you mean it.")
	cmd.Flags().IntVar(&o.Port, "http-port", mcp.DefaultHTTPPort,
		"Port to bind with --transport=http, 0 picks a free one.")
	cmd.Flags().StringVar(&o.Path, "http-path", mcp.DefaultEndpointPath,
		"Endpoint path with --transport=http.")
	cmd.Flags().StringVar(&o.TLSCert, "http-tls-cert", "",
		"Certificate file, serves https together with --http-tls-key.")
	cmd.Flags().StringVar(&o.TLSKey, "http-tls-key", "",
		"Private key file for --http-tls-cert.")
}
