package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/2yum7/forword/pkg/commands/options"
	"github.com/2yum7/forword/pkg/runner/mcp"
)

func addMCP(topLevel *cobra.Command) {
	mo := &options.MCPOptions{}

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Let an assistant read and add to the journal",
		Long: options.Wrap80("Serve the journal over the Model Context Protocol. Assistants can " +
			"list, search and read entries, see writing stats and add new entries. Nothing can be " +
			"edited or deleted through it, and a pending draft is never touched."),
		Example: `
forword mcp
forword mcp --transport=http --http-port=0
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			transport, err := mcp.ParseTransport(mo.Transport)
			if err != nil {
				return err
			}

			// Over stdio, stdout belongs to the protocol.
			e, err := load(transport == mcp.TransportStdio)
			if err != nil {
				return err
			}
			defer e.close()

			runner := mcp.Runner{
				App:       e.svc,
				Version:   version,
				Logger:    e.log,
				Transport: transport,
				Host:      mo.Host,
				Port:      mo.Port,
				Path:      mo.Path,
				CertFile:  strings.TrimSpace(mo.TLSCert),
				KeyFile:   strings.TrimSpace(mo.TLSKey),
				OnListening: func(url string) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "forword MCP server listening on %s\n", url)
				},
			}
			return runner.Do(cmd.Context())
		},
	}

	options.AddMCPArgs(cmd, mo)

	topLevel.AddCommand(cmd)
}
