package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/lepinkainen/steamstats/internal/agent"
	"github.com/lepinkainen/steamstats/internal/term"
)

// ToolsCmd lists the capabilities the chat agent can call. No library load
// is needed; the registry is built from an empty session.
type ToolsCmd struct{}

func (t *ToolsCmd) Run() error {
	return t.run(os.Stdout)
}

func (t *ToolsCmd) run(out io.Writer) error {
	reg := agent.Tools(agent.NewSession(nil))

	term.PrintHeader(out, "AGENT CAPABILITIES")
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, tool := range reg.List() {
		fmt.Fprintf(tw, "%s\t%s\n", tool.Name, tool.Doc)
		for _, param := range tool.Params {
			if param.Default != nil {
				fmt.Fprintf(tw, "  %s (%s, default %v)\t%s\n", param.Name, param.Type, param.Default, param.Doc)
			} else {
				fmt.Fprintf(tw, "  %s (%s)\t%s\n", param.Name, param.Type, param.Doc)
			}
		}
	}
	return tw.Flush()
}
