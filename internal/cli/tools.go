package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"siyuanmcp/internal/gateway"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the registered tools and their endpoints",
	RunE:  runTools,
}

func runTools(_ *cobra.Command, _ []string) error {
	registry, err := gateway.NewRegistry()
	if err != nil {
		return err
	}
	s := newStyles(os.Stdout)

	fmt.Println(s.Title.Render(fmt.Sprintf("%d tools registered", registry.Len())))
	for _, spec := range registry.Tools() {
		fmt.Printf("%s  %s  %s\n",
			s.Name.Render(fmt.Sprintf("%-32s", spec.Name)),
			s.Kind.Render(fmt.Sprintf("%-12s", spec.Kind.String())),
			s.Dim.Render(spec.Endpoint),
		)
	}
	return nil
}
