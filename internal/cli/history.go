package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"siyuanmcp/internal/config"
	"siyuanmcp/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent tool invocations from the audit log",
	RunE:  runHistory,
}

var historyLimit int

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "number of invocations to show")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(config.Options{
		ConfigPath:   globalFlags.ConfigPath,
		SkipValidate: true,
	})
	if err != nil {
		return err
	}
	if cfg.AuditDB == "" {
		fmt.Println("Auditing is disabled; set audit_db in the config file or SIYUANMCP_AUDIT_DB.")
		return nil
	}

	audit := store.NewAuditStore(cfg.AuditDB)
	defer func() { _ = audit.Close() }()

	invocations, err := audit.Recent(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}
	if len(invocations) == 0 {
		fmt.Println("No invocations recorded yet.")
		return nil
	}

	s := newStyles(os.Stdout)
	for _, inv := range invocations {
		when := time.Unix(inv.StartedUnix, 0).Format(time.RFC3339)
		outcome := s.Kind.Render("ok")
		if !inv.OK {
			outcome = s.Err.Render(inv.ErrorKind)
		}
		fmt.Printf("%s  %s  %s  %s\n",
			s.Dim.Render(when),
			s.Name.Render(fmt.Sprintf("%-32s", inv.Tool)),
			outcome,
			s.Dim.Render(fmt.Sprintf("%dms", inv.DurationMS)),
		)
		if !inv.OK && inv.ErrorDetail != "" {
			fmt.Printf("    %s\n", s.Dim.Render(inv.ErrorDetail))
		}
	}
	return nil
}
