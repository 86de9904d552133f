package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/credaudit/internal/ntlm"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the table processing order for a classification run",
	Long: `Plan resolves the table sources from configuration and displays the
fixed order in which they will be processed. The first table in this order
that contains a credential's digest wins the attribution, so the order
determines the final classification result.

Example:
  credaudit plan --config credaudit.yaml`,
	RunE: runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfigAndLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	sources, err := resolveSources(cfg)
	if err != nil {
		return err
	}

	orderKind := "lexical (directory enumeration)"
	if len(cfg.Tables.Order) > 0 {
		orderKind = "explicit (tables.order)"
	}

	cmd.Printf("Table processing order (%s):\n\n", orderKind)
	if len(sources) == 0 {
		cmd.Printf("  (no table sources found in %s)\n", cfg.Tables.Directory)
		return nil
	}

	for i, source := range sources {
		var status string
		if info, err := os.Stat(source.Path); err != nil {
			status = "UNAVAILABLE (will be skipped)"
		} else {
			status = fmt.Sprintf("ok, %d bytes", info.Size())
		}
		cmd.Printf("  %d. %s  [%s]\n", i+1, source.Name, status)
	}

	cmd.Printf("\nTotal: %d source(s)\n", len(sources))
	cmd.Printf("Digest format: %d-character uppercase hex, one entry per line\n", ntlm.KeyLength)
	return nil
}
