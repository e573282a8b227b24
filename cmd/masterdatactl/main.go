// Command masterdatactl runs administrative tasks against the masterdata
// database: applying migrations, seeding reference data and listing rows.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	jsonOutput bool
	actor      string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:           "masterdatactl <command>",
	Short:         "Administrative CLI for the masterdata config registry",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	rootCmd.PersistentFlags().StringVar(&actor, "actor", "", "actor stamped into createdBy/updatedBy (default MASTERDATA_DEFAULT_ACTOR)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log database activity to stderr")

	rootCmd.AddCommand(migrateCmd, seedCmd, typesCmd, listCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
