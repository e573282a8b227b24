package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ericfisherdev/masterdata/internal/application"
	"github.com/ericfisherdev/masterdata/internal/bootstrap"
	"github.com/ericfisherdev/masterdata/internal/domain/model"
	"github.com/ericfisherdev/masterdata/internal/idgen"
	"github.com/ericfisherdev/masterdata/internal/seed"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer e.close()

		fmt.Println("migrations applied")
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed <file.toml>",
	Short: "Create banks and payment methods listed in a TOML file",
	Long: `Create every [[bank]] and [[payment_method]] entry in the file.
Entries whose code already exists are skipped and left unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := seed.DecodeFile(args[0])
		if err != nil {
			return err
		}

		e, err := openEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer e.close()

		seeder := seed.NewSeeder(
			application.NewBankService(e.store, e.logger),
			application.NewPaymentMethodService(e.store, idgen.UUID, e.logger),
			e.logger,
		)

		res, err := seeder.Apply(cmd.Context(), e.actorOrDefault(), f)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(res)
		}
		fmt.Printf("created %d, skipped %d\n", res.Created, res.Skipped)
		return nil
	},
}

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List registered config types and their identity strategies",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := bootstrap.NewRegistry()
		if err != nil {
			return err
		}

		var descs []map[string]string
		for _, t := range registry.Types() {
			d, _ := registry.Lookup(t)
			descs = append(descs, map[string]string{"type": string(d.Type), "strategy": string(d.Strategy)})
		}

		if jsonOutput {
			return printJSON(descs)
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "TYPE\tSTRATEGY")
		for _, d := range descs {
			fmt.Fprintf(tw, "%s\t%s\n", d["type"], d["strategy"])
		}
		return tw.Flush()
	},
}

var listCmd = &cobra.Command{
	Use:   "list <type>",
	Short: "List the stored records of a config type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := bootstrap.NewRegistry()
		if err != nil {
			return err
		}
		configType := model.ConfigType(args[0])
		if _, ok := registry.Lookup(configType); !ok {
			return fmt.Errorf("config type %q is not registered", configType)
		}

		e, err := openEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer e.close()

		recs, err := e.store.FindAll(cmd.Context(), configType)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(recs)
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tDISPLAY\tACTIVE\tUPDATED")
		for _, r := range recs {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%t\t%s\n",
				r.ID, r.ConfigName, model.Deref(r.DisplayName), r.Active, r.UpdatedAt.Format("2006-01-02 15:04:05"))
		}
		return tw.Flush()
	},
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
