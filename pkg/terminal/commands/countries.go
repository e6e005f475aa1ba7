package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type CountriesCmd struct {
	cfgPath string
	profile string
}

func NewCountriesCmd() *cobra.Command {
	cc := &CountriesCmd{}
	cmd := &cobra.Command{
		Use:   "countries",
		Short: "List eSIM destinations grouped by continent",
		RunE:  cc.run,
	}

	cmd.Flags().StringVar(&cc.cfgPath, "config", defaultCfgPath(), "Path to the upstream profiles file")
	cmd.Flags().StringVar(&cc.profile, "profile", "default", "Upstream profile to use")

	return cmd
}

func (cc *CountriesCmd) run(cmd *cobra.Command, args []string) error {
	d, err := buildDeps(cc.cfgPath, cc.profile)
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	overview, err := d.catalog.Overview(ctx)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	if len(overview.Popular) > 0 {
		fmt.Println("Popular:")
		for _, c := range overview.Popular {
			fmt.Printf("  %s %s (sku %d)\n", d.catalog.FlagFor(c.Display), c.Display, c.SkuID)
		}
		fmt.Println()
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CONTINENT\tCOUNTRY\tSKU\tCODE\tNOTE")
	for _, continent := range overview.Continents {
		for _, c := range overview.Countries[continent] {
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n", continent, c.Display, c.SkuID, c.CountryCode, c.Note)
		}
	}
	return w.Flush()
}
