package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type PricesCmd struct {
	cfgPath string
	profile string
	skuID   int
}

func NewPricesCmd() *cobra.Command {
	pc := &PricesCmd{}
	cmd := &cobra.Command{
		Use:   "prices",
		Short: "List the stored resale prices of one country",
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.cfgPath, "config", defaultCfgPath(), "Path to the upstream profiles file")
	cmd.Flags().StringVar(&pc.profile, "profile", "default", "Upstream profile to use")
	cmd.Flags().IntVar(&pc.skuID, "sku", 0, "Product identifier of the country")

	_ = cmd.MarkFlagRequired("sku")

	return cmd
}

func (pc *PricesCmd) run(cmd *cobra.Command, args []string) error {
	d, err := buildDeps(pc.cfgPath, pc.profile)
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	prices, available := d.pricing.Prices(ctx, pc.skuID)
	if !available {
		return fmt.Errorf("price store unreachable for sku %d", pc.skuID)
	}
	if len(prices) == 0 {
		fmt.Printf("no resale prices set for sku %d\n", pc.skuID)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ROWID\tPACKAGE\tDATA\tDURATION\tPRICE")
	for _, p := range prices {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s₮\n", p.RowID, p.PackageName, p.DataGB, p.Duration, p.Price)
	}
	return w.Flush()
}
