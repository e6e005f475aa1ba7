package commands

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type PackagesCmd struct {
	cfgPath string
	profile string
	skuID   int
	name    string
}

func NewPackagesCmd() *cobra.Command {
	pc := &PackagesCmd{}
	cmd := &cobra.Command{
		Use:   "packages",
		Short: "Show the package board of one country",
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.cfgPath, "config", defaultCfgPath(), "Path to the upstream profiles file")
	cmd.Flags().StringVar(&pc.profile, "profile", "default", "Upstream profile to use")
	cmd.Flags().IntVar(&pc.skuID, "sku", 0, "Product identifier of the country")
	cmd.Flags().StringVar(&pc.name, "name", "", "Country name fallback when the catalog has none")

	_ = cmd.MarkFlagRequired("sku")

	return cmd
}

func (pc *PackagesCmd) run(cmd *cobra.Command, args []string) error {
	d, err := buildDeps(pc.cfgPath, pc.profile)
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	board, err := d.pricing.Board(ctx, pc.skuID, pc.name)
	if err != nil {
		return fmt.Errorf("failed to load packages: %w", err)
	}

	rateLabel := fmt.Sprintf("%.2f", board.Rate.Rate)
	if board.Rate.Fallback {
		rateLabel += " (fallback)"
	}
	fmt.Printf("%s (sku %d), USD rate %s\n", board.CountryName, board.SkuID, rateLabel)
	if len(board.Networks) > 0 {
		fmt.Printf("Networks: %s\n", strings.Join(board.Networks, ", "))
	}
	if !board.PricesAvailable {
		fmt.Fprintln(os.Stderr, "warning: price store unreachable, selling prices shown as unset")
	}
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATA\tDURATION\tCOST\tCOST (MNT)\tSELLING\tDISCOUNT")
	for _, card := range board.Cards {
		selling := card.SellingPrice
		if selling == "" {
			selling = "not set"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			card.DataAmount, card.Duration, card.DollarPrice, card.TugrikPrice, selling, card.Discount)
	}
	return w.Flush()
}
