package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	response "github.com/tellsomethingsomething/tell-quote-sub009/internal/adapter/http/dto/response"
	"github.com/tellsomethingsomething/tell-quote-sub009/internal/domain/pricing"
	"github.com/tellsomethingsomething/tell-quote-sub009/internal/infrastructure/logging"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newTierCmd(format func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "tier <country>",
		Short: "Show the pricing tier and local prices for a country",
		Long: `Resolve an ISO 3166-1 alpha-2 country code to its pricing tier and the
plan prices shown there. Unknown codes resolve to full price in USD.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := pricing.Resolve(args[0])
			logging.Named("cli.tier").Debug("resolved region",
				zap.String("input", args[0]), zap.String("tier", string(r.Tier)), zap.String("currency", r.Currency))

			out := cmd.OutOrStdout()
			if format() == formatJSON {
				return writeJSON(out, response.FromRegion(r))
			}

			country := r.Country
			if country == "" {
				country = "-"
			}
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "Country:\t%s\n", country)
			fmt.Fprintf(tw, "Tier:\t%s (%s)\n", r.TierName, r.Tier)
			fmt.Fprintf(tw, "Currency:\t%s\n", r.Currency)
			fmt.Fprintf(tw, "Individual:\t%s/mo\t%s/yr\n", pricing.DisplayPrice(r.Individual.Monthly, r.Currency), pricing.DisplayPrice(r.Individual.Annual, r.Currency))
			fmt.Fprintf(tw, "Team:\t%s/mo\t%s/yr\n", pricing.DisplayPrice(r.Team.Monthly, r.Currency), pricing.DisplayPrice(r.Team.Annual, r.Currency))
			return tw.Flush()
		},
	}
}

func newTiersCmd(format func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "tiers",
		Short: "List every pricing tier with its USD base prices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tiers := pricing.Tiers()
			out := cmd.OutOrStdout()
			if format() == formatJSON {
				return writeJSON(out, response.FromTiers(tiers))
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "TIER\tNAME\tINDIVIDUAL\tTEAM\tCOUNTRIES")
			for _, t := range tiers {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n",
					t.ID, t.Name,
					pricing.DisplayPrice(t.Individual.Monthly, pricing.DefaultCurrency),
					pricing.DisplayPrice(t.Team.Monthly, pricing.DefaultCurrency),
					len(t.Countries))
			}
			return tw.Flush()
		},
	}
}

func newFormatCmd(format func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "format <amount> [currency]",
		Short: "Format an amount the way the pricing page shows it",
		Long: `Format a decimal amount with the currency's symbol, separators and
decimal places. Unknown or missing currencies use USD.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(strings.TrimSpace(args[0]))
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}
			code := pricing.DefaultCurrency
			if len(args) == 2 {
				code = args[1]
			}
			c := pricing.LookupCurrency(code)

			out := cmd.OutOrStdout()
			if format() == formatJSON {
				return writeJSON(out, response.FormatResponse{
					Amount:   amount.StringFixed(c.Decimals),
					Currency: c.Code,
					Display:  pricing.DisplayPrice(amount, c.Code),
				})
			}
			_, err = fmt.Fprintln(out, pricing.DisplayPrice(amount, c.Code))
			return err
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
