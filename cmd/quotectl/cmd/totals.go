package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	request "github.com/tellsomethingsomething/tell-quote-sub009/internal/adapter/http/dto/request"
	response "github.com/tellsomethingsomething/tell-quote-sub009/internal/adapter/http/dto/response"
	"github.com/tellsomethingsomething/tell-quote-sub009/internal/domain/pricing"
	"github.com/tellsomethingsomething/tell-quote-sub009/internal/infrastructure/logging"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newTotalsCmd(format func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "totals <quote.json>",
		Short: "Compute totals, profit and margin for a quote file",
		Long: `Read a quote document (the body accepted by POST /v1/quotes/totals) and
print its totals, profit, margin and per-section breakdown. Use "-" to read
from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			var req request.TotalsRequest
			if err := json.Unmarshal(raw, &req); err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}
			q := req.ToQuote()
			summary := pricing.Summarize(q)
			logging.Named("cli.totals").Debug("computed totals",
				zap.Int("sections", len(q.Sections)), zap.String("grand_total", summary.Totals.GrandTotal.String()))

			out := cmd.OutOrStdout()
			if format() == formatJSON {
				return writeJSON(out, response.FromSummary(summary))
			}
			return writeSummaryTable(out, summary)
		},
	}
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read quote: %w", err)
	}
	return b, nil
}

func writeSummaryTable(w io.Writer, s pricing.Summary) error {
	show := func(d decimal.Decimal) string { return pricing.DisplayPrice(d, s.Currency) }

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SECTION\tCOST\tCHARGE\tPROFIT")
	for _, sec := range s.Sections {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", sec.Name, show(sec.TotalCost), show(sec.TotalCharge), show(sec.Profit))
		for _, sub := range sec.Subsections {
			fmt.Fprintf(tw, "  %s\t%s\t%s\t\n", sub.Name, show(sub.TotalCost), show(sub.TotalCharge))
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	t := s.Totals
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "Total cost\t%s\n", show(t.TotalCost))
	fmt.Fprintf(tw, "Total charge\t%s\n", show(t.TotalCharge))
	fmt.Fprintf(tw, "Management fee\t%s\n", show(t.ManagementAmount))
	fmt.Fprintf(tw, "Commission\t%s\n", show(t.CommissionAmount))
	fmt.Fprintf(tw, "Discount\t%s\n", show(t.DiscountAmount.Neg()))
	fmt.Fprintf(tw, "Grand total\t%s\n", show(t.GrandTotal))
	fmt.Fprintf(tw, "Profit\t%s\n", show(s.Profit))
	fmt.Fprintf(tw, "Margin\t%s%%\n", s.MarginPercent.StringFixed(2))
	return tw.Flush()
}
