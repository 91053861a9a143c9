package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewPowerCommand creates the power command
func NewPowerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "power",
		Short: "Report power generation and consumption",
		Long: `Report per-factory power generation, consumption and balance in MW,
plus grid-wide totals.

Example:
  factoryplanner power`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sess, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer sess.cleanup()

			report := sess.service.PowerStats()
			if len(report.Rows) == 0 {
				fmt.Println("No factories in this snapshot.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tFACTORY\tGENERATION (MW)\tCONSUMPTION (MW)\tBALANCE (MW)")
			for _, row := range report.Rows {
				fmt.Fprintf(w, "%d\t%s\t%.2f\t%.2f\t%+.2f\n",
					row.FactoryID, row.FactoryName, row.GenerationMW, row.ConsumptionMW, row.BalanceMW)
			}
			fmt.Fprintf(w, "\tTOTAL\t%.2f\t%.2f\t%+.2f\n",
				report.TotalGenerationMW, report.TotalConsumptionMW, report.TotalBalanceMW)
			w.Flush()
			return nil
		},
	}
}
