package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/factoryplanner-go/internal/application/planner"
)

// NewBalanceCommand creates the balance command
func NewBalanceCommand() *cobra.Command {
	var factoryID int

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Report net item rates, globally or per factory",
		Long: `Recompute the whole network and report net item rates per minute.
Positive rates are surplus, negative rates deficit.

Examples:
  factoryplanner balance
  factoryplanner balance --factory 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sess, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer sess.cleanup()

			var balance []planner.ItemBalance
			if factoryID > 0 {
				balance, err = sess.service.FactoryBalance(factoryID)
				if err != nil {
					return err
				}
			} else {
				balance = sess.service.GlobalBalance()
			}

			if len(balance) == 0 {
				fmt.Println("Nothing produced or consumed.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ITEM\tNET RATE (/min)")
			for _, entry := range balance {
				fmt.Fprintf(w, "%s\t%+.2f\n", entry.Item, entry.RatePerMin)
			}
			w.Flush()
			return nil
		},
	}

	cmd.Flags().IntVar(&factoryID, "factory", 0, "Limit the report to one factory")

	return cmd
}
