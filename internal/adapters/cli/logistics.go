package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/factoryplanner-go/internal/application/planner"
)

// NewLogisticsCommand creates the logistics command with subcommands
func NewLogisticsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logistics",
		Short: "Manage logistics lines between factories",
		Long: `Manage the transport links moving items between factories.

Flows are given as repeatable ITEM=RATE flags. For buses, --conveyor and
--pipeline describe the two carrier sets; for trains, each --wagon flag
holds one wagon's comma-separated flows; trucks and drones take one --flow.

Examples:
  factoryplanner logistics connect --from 1 --to 2 --variant BUS --conveyor IRON_ORE=120 --pipeline WATER=60
  factoryplanner logistics connect --from 1 --to 2 --variant TRAIN --wagon COAL=45 --wagon IRON_ORE=30,COPPER_ORE=30
  factoryplanner logistics connect --from 2 --to 1 --variant DRONE --flow IRON_PLATE=10
  factoryplanner logistics list
  factoryplanner logistics remove --id drone-a3f8e2b1`,
	}

	cmd.AddCommand(newLogisticsConnectCommand())
	cmd.AddCommand(newLogisticsListCommand())
	cmd.AddCommand(newLogisticsRemoveCommand())

	return cmd
}

func newLogisticsConnectCommand() *cobra.Command {
	var (
		from      int
		to        int
		variant   string
		details   string
		conveyors []string
		pipelines []string
		wagons    []string
		flow      string
	)

	cmd := &cobra.Command{
		Use:   "connect",
		Short: "Create a logistics line between two factories",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sess, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer sess.cleanup()

			spec := planner.TransportSpec{
				Variant: strings.ToUpper(variant),
				Details: details,
			}
			if spec.Conveyors, err = parseFlows(conveyors); err != nil {
				return err
			}
			if spec.Pipelines, err = parseFlows(pipelines); err != nil {
				return err
			}
			for _, wagon := range wagons {
				flows, err := parseFlows(strings.Split(wagon, ","))
				if err != nil {
					return err
				}
				spec.Wagons = append(spec.Wagons, flows)
			}
			if flow != "" {
				flows, err := parseFlows([]string{flow})
				if err != nil {
					return err
				}
				spec.Flow = &flows[0]
			}

			summary, err := sess.service.Connect(from, to, spec)
			if err != nil {
				return err
			}
			if err := sess.commit(ctx); err != nil {
				return err
			}

			fmt.Printf("✓ Logistics line created\n")
			fmt.Printf("  ID:      %s\n", summary.ID)
			fmt.Printf("  Route:   factory %d -> factory %d\n", summary.From, summary.To)
			fmt.Printf("  Variant: %s\n", summary.Variant)
			return nil
		},
	}

	cmd.Flags().IntVar(&from, "from", 0, "Source factory ID (required)")
	cmd.Flags().IntVar(&to, "to", 0, "Destination factory ID (required)")
	cmd.Flags().StringVar(&variant, "variant", "", "Transport variant: BUS, TRAIN, TRUCK or DRONE (required)")
	cmd.Flags().StringVar(&details, "details", "", "Free-form note on the line")
	cmd.Flags().StringArrayVar(&conveyors, "conveyor", nil, "Bus conveyor flow ITEM=RATE, repeatable")
	cmd.Flags().StringArrayVar(&pipelines, "pipeline", nil, "Bus pipeline flow ITEM=RATE, repeatable")
	cmd.Flags().StringArrayVar(&wagons, "wagon", nil, "Train wagon flows ITEM=RATE[,ITEM=RATE...], repeatable")
	cmd.Flags().StringVar(&flow, "flow", "", "Truck/drone flow ITEM=RATE")

	return cmd
}

func newLogisticsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all logistics lines",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sess, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer sess.cleanup()

			lines := sess.service.ListLogistics()
			if len(lines) == 0 {
				fmt.Println("No logistics lines in this snapshot.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tROUTE\tVARIANT\tITEMS")
			for _, line := range lines {
				flows := make([]string, 0, len(line.Items))
				for _, item := range line.Items {
					flows = append(flows, fmt.Sprintf("%s@%g/min", item.Item, item.RatePerMin))
				}
				fmt.Fprintf(w, "%s\t%d -> %d\t%s\t%s\n",
					line.ID, line.From, line.To, line.Variant, strings.Join(flows, ", "))
			}
			w.Flush()
			return nil
		},
	}
}

func newLogisticsRemoveCommand() *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a logistics line",
		RunE: func(cmd *cobra.Command, args []string) error {
			if id == "" {
				return fmt.Errorf("--id flag is required")
			}

			ctx := context.Background()
			sess, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer sess.cleanup()

			if err := sess.service.RemoveLogisticsLine(id); err != nil {
				return err
			}
			if err := sess.commit(ctx); err != nil {
				return err
			}

			fmt.Printf("✓ Logistics line %s removed\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Logistics line ID (required)")

	return cmd
}
