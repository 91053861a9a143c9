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

// NewFactoryCommand creates the factory command with subcommands
func NewFactoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "factory",
		Short: "Manage factories and their production setup",
		Long: `Manage factories: create and remove facilities, and configure their
production lines, raw inputs and power generators.

Examples:
  factoryplanner factory create --name "Iron Works" --description "smelting hub"
  factoryplanner factory list
  factoryplanner factory add-line --factory 1 --name Smelting --recipe IRON_INGOT --count 2 --clock 100
  factoryplanner factory add-extractor --factory 1 --type MINER_MK2 --item IRON_ORE --purity PURE
  factoryplanner factory add-well --factory 1 --item NITROGEN_GAS --clock 150 --purity NORMAL --purity PURE
  factoryplanner factory add-generator --factory 1 --type COAL_GENERATOR --fuel COAL --count 3 --clock 100
  factoryplanner factory remove --factory 1`,
	}

	cmd.AddCommand(newFactoryCreateCommand())
	cmd.AddCommand(newFactoryListCommand())
	cmd.AddCommand(newFactoryRemoveCommand())
	cmd.AddCommand(newFactoryAddLineCommand())
	cmd.AddCommand(newFactoryAddExtractorCommand())
	cmd.AddCommand(newFactoryAddWellCommand())
	cmd.AddCommand(newFactoryAddGeneratorCommand())

	return cmd
}

func newFactoryCreateCommand() *cobra.Command {
	var (
		name        string
		description string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new factory",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("--name flag is required")
			}

			ctx := context.Background()
			sess, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer sess.cleanup()

			summary := sess.service.CreateFactory(name, description)
			if err := sess.commit(ctx); err != nil {
				return err
			}

			fmt.Printf("✓ Factory created\n")
			fmt.Printf("  ID:   %d\n", summary.ID)
			fmt.Printf("  Name: %s\n", summary.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Factory name (required)")
	cmd.Flags().StringVar(&description, "description", "", "Factory description")

	return cmd
}

func newFactoryListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all factories",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sess, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer sess.cleanup()

			factories := sess.service.ListFactories()
			if len(factories) == 0 {
				fmt.Println("No factories in this snapshot.")
				fmt.Println("\nCreate one with: factoryplanner factory create --name <name>")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tLINES\tRAW INPUTS\tGENERATORS\tIN\tOUT")
			for _, f := range factories {
				fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%d\t%d\n",
					f.ID, f.Name, f.ProductionLines, f.RawInputs, f.Generators,
					len(f.Incoming), len(f.Outgoing))
			}
			w.Flush()
			return nil
		},
	}
}

func newFactoryRemoveCommand() *cobra.Command {
	var factoryID int

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a factory and its logistics lines",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sess, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer sess.cleanup()

			if err := sess.service.RemoveFactory(factoryID); err != nil {
				return err
			}
			if err := sess.commit(ctx); err != nil {
				return err
			}

			fmt.Printf("✓ Factory %d removed\n", factoryID)
			return nil
		},
	}

	cmd.Flags().IntVar(&factoryID, "factory", 0, "Factory ID (required)")

	return cmd
}

func newFactoryAddLineCommand() *cobra.Command {
	var (
		factoryID int
		name      string
		recipe    string
		count     int
		clock     float64
		augments  int
	)

	cmd := &cobra.Command{
		Use:   "add-line",
		Short: "Add a recipe production line with one machine group",
		RunE: func(cmd *cobra.Command, args []string) error {
			if recipe == "" {
				return fmt.Errorf("--recipe flag is required")
			}

			ctx := context.Background()
			sess, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer sess.cleanup()

			spec := planner.RecipeLineSpec{
				Name:   name,
				Recipe: strings.ToUpper(recipe),
			}
			if count > 0 {
				spec.Groups = []planner.MachineGroupSpec{{Count: count, Clock: clock, Augments: augments}}
			}

			lineID, err := sess.service.AddRecipeLine(factoryID, spec)
			if err != nil {
				return err
			}
			if err := sess.commit(ctx); err != nil {
				return err
			}

			fmt.Printf("✓ Production line added: %s\n", lineID)
			return nil
		},
	}

	cmd.Flags().IntVar(&factoryID, "factory", 0, "Factory ID (required)")
	cmd.Flags().StringVar(&name, "name", "", "Line name")
	cmd.Flags().StringVar(&recipe, "recipe", "", "Recipe identifier, e.g. IRON_INGOT (required)")
	cmd.Flags().IntVar(&count, "count", 0, "Machines in the initial group")
	cmd.Flags().Float64Var(&clock, "clock", 100, "Clock percentage for the initial group")
	cmd.Flags().IntVar(&augments, "augments", 0, "Augments per machine in the initial group")

	return cmd
}

func newFactoryAddExtractorCommand() *cobra.Command {
	var (
		factoryID     int
		extractorType string
		item          string
		purity        string
	)

	cmd := &cobra.Command{
		Use:   "add-extractor",
		Short: "Add a standalone extractor",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sess, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer sess.cleanup()

			id, err := sess.service.AddExtractor(factoryID,
				strings.ToUpper(extractorType), strings.ToUpper(item), strings.ToUpper(purity))
			if err != nil {
				return err
			}
			if err := sess.commit(ctx); err != nil {
				return err
			}

			fmt.Printf("✓ Extractor added: %s\n", id)
			return nil
		},
	}

	cmd.Flags().IntVar(&factoryID, "factory", 0, "Factory ID (required)")
	cmd.Flags().StringVar(&extractorType, "type", "", "Extractor type, e.g. MINER_MK2 (required)")
	cmd.Flags().StringVar(&item, "item", "", "Extracted item, e.g. IRON_ORE (required)")
	cmd.Flags().StringVar(&purity, "purity", "", "Node purity: IMPURE, NORMAL or PURE (omit for fluid extractors)")

	return cmd
}

func newFactoryAddWellCommand() *cobra.Command {
	var (
		factoryID int
		item      string
		clock     float64
		purities  []string
	)

	cmd := &cobra.Command{
		Use:   "add-well",
		Short: "Add a pressurized resource well",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sess, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer sess.cleanup()

			upper := make([]string, 0, len(purities))
			for _, purity := range purities {
				upper = append(upper, strings.ToUpper(purity))
			}

			id, err := sess.service.AddResourceWell(factoryID, strings.ToUpper(item), clock, upper)
			if err != nil {
				return err
			}
			if err := sess.commit(ctx); err != nil {
				return err
			}

			fmt.Printf("✓ Resource well added: %s\n", id)
			return nil
		},
	}

	cmd.Flags().IntVar(&factoryID, "factory", 0, "Factory ID (required)")
	cmd.Flags().StringVar(&item, "item", "", "Extracted fluid, e.g. NITROGEN_GAS (required)")
	cmd.Flags().Float64Var(&clock, "clock", 100, "Pressurizer clock percentage")
	cmd.Flags().StringArrayVar(&purities, "purity", nil, "Satellite purity, repeatable (required)")

	return cmd
}

func newFactoryAddGeneratorCommand() *cobra.Command {
	var (
		factoryID     int
		generatorType string
		fuel          string
		count         int
		clock         float64
	)

	cmd := &cobra.Command{
		Use:   "add-generator",
		Short: "Add a power generator bank",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sess, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer sess.cleanup()

			var groups []planner.GeneratorGroupSpec
			if count > 0 {
				groups = []planner.GeneratorGroupSpec{{Count: count, Clock: clock}}
			}

			id, err := sess.service.AddGenerator(factoryID,
				strings.ToUpper(generatorType), strings.ToUpper(fuel), groups)
			if err != nil {
				return err
			}
			if err := sess.commit(ctx); err != nil {
				return err
			}

			fmt.Printf("✓ Generator added: %s\n", id)
			return nil
		},
	}

	cmd.Flags().IntVar(&factoryID, "factory", 0, "Factory ID (required)")
	cmd.Flags().StringVar(&generatorType, "type", "", "Generator type, e.g. COAL_GENERATOR (required)")
	cmd.Flags().StringVar(&fuel, "fuel", "", "Fuel item (omit for geothermal)")
	cmd.Flags().IntVar(&count, "count", 0, "Generators in the initial group")
	cmd.Flags().Float64Var(&clock, "clock", 100, "Clock percentage for the initial group")

	return cmd
}
