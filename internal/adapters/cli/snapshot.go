package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewSnapshotCommand creates the snapshot command with subcommands
func NewSnapshotCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Manage stored save files",
		Long: `Manage named save files in the local database.

Every planner command works against the snapshot named by --snapshot
(default "default"); these subcommands copy, list and delete them.

Examples:
  factoryplanner snapshot list
  factoryplanner snapshot copy --to backup
  factoryplanner snapshot delete --name backup`,
	}

	cmd.AddCommand(newSnapshotListCommand())
	cmd.AddCommand(newSnapshotCopyCommand())
	cmd.AddCommand(newSnapshotDeleteCommand())

	return cmd
}

func newSnapshotListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored save files",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sess, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer sess.cleanup()

			snapshots, err := sess.service.ListSnapshots(ctx)
			if err != nil {
				return err
			}
			if len(snapshots) == 0 {
				fmt.Println("No snapshots stored.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tVERSION\tGAME\tLAST MODIFIED")
			for _, snapshot := range snapshots {
				game := snapshot.GameVersion
				if game == "" {
					game = "-"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					snapshot.Name, snapshot.Version, game, snapshot.LastModified)
			}
			w.Flush()
			return nil
		},
	}
}

func newSnapshotCopyCommand() *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "copy",
		Short: "Copy the working snapshot under another name",
		RunE: func(cmd *cobra.Command, args []string) error {
			if to == "" {
				return fmt.Errorf("--to flag is required")
			}

			ctx := context.Background()
			sess, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer sess.cleanup()

			summary, err := sess.service.SaveSnapshot(ctx, to, sess.cfg.Planner.GameVersion)
			if err != nil {
				return err
			}

			fmt.Printf("✓ Snapshot %q saved as %q (version %s)\n", snapshotName, summary.Name, summary.Version)
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "Name for the copy (required)")

	return cmd
}

func newSnapshotDeleteCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a stored save file",
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

			if err := sess.service.DeleteSnapshot(ctx, name); err != nil {
				return err
			}

			fmt.Printf("✓ Snapshot %q deleted\n", name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Snapshot name (required)")

	return cmd
}
