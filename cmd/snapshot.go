package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/kwesthuizen/trackdeck/internal/cli"
	"github.com/kwesthuizen/trackdeck/internal/store"

	"github.com/spf13/cobra"
)

var flagSnapshotLimit int

var snapshotCmd = &cobra.Command{
	Use:     "snapshot [id]",
	Aliases: []string{"restore"},
	Short:   "Revision history of the project document",
	Args:    cobra.MaximumNArgs(1),
	// With an ID this restores (so `trackdeck restore 12` works); without
	// one it lists.
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return runSnapshotRestore(cmd, args)
		}
		return runSnapshotList(cmd, args)
	},
}

var snapshotListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved revisions",
	RunE:  runSnapshotList,
}

var snapshotRestoreCmd = &cobra.Command{
	Use:   "restore <id>",
	Short: "Restore the document to a saved revision",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnapshotRestore,
}

func init() {
	snapshotCmd.PersistentFlags().IntVarP(&flagSnapshotLimit, "limit", "n", 20, "Max revisions to list")

	snapshotCmd.AddCommand(snapshotListCmd)
	snapshotCmd.AddCommand(snapshotRestoreCmd)
	rootCmd.AddCommand(snapshotCmd)
}

func snapshotDBPath() string {
	return filepath.Join(filepath.Dir(dataPath()), store.SnapshotFileName)
}

func runSnapshotList(_ *cobra.Command, _ []string) error {
	snaps, err := store.OpenSnapshots(snapshotDBPath())
	if err != nil {
		return fmt.Errorf("opening snapshot archive: %w", err)
	}
	defer func() { _ = snaps.Close() }()

	infos, err := snaps.List(flagSnapshotLimit)
	if err != nil {
		return err
	}

	fmt.Println()
	if len(infos) == 0 {
		fmt.Println("  No snapshots yet. One is recorded on every save.")
		fmt.Println()
		return nil
	}

	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		rows = append(rows, []string{
			strconv.FormatInt(info.ID, 10),
			info.TakenAt.Local().Format("2006-01-02 15:04"),
			info.ProjectName,
			cli.FormatNumber(int64(info.TaskCount)),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Taken", "Project", "Tasks"},
		Rows:    rows,
	}))
	fmt.Println()
	fmt.Println("  Restore one with `trackdeck snapshot restore <id>`.")
	fmt.Println()

	return nil
}

func runSnapshotRestore(_ *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("snapshot id must be a number, got %q", args[0])
	}

	snaps, err := store.OpenSnapshots(snapshotDBPath())
	if err != nil {
		return fmt.Errorf("opening snapshot archive: %w", err)
	}
	defer func() { _ = snaps.Close() }()

	doc, err := snaps.Get(id)
	if err != nil {
		return err
	}

	// Record the current state first so the restore itself is recoverable.
	if current, err := store.Load(dataPath()); err == nil {
		_, _ = snaps.Record(current)
	}

	if err := store.Save(dataPath(), doc); err != nil {
		return err
	}

	fmt.Printf("  Restored snapshot %d (%s, %d tasks) at %s\n",
		id, doc.Project.Name, len(doc.Tasks), time.Now().Format("15:04"))
	return nil
}
