package cmd

import (
	"fmt"
	"os"

	"github.com/kwesthuizen/trackdeck/internal/store"

	"github.com/spf13/cobra"
)

var flagExportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the project document as JSON",
	Long:  "Writes the exact on-disk JSON to stdout or a file, for backups and hand editing.",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "Output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	doc, err := loadDocument()
	if err != nil {
		return err
	}

	if flagExportOut == "" {
		return store.Export(os.Stdout, doc)
	}

	f, err := os.Create(flagExportOut)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := store.Export(f, doc); err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Exported to %s\n", flagExportOut)
	}
	return nil
}
