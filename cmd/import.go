package cmd

import (
	"fmt"

	"github.com/example/ellinika/internal/excel"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
)

var importConfig = excel.DefaultImportConfig()

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import vocabulary items from an .xlsx or .csv file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, log, db, err := bootstrap()
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.Migrate(cmd.Context()); err != nil {
			return err
		}

		config := importConfig
		config.FilePath = args[0]

		var result *excel.ImportResult
		err = db.InTx(cmd.Context(), func(tx *sqlx.Tx) error {
			var err error
			result, err = excel.NewImporter(tx).Import(cmd.Context(), config)
			return err
		})
		if err != nil {
			return err
		}

		for _, msg := range result.Errors {
			log.Warn("row rejected", "detail", msg)
		}
		log.Info("import finished",
			"file", config.FilePath,
			"processed", result.TotalProcessed,
			"created", result.Created,
			"updated", result.Updated,
			"skipped", result.Skipped)

		fmt.Fprintf(cmd.OutOrStdout(), "Processed %d rows: %d created, %d updated, %d skipped\n",
			result.TotalProcessed, result.Created, result.Updated, result.Skipped)
		return nil
	},
}

func init() {
	f := importCmd.Flags()
	f.StringVar(&importConfig.SheetName, "sheet", importConfig.SheetName, "sheet to read (default first sheet)")
	f.IntVar(&importConfig.StartRow, "start-row", importConfig.StartRow, "first row to import, 1-based")
	f.StringVar(&importConfig.DefaultCategory, "category", importConfig.DefaultCategory, "category for rows without one")
	rootCmd.AddCommand(importCmd)
}
