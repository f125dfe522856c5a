package cli

import (
	"github.com/spf13/cobra"

	"debris-risk-economics/internal/app"
)

var (
	importFrom    string
	importMigrate bool
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the PostgreSQL catalog",
}

var catalogImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Upsert a dataset into PostgreSQL",
	RunE: func(cmd *cobra.Command, args []string) error {
		return getApp().ImportCatalog(cmd.Context(), app.ImportOptions{
			From:    importFrom,
			Migrate: importMigrate,
		})
	},
}

func init() {
	catalogImportCmd.Flags().StringVar(&importFrom, "from", "", "Dataset file to import (defaults to the built-in dataset)")
	catalogImportCmd.Flags().BoolVar(&importMigrate, "migrate", false, "Apply schema migrations before importing")

	catalogCmd.AddCommand(catalogImportCmd)
}
