package main

import (
	"fmt"

	"github.com/dys2p/regionnames/db"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newExportCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write the locale data into an SQLite database",
		Long: `Write the locale data into an SQLite database. Existing data in the database
is replaced. The database can be edited and served with "serve --sqlite".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := loadRegistry(loadConfig(v))
			if err != nil {
				return err
			}
			database, err := db.OpenDB(args[0])
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}
			defer database.Close()

			if err := database.Export(registry.Sources()); err != nil {
				return fmt.Errorf("exporting: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d locales to %s\n", len(registry.IDs()), args[0])
			return nil
		},
	}
}
