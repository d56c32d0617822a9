package commands

import (
	"restaurant-web/config"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, log, db, err := openStore()
		if err != nil {
			return err
		}
		defer config.Close(db)
		log.Info("schema up to date")
		return nil
	},
}
