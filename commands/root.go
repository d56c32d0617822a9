package commands

import (
	"fmt"
	"os"

	"restaurant-web/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var rootCmd = &cobra.Command{
	Use:   "restaurant",
	Short: "Restaurant web application",
	Long: `Restaurant serves the restaurant website: menu, cart, table reservations
and the admin panel.

Configuration is read from the environment and an optional .env file.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

// openStore loads configuration and returns a migrated database.
func openStore() (*config.Config, *logrus.Logger, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	log := config.NewLogger(cfg)

	db, err := config.OpenDB(cfg, log)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := config.Migrate(db); err != nil {
		_ = config.Close(db)
		return nil, nil, nil, err
	}
	return cfg, log, db, nil
}
