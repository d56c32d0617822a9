package commands

import (
	"restaurant-web/config"

	"github.com/spf13/cobra"
)

var seedMenu bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the admin account and, optionally, a sample menu",
	Long: `Seed creates the admin account from ADMIN_USERNAME and ADMIN_PASSWORD
if it does not exist yet. With --menu it also adds a sample menu to an
empty dishes table.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, db, err := openStore()
		if err != nil {
			return err
		}
		defer config.Close(db)

		if err := config.SeedAdmin(db, cfg, log); err != nil {
			return err
		}
		if seedMenu {
			return config.SeedMenu(db, log)
		}
		return nil
	},
}

func init() {
	seedCmd.Flags().BoolVar(&seedMenu, "menu", false, "Also insert the sample menu")
}
