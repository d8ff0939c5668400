package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// seedCmd represents the seed command
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the drone table and insert missing default profiles",
	Long:  `Migrates the drone_configs table and inserts every default profile that does not exist yet. Existing records are left untouched.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadRuntime()
		if err != nil {
			return err
		}
		defer logg.Sync()

		if _, _, err := openStore(cmd.Context(), cfg.Database, logg); err != nil {
			return fmt.Errorf("seed failed: %w", err)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(seedCmd)
}
