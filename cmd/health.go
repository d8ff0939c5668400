package cmd

import (
	"encoding/json"
	"fmt"

	"drone-config/core/database"
	"drone-config/core/storage"
	"drone-config/feature/health"

	"github.com/spf13/cobra"
)

// healthCmd represents the health command
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Run the health checks once and print the report",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadRuntime()
		if err != nil {
			return err
		}
		defer logg.Sync()

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return err
		}

		var client storage.Client
		if cfg.Storage.Enabled {
			if client, err = storage.NewClient(cfg.Storage); err != nil {
				return err
			}
		}

		report := health.NewService(db, client, cfg.Storage.Bucket, logg).Check(cmd.Context())
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))

		if report.Status != health.StatusOK {
			return fmt.Errorf("service is %s", report.Status)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(healthCmd)
}
