package cmd

import (
	"fmt"

	"drone-config/core/storage"
	"drone-config/feature/frontend"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// publishCmd represents the publish command
var publishCmd = &cobra.Command{
	Use:   "publish [dir]",
	Short: "Upload a frontend build into the storage bucket",
	Long:  `Uploads every file under dir (default: server.static_dir) into storage.bucket below storage.prefix, creating the bucket when needed.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadRuntime()
		if err != nil {
			return err
		}
		defer logg.Sync()

		dir := cfg.Server.StaticDir
		if len(args) == 1 {
			dir = args[0]
		}

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return err
		}

		pub := frontend.NewPublisher(client, cfg.Storage.Bucket, cfg.Storage.Prefix, logg)
		n, err := pub.Publish(cmd.Context(), dir)
		if err != nil {
			return err
		}

		logg.Info("Frontend published",
			zap.String("dir", dir),
			zap.String("bucket", cfg.Storage.Bucket),
			zap.Int("objects", n))
		if !cfg.Storage.Enabled {
			fmt.Println("Note: set STORAGE_ENABLED=true to serve the frontend from the bucket.")
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(publishCmd)
}
