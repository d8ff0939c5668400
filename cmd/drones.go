package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"drone-config/core/database"
	"drone-config/feature/drone"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// dronesCmd represents the drones command
var dronesCmd = &cobra.Command{
	Use:   "drones [key]",
	Short: "List drone configs, or show one in detail",
	Long:  `Reads the config store directly. Without arguments every profile is listed as a table.`,
	Args:  cobra.MaximumNArgs(1),
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
		store := drone.NewGormStore(db)

		if len(args) == 1 {
			return runDroneDetail(cmd.Context(), os.Stdout, store, args[0])
		}
		logg.Debug("Listing drone configs", zap.String("driver", cfg.Database.Driver))
		return runDroneList(cmd.Context(), os.Stdout, store)
	},
}

func init() {
	RootCmd.AddCommand(dronesCmd)
}

func runDroneList(ctx context.Context, out io.Writer, store drone.Store) error {
	configs, err := store.List(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tTITLE\tSTYLE\tCOLOR\tSCALE\tANIMATE\tSIMULATOR")
	for _, c := range configs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%g\t%v\t%v\n",
			c.Key, c.Title, c.Style, c.Color, c.Scale, c.Animate, c.Simulator)
	}
	return w.Flush()
}

func runDroneDetail(ctx context.Context, out io.Writer, store drone.Store, key string) error {
	c, err := store.Get(ctx, key)
	if errors.Is(err, drone.ErrNotFound) {
		return fmt.Errorf("drone %q not found", key)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "\n--- Drone Config ---")
	fmt.Fprintf(out, "Key:          %s\n", c.Key)
	fmt.Fprintf(out, "Title:        %s\n", c.Title)
	fmt.Fprintf(out, "Description:  %s\n", c.Description)
	fmt.Fprintln(out, "--------------------")
	fmt.Fprintf(out, "Style:        %s\n", c.Style)
	fmt.Fprintf(out, "Color:        %s\n", c.Color)
	fmt.Fprintf(out, "Scale:        %g\n", c.Scale)
	fmt.Fprintf(out, "Animate:      %v\n", c.Animate)
	fmt.Fprintf(out, "Simulator:    %v\n", c.Simulator)
	fmt.Fprintln(out, "--------------------")
	return nil
}
