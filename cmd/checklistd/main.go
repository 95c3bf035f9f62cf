package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	serverrun "github.com/alkapone312/shared-checklist/internal/cmd/server"
	cfgpkg "github.com/alkapone312/shared-checklist/internal/config"
	pebblestore "github.com/alkapone312/shared-checklist/internal/storage/pebble"
)

func main() {
	root := &cobra.Command{
		Use:           "checklistd",
		Short:         "Shared checklist sync server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(serveCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	var (
		dataDir         string
		httpAddr        string
		configPath      string
		fsyncMode       string
		fsyncIntervalMs int
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the sync server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cfgpkg.Load(configPath)
			if err != nil {
				return err
			}
			cfgpkg.FromEnv(&cfg)

			fsync, err := parseFsyncMode(fsyncMode)
			if err != nil {
				return err
			}
			return serverrun.Run(cmd.Context(), serverrun.Options{
				DataDir:       dataDir,
				HTTPAddr:      httpAddr,
				Fsync:         fsync,
				FsyncInterval: time.Duration(fsyncIntervalMs) * time.Millisecond,
				Config:        cfg,
			})
		},
	}
	cmd.Flags().StringVar(&dataDir, "data-dir", "", "data directory (default: per-OS location)")
	cmd.Flags().StringVar(&httpAddr, "http", "", "HTTP listen address (default from config)")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a JSON or YAML config file")
	cmd.Flags().StringVar(&fsyncMode, "fsync", "interval", "WAL fsync policy: always|interval|never")
	cmd.Flags().IntVar(&fsyncIntervalMs, "fsync-interval-ms", 5, "group-commit window for --fsync interval")
	return cmd
}

func parseFsyncMode(s string) (pebblestore.FsyncMode, error) {
	switch s {
	case "always":
		return pebblestore.FsyncModeAlways, nil
	case "interval", "":
		return pebblestore.FsyncModeInterval, nil
	case "never":
		return pebblestore.FsyncModeNever, nil
	default:
		return pebblestore.FsyncModeUnspecified, fmt.Errorf("unknown fsync mode %q", s)
	}
}
