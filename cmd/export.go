package cmd

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"pogodata/core/config"
	"pogodata/core/logger"
	"pogodata/core/remote"
	"pogodata/feature/pokedex"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	exportLanguage string
	exportOut      string
	exportFull     bool
)

// exportCmd builds the catalog once and writes it as JSON, without serving.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Build the catalog once and write it as JSON",
	Long: `Fetches the three upstream sources, builds the full catalog and writes
either a summary or the complete Pokemon list to a file or stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return err
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		fetcher := remote.NewFetcher(cfg.Sources, nil, logg)
		svc := pokedex.NewService(fetcher, logg, cfg.Sources.Language)

		if err := svc.Reload(context.Background(), exportLanguage); err != nil {
			return err
		}

		var payload any
		if exportFull {
			catalog, err := svc.Catalog()
			if err != nil {
				return err
			}
			payload = catalog.Pokemon
		} else {
			summary, err := svc.Summary()
			if err != nil {
				return err
			}
			payload = summary
		}

		out := os.Stdout
		if exportOut != "" {
			f, err := os.Create(exportOut)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
			logg.Info("Writing export", zap.String("path", exportOut))
		}

		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportLanguage, "language", "", "translation language (default from config)")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file (default stdout)")
	exportCmd.Flags().BoolVar(&exportFull, "full", false, "write the complete Pokemon list instead of a summary")
	RootCmd.AddCommand(exportCmd)
}
