package main

import (
	"fmt"

	"github.com/rpggio/reel/internal/domain/project"
	"github.com/rpggio/reel/internal/sqlite"
	"github.com/rpggio/reel/seed"
	"github.com/spf13/cobra"
)

var seedFile string

func init() {
	seedCmd.Flags().StringVar(&seedFile, "file", "", "seed YAML file (defaults to REEL_SEED_PATH, then the bundled catalog)")
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Import a seed catalog into the database",
	Long: `Replace the stored catalog with the projects from a seed file.

Examples:
  # Re-import the bundled catalog
  reel seed

  # Import an edited catalog
  reel seed --file ./catalog.yaml`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer := newLogger(cfg)
	defer closer.Close()

	path := seedFile
	if path == "" {
		path = cfg.Seed.Path
	}
	f, err := seed.Load(path)
	if err != nil {
		return err
	}

	db, err := openDB(cfg, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	catalog, err := project.NewService(sqlite.NewProjectRepository(db), logger).Import(cmd.Context(), f.Projects)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "imported %d projects (%d featured) into %s\n",
		catalog.Len(), len(catalog.ListFeatured()), cfg.DB.Path)
	return nil
}
