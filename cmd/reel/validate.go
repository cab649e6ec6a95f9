package main

import (
	"fmt"
	"strings"

	"github.com/rpggio/reel/seed"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Parse and validate a seed file",
	Long: `Check that a seed file parses and builds a valid catalog: unique
non-empty project IDs, an image for every featured project, and a named
profile. With no file, the bundled catalog is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	}

	f, err := seed.Load(path)
	if err != nil {
		return err
	}
	catalog, err := f.Catalog()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "profile:    %s\n", f.Profile.Name)
	fmt.Fprintf(out, "projects:   %d\n", catalog.Len())
	fmt.Fprintf(out, "featured:   %d\n", len(catalog.ListFeatured()))
	fmt.Fprintf(out, "categories: %s\n", strings.Join(catalog.ListCategories(), ", "))
	return nil
}
