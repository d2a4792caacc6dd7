package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"model-forge/internal/dialect"
	"model-forge/internal/schema"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cleanDryRun bool

var cleanCmd = &cobra.Command{
	Use:   "clean [table ...]",
	Short: "Remove generated model, spec and fixture files",
	RunE: func(cmd *cobra.Command, args []string) error {
		if config, err := GetActiveDBConfig(); err == nil {
			fmt.Printf("🔨 Connected to %s (%s)\n", config.Name, config.Driver)
		} else {
			fmt.Printf("🔨 Connected via %s\n", DriverName)
		}

		// 1. Resolve target names: explicit args, otherwise every object
		// the schema knows about (views included, generate may have
		// produced artifacts for them).
		names := args
		if len(names) == 0 {
			log.Println("Analyzing schema...")
			allTables, err := schema.Analyze(DB, dialect.GetDialect(DriverName), SchemaName)
			if err != nil {
				return err
			}
			for _, t := range allTables {
				names = append(names, t.Name)
			}
		}
		if len(names) == 0 {
			return fmt.Errorf("no tables found in schema %q", SchemaName)
		}

		mDir := viper.GetString("settings.models_dir")
		sDir := viper.GetString("settings.specs_dir")
		fDir := viper.GetString("settings.fixtures_dir")

		return removeArtifacts(names, mDir, sDir, fDir)
	},
}

func init() {
	RootCmd.AddCommand(cleanCmd)

	cleanCmd.Flags().BoolVar(&cleanDryRun, "dry-run", false, "Show what would be removed without deleting")
}

// removeArtifacts deletes the generated files for each table name.
// Artifacts written under a --class override keep their own file base
// and are not matched here.
func removeArtifacts(names []string, mDir, sDir, fDir string) error {
	if cleanDryRun {
		log.Println("[SIMULATION] Dry-Run Mode Active: No files will be removed.")
	} else {
		log.Println("Cleaning generated files...")
	}

	removed := 0
	skipped := 0
	total := len(names)

	for i, name := range names {
		base := schema.FileBase(name)
		paths := []string{
			filepath.Join(mDir, base+".rb"),
			filepath.Join(sDir, base+"_spec.rb"),
			filepath.Join(fDir, name+".yml"),
		}

		for _, p := range paths {
			if _, err := os.Stat(p); err != nil {
				skipped++
				continue
			}
			if cleanDryRun {
				fmt.Printf("would remove %s\n", p)
				removed++
				continue
			}
			if err := os.Remove(p); err != nil {
				log.Printf("Warning: Failed to remove %s: %v (continuing...)\n", p, err)
				continue
			}
			removed++
		}

		if (i+1)%5 == 0 || i+1 == total {
			log.Printf("Cleaned %d/%d tables...", i+1, total)
		}
	}

	fmt.Println("--------------------------------------------------")
	fmt.Printf("Removed Files: %d (not present: %d)\n", removed, skipped)
	if !cleanDryRun {
		log.Println("Generated Files Cleaned Successfully!")
	}
	return nil
}
