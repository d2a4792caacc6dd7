package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"model-forge/internal/dialect"
	"model-forge/internal/engine"
	"model-forge/internal/schema"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	tables       []string
	includeViews bool
	styleName    string
	withFixtures bool
	fixtureRows  int
	fixtureSeed  int64
	modelsDir    string
	specsDir     string
	fixturesDir  string
	className    string
	dryRun       bool
)

// artifact is a rendered file waiting for the write phase.
type artifact struct {
	path    string
	content string
}

// genResult feeds the summary report for one table.
type genResult struct {
	TableName string
	ClassName string
	Artifacts []string
	Columns   int
	Skipped   int
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate model and spec files from the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		if config, err := GetActiveDBConfig(); err == nil {
			fmt.Printf("🔨 Connected to %s (%s)\n", config.Name, config.Driver)
		} else {
			fmt.Printf("🔨 Connected via %s\n", DriverName)
		}

		// Style must resolve before anything is derived.
		style, err := engine.ParseStyle(viper.GetString("settings.style"))
		if err != nil {
			return err
		}

		// 0. Get Dialect
		d := dialect.GetDialect(DriverName)
		log.Printf("Using Dialect: %s\n", DriverName)

		// 1. Analyze
		log.Println("Analyzing schema...")
		allTables, err := schema.Analyze(DB, d, SchemaName)
		if err != nil {
			return err
		}

		// Target selection strategy:
		// 1. Check CLI flag --tables
		// 2. If empty, check config settings.tables
		// 3. If both empty, process all tables (views only with --views).
		var targetNames []string
		if len(tables) > 0 {
			targetNames = tables
		} else {
			configTables := viper.GetStringSlice("settings.tables")
			if len(configTables) > 0 {
				targetNames = configTables
			}
		}

		var targets []*schema.Table
		if len(targetNames) > 0 {
			reqTables := make(map[string]bool)
			for _, t := range targetNames {
				reqTables[strings.ToLower(t)] = true
			}
			// Explicit names may pick views without --views.
			for _, t := range allTables {
				if reqTables[strings.ToLower(t.Name)] {
					targets = append(targets, t)
				}
			}
			if len(targets) == 0 {
				return fmt.Errorf("no matching tables found for inputs: %v", targetNames)
			}
		} else {
			for _, t := range allTables {
				if t.IsView && !includeViews {
					continue
				}
				targets = append(targets, t)
			}
		}

		if len(targets) == 0 {
			return fmt.Errorf("no tables found in schema %q", SchemaName)
		}
		if className != "" && len(targets) != 1 {
			return fmt.Errorf("--class needs exactly one target table, got %d", len(targets))
		}

		rows := viper.GetInt("settings.fixture_rows")
		if fixtureRows > 0 {
			rows = fixtureRows
		}
		mDir := viper.GetString("settings.models_dir")
		sDir := viper.GetString("settings.specs_dir")
		fDir := viper.GetString("settings.fixtures_dir")

		// Dry Run
		if dryRun {
			log.Println("[SIMULATION] Dry-Run Mode Active: No files will be written.")
			fmt.Printf("🔍 Generation Plan (style: %s):\n", style)
			for i, t := range targets {
				kind := "table"
				if t.IsView {
					kind = "view"
				}
				base := fileBaseFor(t)
				files := []string{
					filepath.Join(mDir, base+".rb"),
					filepath.Join(sDir, base+"_spec.rb"),
				}
				if withFixtures {
					files = append(files, filepath.Join(fDir, t.Name+".yml"))
				}
				fmt.Printf("[%02d] %-20s (%s) -> %s\n", i+1, t.Name, kind, strings.Join(files, ", "))
			}
			return nil
		}

		log.Printf("Generating %s-style artifacts for %d tables...", style, len(targets))
		start := time.Now()

		// 2. Setup Progress Bar
		uiprogress.Start()
		bar := uiprogress.AddBar(len(targets)).AppendCompleted().PrependElapsed()
		bar.PrependFunc(func(b *uiprogress.Bar) string {
			return "Rendering:  "
		})

		// 3. Render everything in memory. A single failure aborts the
		// run before the first file is touched.
		var artifacts []artifact
		var results []genResult
		var renderErr error

		for _, t := range targets {
			class := schema.ClassName(t.Name)
			base := fileBaseFor(t)
			if className != "" {
				class = className
			}

			g, err := engine.New(genInput(t, class), style)
			if err != nil {
				renderErr = err
				break
			}

			artifacts = append(artifacts,
				artifact{filepath.Join(mDir, base+".rb"), g.Model()},
				artifact{filepath.Join(sDir, base+"_spec.rb"), g.Spec()},
			)
			names := []string{"model", "spec"}

			if withFixtures {
				fx, err := engine.Fixtures(t, rows, fixtureSeed)
				if err != nil {
					renderErr = err
					break
				}
				artifacts = append(artifacts, artifact{filepath.Join(fDir, t.Name+".yml"), fx})
				names = append(names, "fixtures")
			}

			skipped := 0
			for _, c := range t.Columns {
				if engine.Skip(c) {
					skipped++
				}
			}
			results = append(results, genResult{
				TableName: t.Name,
				ClassName: class,
				Artifacts: names,
				Columns:   len(t.Columns),
				Skipped:   skipped,
			})
			bar.Incr()
		}

		uiprogress.Stop()

		if renderErr != nil {
			return renderErr
		}

		// 4. Write phase
		log.Printf("Writing %d files...", len(artifacts))
		for _, a := range artifacts {
			if err := os.MkdirAll(filepath.Dir(a.path), 0755); err != nil {
				return fmt.Errorf("failed to create %s: %w", filepath.Dir(a.path), err)
			}
			if err := os.WriteFile(a.path, []byte(a.content), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", a.path, err)
			}
		}

		elapsed := time.Since(start)

		// 5. Final Report
		fmt.Println("\n📊 Summary Report:")
		for i, r := range results {
			fmt.Printf("[✓] [%02d/%02d] %-20s -> %-18s : %s (%d columns, %d skipped)\n",
				i+1, len(results), r.TableName, r.ClassName, strings.Join(r.Artifacts, ", "), r.Columns, r.Skipped)
		}
		fmt.Println("--------------------------------------------------")
		fmt.Printf("Total Files: %d\n", len(artifacts))
		log.Printf("Generation Done! Time Elapsed: %s", elapsed)

		return nil
	},
}

// fileBaseFor picks the artifact file base: the --class override wins,
// otherwise the singular snake form of the table name.
func fileBaseFor(t *schema.Table) string {
	if className != "" {
		return schema.SnakeCase(className)
	}
	return schema.FileBase(t.Name)
}

// genInput assembles the engine input for one table. Relation targets
// come from the foreign keys in schema order.
func genInput(t *schema.Table, class string) engine.Input {
	var refs []string
	for _, fk := range t.ForeignKeys {
		refs = append(refs, fk.RefTable)
	}
	return engine.Input{
		ClassName:  class,
		TableName:  t.Name,
		PrimaryKey: t.PrimaryKey,
		Relations:  refs,
		Columns:    t.Columns,
	}
}

func init() {
	RootCmd.AddCommand(generateCmd)

	// CLI Flags
	generateCmd.Flags().StringSliceVarP(&tables, "tables", "t", []string{}, "Specific tables to generate (comma-separated)")
	generateCmd.Flags().BoolVar(&includeViews, "views", false, "Include views in the default target set")
	generateCmd.Flags().StringVar(&styleName, "style", "", "Validation style: current or legacy (overrides config)")
	generateCmd.Flags().BoolVar(&withFixtures, "fixtures", false, "Also generate YAML fixtures")
	generateCmd.Flags().IntVar(&fixtureRows, "fixture-rows", 0, "Records per fixture file (overrides config)")
	generateCmd.Flags().Int64Var(&fixtureSeed, "seed", engine.DefaultSeed, "Seed for fixture values")
	generateCmd.Flags().StringVar(&modelsDir, "models-dir", "", "Output directory for models (overrides config)")
	generateCmd.Flags().StringVar(&specsDir, "specs-dir", "", "Output directory for specs (overrides config)")
	generateCmd.Flags().StringVar(&fixturesDir, "fixtures-dir", "", "Output directory for fixtures (overrides config)")
	generateCmd.Flags().StringVar(&className, "class", "", "Class name override (single table only)")
	generateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the plan without writing files")

	viper.BindPFlag("settings.style", generateCmd.Flags().Lookup("style"))
	viper.BindPFlag("settings.fixture_rows", generateCmd.Flags().Lookup("fixture-rows"))
	viper.BindPFlag("settings.models_dir", generateCmd.Flags().Lookup("models-dir"))
	viper.BindPFlag("settings.specs_dir", generateCmd.Flags().Lookup("specs-dir"))
	viper.BindPFlag("settings.fixtures_dir", generateCmd.Flags().Lookup("fixtures-dir"))

	viper.SetDefault("settings.style", "current")
	viper.SetDefault("settings.fixture_rows", 3)
	viper.SetDefault("settings.models_dir", filepath.Join("app", "models"))
	viper.SetDefault("settings.specs_dir", filepath.Join("spec", "models"))
	viper.SetDefault("settings.fixtures_dir", filepath.Join("spec", "fixtures"))
}
