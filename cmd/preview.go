package cmd

import (
	"fmt"
	"strings"

	"model-forge/internal/dialect"
	"model-forge/internal/engine"
	"model-forge/internal/schema"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	previewStyle    string
	previewFixtures bool
)

var previewCmd = &cobra.Command{
	Use:   "preview <table>",
	Short: "Print the artifacts for one table without writing files",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		styleInput := viper.GetString("settings.style")
		if previewStyle != "" {
			styleInput = previewStyle
		}
		style, err := engine.ParseStyle(styleInput)
		if err != nil {
			return err
		}

		d := dialect.GetDialect(DriverName)
		allTables, err := schema.Analyze(DB, d, SchemaName)
		if err != nil {
			return err
		}

		var target *schema.Table
		for _, t := range allTables {
			if strings.EqualFold(t.Name, name) {
				target = t
				break
			}
		}
		if target == nil {
			return fmt.Errorf("table %q not found (try the list command)", name)
		}

		g, err := engine.New(genInput(target, schema.ClassName(target.Name)), style)
		if err != nil {
			return err
		}

		base := schema.FileBase(target.Name)
		fmt.Printf("--- %s.rb ---\n", base)
		fmt.Print(g.Model())
		fmt.Printf("\n--- %s_spec.rb ---\n", base)
		fmt.Print(g.Spec())

		if previewFixtures {
			fx, err := engine.Fixtures(target, viper.GetInt("settings.fixture_rows"), engine.DefaultSeed)
			if err != nil {
				return err
			}
			fmt.Printf("\n--- %s.yml ---\n", target.Name)
			fmt.Print(fx)
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringVar(&previewStyle, "style", "", "Validation style: current or legacy")
	previewCmd.Flags().BoolVar(&previewFixtures, "fixtures", false, "Include the YAML fixture preview")
}
