package cmd

import (
	"fmt"
	"log"
	"strings"

	"model-forge/internal/dialect"
	"model-forge/internal/schema"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tables and views with their key shapes",
	RunE: func(cmd *cobra.Command, args []string) error {
		d := dialect.GetDialect(DriverName)

		log.Println("Analyzing schema...")
		tables, err := schema.Analyze(DB, d, SchemaName)
		if err != nil {
			return err
		}

		fmt.Printf("📋 %d objects (driver: %s)\n\n", len(tables), DriverName)
		fmt.Printf("%-24s %-6s %8s %5s  %s\n", "NAME", "KIND", "COLUMNS", "FKS", "PRIMARY KEY")
		for _, t := range tables {
			kind := "table"
			if t.IsView {
				kind = "view"
			}
			fmt.Printf("%-24s %-6s %8d %5d  %s\n",
				t.Name, kind, len(t.Columns), len(t.ForeignKeys), keyShape(t.PrimaryKey))
		}

		return nil
	},
}

// keyShape formats a primary key for the report.
func keyShape(pk schema.PrimaryKey) string {
	switch k := pk.(type) {
	case schema.SingleKey:
		return k.Name
	case schema.CompositeKey:
		return strings.Join(k.Names, ", ")
	}
	return "(none)"
}

func init() {
	RootCmd.AddCommand(listCmd)
}
