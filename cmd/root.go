package cmd

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/microsoft/go-mssqldb"
	_ "github.com/sijms/go-ora/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	dsn        string
	driver     string
	DB         *sql.DB
	SchemaName string // Schema passed to the analyzer (MySQL: current database)
	cfgFile    string
	DriverName string // "mysql", "postgres", "sqlserver" or "oracle"
)

var RootCmd = &cobra.Command{
	Use:   "model-forge",
	Short: "An ActiveRecord model and spec generator",
	Long: `
  _____ ___  ____   ____ _____
 |  ___/ _ \|  _ \ / ___| ____|
 | |_ | | | | |_) | |  _|  _|
 |  _|| |_| |  _ <| |_| | |___
 |_|   \___/|_| \_\\____|_____|

MODEL FORGE 🔨 - ActiveRecord Model & Spec Generator
`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Resolve connection (active profile > flag/config dsn > default)
		connStr := viper.GetString("database.dsn")
		driverName := viper.GetString("database.driver")

		if active, err := GetActiveDBConfig(); err == nil {
			connStr = active.DSN
			if active.Driver != "" {
				driverName = active.Driver
			}
			if active.Schema != "" {
				SchemaName = active.Schema
			}
		}

		if connStr == "" {
			return fmt.Errorf("database.dsn is required (via flag or config)")
		}

		if driverName == "" {
			// Auto-detect from the DSN shape
			switch {
			case strings.HasPrefix(connStr, "postgres://"), strings.Contains(connStr, "sslmode"):
				driverName = "postgres"
			case strings.HasPrefix(connStr, "sqlserver://"):
				driverName = "sqlserver"
			case strings.HasPrefix(connStr, "oracle://"):
				driverName = "oracle"
			default:
				driverName = "mysql"
			}
		}
		DriverName = driverName

		var err error
		DB, err = sql.Open(DriverName, connStr)
		if err != nil {
			return fmt.Errorf("failed to open db: %w", err)
		}
		if err := DB.Ping(); err != nil {
			return fmt.Errorf("failed to connect to db: %w", err)
		}

		// Fetch current database/schema name for the analyzer
		if SchemaName == "" {
			switch DriverName {
			case "mysql":
				if err := DB.QueryRow("SELECT DATABASE()").Scan(&SchemaName); err != nil {
					return fmt.Errorf("failed to get database name: %w", err)
				}
				if SchemaName == "" {
					return fmt.Errorf("no database selected in DSN")
				}
			case "sqlserver", "mssql":
				SchemaName = "dbo"
			case "oracle":
				// USER_* catalogs already scope to the connected user
				SchemaName = ""
			default:
				SchemaName = "public"
			}
		}

		return nil
	},
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Define flags
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./model-forge.yaml)")
	RootCmd.PersistentFlags().StringVar(&dsn, "dsn", "", "Database Source Name (DSN)")
	RootCmd.PersistentFlags().StringVar(&driver, "driver", "", "Database driver (mysql, postgres, sqlserver, oracle)")

	// Bind connection flags to viper
	viper.BindPFlag("database.dsn", RootCmd.PersistentFlags().Lookup("dsn"))
	viper.BindPFlag("database.driver", RootCmd.PersistentFlags().Lookup("driver"))

	// Set default for Viper (fallback if no config/flag)
	viper.SetDefault("database.dsn", "root:root@tcp(127.0.0.1:3306)/app_development?parseTime=true")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// 1. Executable Directory (Priority 1)
		ex, err := os.Executable()
		if err == nil {
			exePath := filepath.Dir(ex)
			viper.AddConfigPath(exePath)
		}

		// 2. Current Directory (Priority 2)
		viper.AddConfigPath(".")

		viper.SetConfigName("model-forge")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
