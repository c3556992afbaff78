package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fivetwenty-io/brigade-client/cmd/brig/commands"
	"github.com/fivetwenty-io/brigade-client/internal/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "brig",
	Short: "Brigade v2 CLI",
	Long: `A command-line interface for interacting with the Brigade v2 API.

This CLI manages projects and events: create and update projects from
manifests, submit events, and list, cancel or delete them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		commands.ConfigureColor(viper.GetBool(constants.ConfigKeyNoColor))
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.brig/config.yml)")
	rootCmd.PersistentFlags().StringP("api", "a", "", "API address")
	rootCmd.PersistentFlags().StringP("token", "t", "", "authentication token")
	rootCmd.PersistentFlags().StringP("output", "o", constants.FormatTable, "output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolP("insecure", "k", false, "skip TLS certificate verification")

	// Bind flags to viper
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag(constants.ConfigKeyAPI, rootCmd.PersistentFlags().Lookup("api"))
	_ = viper.BindPFlag(constants.ConfigKeyToken, rootCmd.PersistentFlags().Lookup("token"))
	_ = viper.BindPFlag(constants.ConfigKeyOutput, rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag(constants.ConfigKeyVerbose, rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag(constants.ConfigKeyNoColor, rootCmd.PersistentFlags().Lookup("no-color"))
	_ = viper.BindPFlag(constants.ConfigKeyInsecure, rootCmd.PersistentFlags().Lookup("insecure"))

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewLoginCommand())
	rootCmd.AddCommand(commands.NewLogoutCommand())
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewProjectsCommand())
	rootCmd.AddCommand(commands.NewEventsCommand())
}

func initConfig() {
	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in ~/.brig/config.yml
		viper.AddConfigPath(filepath.Join(home, constants.ConfigDirName))
		viper.SetConfigType("yml")
		viper.SetConfigName(constants.ConfigFileName)
	}

	// Read in environment variables that match, e.g. BRIG_API
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool(constants.ConfigKeyVerbose) {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		commands.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
