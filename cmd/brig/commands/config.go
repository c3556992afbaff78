package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fivetwenty-io/brigade-client/internal/constants"
	"github.com/fivetwenty-io/brigade-client/pkg/brigade"
	"github.com/fivetwenty-io/brigade-client/pkg/brigclient"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the CLI configuration.
type Config struct {
	API      string `json:"api,omitempty"      yaml:"api,omitempty"`
	Token    string `json:"token,omitempty"    yaml:"token,omitempty"`
	Insecure bool   `json:"insecure,omitempty" yaml:"insecure,omitempty"`
	Output   string `json:"output,omitempty"   yaml:"output,omitempty"`
	NoColor  bool   `json:"no_color,omitempty" yaml:"no_color,omitempty"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Inspect the brig CLI configuration",
	}

	cmd.AddCommand(newConfigShowCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective CLI configuration from flags, environment and config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			if config.Token != "" {
				config.Token = constants.MaskedSecret
			}

			return renderOutput(cmd.OutOrStdout(), config, func(w io.Writer) error {
				return renderTable(w, []string{"Property", "Value"}, [][]string{
					{"API", formatValue(config.API)},
					{"Token", formatValue(config.Token)},
					{"Insecure", strconv.FormatBool(config.Insecure)},
					{"Output", formatValue(config.Output)},
					{"No Color", strconv.FormatBool(config.NoColor)},
					{"Config File", formatValue(viper.ConfigFileUsed())},
				})
			})
		},
	}
}

func loadConfig() *Config {
	return &Config{
		API:      viper.GetString(constants.ConfigKeyAPI),
		Token:    viper.GetString(constants.ConfigKeyToken),
		Insecure: viper.GetBool(constants.ConfigKeyInsecure),
		Output:   viper.GetString(constants.ConfigKeyOutput),
		NoColor:  viper.GetBool(constants.ConfigKeyNoColor),
	}
}

func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, constants.ConfigDirName, constants.ConfigFileName+".yml"), nil
}

// readStoredConfig returns the configuration persisted in the config file,
// ignoring flags and environment. A missing file yields an empty Config.
func readStoredConfig() (*Config, error) {
	configFile, err := configFilePath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Clean(configFile))
	if errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config

	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// saveCredentials stores api and token in the config file. Every other stored
// setting is kept as it is on disk, so one-off flags are never persisted.
func saveCredentials(api, token string) error {
	config, err := readStoredConfig()
	if err != nil {
		return err
	}

	config.API = api
	config.Token = token

	return saveConfigStruct(config)
}

func saveConfigStruct(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	viper.Set(constants.ConfigKeyAPI, config.API)
	viper.Set(constants.ConfigKeyToken, config.Token)

	return nil
}

// buildClientConfig translates the CLI configuration into a client config.
func buildClientConfig(config *Config) *brigade.Config {
	verbose := viper.GetBool(constants.ConfigKeyVerbose)

	return &brigade.Config{
		APIAddress:               config.API,
		Token:                    config.Token,
		AllowInsecureConnections: config.Insecure,
		Debug:                    verbose,
		Logger:                   newLogger(os.Stderr, verbose, config.NoColor),
		UserAgent:                "brig/" + constants.Version,
	}
}

// CreateClient builds an authenticated client from the CLI configuration.
func CreateClient() (brigade.Client, error) {
	config := loadConfig()

	if config.API == "" {
		return nil, constants.ErrNoAPIConfigured
	}

	if config.Token == "" {
		return nil, constants.ErrNotAuthenticated
	}

	client, err := brigclient.New(buildClientConfig(config))
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// commandContext bounds a single command invocation.
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}

	return context.WithTimeout(parent, constants.DefaultCommandTimeout)
}
