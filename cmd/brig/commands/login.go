package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fivetwenty-io/brigade-client/internal/constants"
	"github.com/fivetwenty-io/brigade-client/pkg/brigclient"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to Brigade as root",
		Long:  "Exchange the root password for a session token and store it in the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			if config.API == "" {
				reader := bufio.NewReader(cmd.InOrStdin())
				fmt.Fprint(cmd.OutOrStdout(), "API address: ")
				address, _ := reader.ReadString('\n')
				config.API = strings.TrimSpace(address)
			}

			if config.API == "" {
				return constants.ErrNoAPIConfigured
			}

			if password == "" {
				fmt.Fprint(cmd.OutOrStdout(), "Root password: ")

				bytePassword, err := term.ReadPassword(int(os.Stdin.Fd()))
				if err != nil {
					return fmt.Errorf("failed to read password: %w", err)
				}

				password = string(bytePassword)

				fmt.Fprintln(cmd.OutOrStdout())
			}

			if password == "" {
				return constants.ErrEmptyPassword
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			token, err := brigclient.CreateRootSession(ctx, buildClientConfig(config), password)
			if err != nil {
				return fmt.Errorf("failed to log in: %w", err)
			}

			config.API = brigclient.NormalizeAddress(config.API)

			err = saveCredentials(config.API, token.Value)
			if err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			_, _ = okLabel.Fprintf(cmd.OutOrStdout(), "Successfully logged in to %s\n", config.API)

			return nil
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "root password (prompted for when omitted)")

	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Logout from Brigade",
		Long:  "Remove the stored session token from the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := readStoredConfig()
			if err != nil {
				return err
			}

			config.Token = ""

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			viper.Set(constants.ConfigKeyToken, "")

			_, _ = okLabel.Fprintln(cmd.OutOrStdout(), "Successfully logged out")

			return nil
		},
	}
}
