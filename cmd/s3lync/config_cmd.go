// File: cmd/s3lync/config_cmd.go
package main

import (
	"fmt"
	"strings"

	"s3lync/internal/config"

	"github.com/spf13/cobra"
)

func newConfigCmd(app *appContainer) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration settings",
		Long:  `Manage persisted configuration. You can set, get, list, and unset configuration values; environment variables always take precedence over the file.`,
	}

	configSetCmd := &cobra.Command{
		Use:   "set [key] [value]",
		Short: "Set a configuration key-value pair",
		Long:  `Sets a configuration value. For example: 's3lync config set aws.region eu-west-1'`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := strings.ToLower(args[0])
			value := args[1]

			if err := config.SetValue(key, value); err != nil {
				return fmt.Errorf("error setting configuration: %w", err)
			}
			fmt.Printf("Configuration set: %s = %s\n", key, value)
			return nil
		},
	}

	configGetCmd := &cobra.Command{
		Use:   "get [key]",
		Short: "Get a configuration value by key",
		Long:  `Retrieves a persisted configuration value. For example: 's3lync config get aws.region'`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := strings.ToLower(args[0])

			value, exists, err := config.GetValue(key)
			if err != nil {
				return err
			}
			if !exists || value == "" {
				return fmt.Errorf("configuration key '%s' not found or not set", key)
			}
			fmt.Printf("%s = %s\n", key, value)
			return nil
		},
	}

	configUnsetCmd := &cobra.Command{
		Use:   "unset [key]",
		Short: "Remove a configuration value by key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := strings.ToLower(args[0])

			deleted, err := config.DeleteValue(key)
			if err != nil {
				return fmt.Errorf("error removing configuration: %w", err)
			}
			if !deleted {
				return fmt.Errorf("configuration key '%s' not found", key)
			}
			fmt.Printf("Configuration key '%s' removed\n", key)
			return nil
		},
	}

	configListCmd := &cobra.Command{
		Use:   "list",
		Short: "List all persisted configuration values",
		RunE: func(cmd *cobra.Command, args []string) error {
			rendered, err := config.RenderValues()
			if err != nil {
				return err
			}
			if rendered == "" {
				fmt.Println("No configuration values set. Use 's3lync config set <key> <value>'.")
				return nil
			}
			fmt.Print(rendered)
			return nil
		},
	}

	configCmd.AddCommand(configSetCmd, configGetCmd, configUnsetCmd, configListCmd)
	return configCmd
}
