// File: cmd/s3lync/object_cmd.go
package main

import (
	"fmt"

	"s3lync/internal/flags"

	"github.com/spf13/cobra"
)

func newExistsCmd(app *appContainer) *cobra.Command {
	existsCmd := &cobra.Command{
		Use:   "exists [address]",
		Short: "Check whether an object or prefix exists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uri := args[0]

			exists, err := app.SyncService.Exists(cmd.Context(), uri)
			if err != nil {
				return fmt.Errorf("error checking '%s': %w", uri, err)
			}

			if exists {
				fmt.Printf("%s exists\n", uri)
				return nil
			}
			fmt.Printf("%s does not exist\n", uri)
			// Non-zero exit so scripts can branch on existence
			cmd.SilenceErrors = true
			return fmt.Errorf("not found")
		},
	}
	return existsCmd
}

func newDeleteCmd(app *appContainer) *cobra.Command {
	var force bool

	deleteCmd := &cobra.Command{
		Use:   "delete [address]",
		Short: "Delete an object or an entire prefix",
		Long: `Deletes the object at the given address. When the address resolves to a
prefix, every object underneath it is deleted; this is confirmed
interactively unless --force is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uri := args[0]

			if !force {
				isPrefix, err := app.SyncService.IsPrefix(cmd.Context(), uri)
				if err != nil {
					return fmt.Errorf("error inspecting '%s': %w", uri, err)
				}
				if isPrefix {
					confirmed, err := app.Prompter.Confirm(
						fmt.Sprintf("This will delete every object under %s.", uri), uri)
					if err != nil {
						return err
					}
					if !confirmed {
						fmt.Println("Deletion aborted.")
						return nil
					}
				}
			}

			if err := app.SyncService.Delete(cmd.Context(), uri); err != nil {
				return fmt.Errorf("error deleting '%s': %w", uri, err)
			}

			fmt.Printf("Deleted %s\n", uri)
			return nil
		},
	}
	deleteCmd.Flags().BoolVarP(&force, flags.Force, flags.ForceShort, false, "Skip the confirmation prompt for prefix deletion")

	return deleteCmd
}

func newStatCmd(app *appContainer) *cobra.Command {
	statCmd := &cobra.Command{
		Use:   "stat [address]",
		Short: "Show metadata for an object or prefix",
		Long:  `Shows size, content fingerprint, and modification time for a single object, or the object count and aggregate size for a prefix.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uri := args[0]

			result, err := app.SyncService.Stat(cmd.Context(), uri)
			if err != nil {
				return fmt.Errorf("error describing '%s': %w", uri, err)
			}

			fmt.Println(app.StatFormatter.FormatStat(result))
			return nil
		},
	}
	return statCmd
}
