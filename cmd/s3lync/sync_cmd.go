// File: cmd/s3lync/sync_cmd.go
package main

import (
	"fmt"

	"s3lync/internal/flags"

	"github.com/spf13/cobra"
)

type syncFlags struct {
	local    string
	noVerify bool
	force    bool
	exclude  string
	parallel int
}

func newDownloadCmd(app *appContainer) *cobra.Command {
	cmdFlags := syncFlags{}

	downloadCmd := &cobra.Command{
		Use:   "download [address]",
		Short: "Download an object or prefix to the local filesystem",
		Long: `Downloads a single object or an entire prefix tree from the given address
(e.g. s3://bucket/key or gs://bucket/prefix/). Files whose local content
already matches the remote fingerprint are skipped. Without --local the
destination is derived under the cache directory.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uri := args[0]

			path, err := app.SyncService.Download(cmd.Context(), uri, cmdFlags.local,
				!cmdFlags.noVerify, cmdFlags.force, cmdFlags.parallel)
			if err != nil {
				return fmt.Errorf("error downloading '%s': %w", uri, err)
			}

			fmt.Printf("Downloaded %s to %s\n", uri, path)
			return nil
		},
	}
	downloadCmd.Flags().StringVarP(&cmdFlags.local, flags.Local, flags.LocalShort, "", "Local destination path. Defaults to a cache-derived path.")
	downloadCmd.Flags().BoolVar(&cmdFlags.noVerify, flags.NoVerify, false, "Skip content hash verification after transfer")
	downloadCmd.Flags().BoolVarP(&cmdFlags.force, flags.Force, flags.ForceShort, false, "Make the local tree an exact mirror, removing files absent remotely")
	downloadCmd.Flags().IntVar(&cmdFlags.parallel, flags.Parallel, 0, "Maximum concurrent file transfers (0 uses the default)")

	return downloadCmd
}

func newUploadCmd(app *appContainer) *cobra.Command {
	cmdFlags := syncFlags{}

	uploadCmd := &cobra.Command{
		Use:   "upload [address]",
		Short: "Upload a local file or directory to the given address",
		Long: `Uploads the local file or directory bound to the given address. Files whose
remote content already matches are skipped. Use --exclude to filter local
paths out of the upload with a regular expression.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uri := args[0]

			result, err := app.SyncService.Upload(cmd.Context(), uri, cmdFlags.local,
				!cmdFlags.noVerify, cmdFlags.force, cmdFlags.exclude, cmdFlags.parallel)
			if err != nil {
				return fmt.Errorf("error uploading to '%s': %w", uri, err)
			}

			fmt.Printf("Uploaded to %s\n", result)
			return nil
		},
	}
	uploadCmd.Flags().StringVarP(&cmdFlags.local, flags.Local, flags.LocalShort, "", "Local source path. Defaults to a cache-derived path.")
	uploadCmd.Flags().BoolVar(&cmdFlags.noVerify, flags.NoVerify, false, "Skip content hash comparison before transfer")
	uploadCmd.Flags().BoolVarP(&cmdFlags.force, flags.Force, flags.ForceShort, false, "Make the remote prefix an exact mirror, deleting objects absent locally")
	uploadCmd.Flags().StringVarP(&cmdFlags.exclude, flags.Exclude, flags.ExcludeShort, "", "Regular expression filtering local paths out of the upload")
	uploadCmd.Flags().IntVar(&cmdFlags.parallel, flags.Parallel, 0, "Maximum concurrent file transfers (0 uses the default)")

	return uploadCmd
}
