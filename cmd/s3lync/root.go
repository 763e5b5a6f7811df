// File: cmd/s3lync/root.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd(app *appContainer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "s3lync",
		Short: "s3lync keeps local files and object storage in sync.",
		Long: `A command-line tool that mirrors files and directory trees between the
local filesystem and object storage (s3:// and gs:// addresses), skipping
transfers whose content already matches and verifying downloads against the
remote content fingerprint.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newDownloadCmd(app),
		newUploadCmd(app),
		newExistsCmd(app),
		newDeleteCmd(app),
		newStatCmd(app),
		newConfigCmd(app),
	)
	return rootCmd
}

func Execute(app *appContainer) {
	if err := newRootCmd(app).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
