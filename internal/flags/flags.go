// File: internal/flags/flags.go
package flags

// Centralized definitions for CLI flags used across the application

const (
	// Local flags override the cache-derived local path for a sync operation
	Local      = "local"
	LocalShort = "l"

	// NoVerify flags disable post-transfer content hash verification
	NoVerify = "no-verify"

	// Force flags enable force-sync (make one side an exact mirror of the other)
	// and, on delete, bypass the interactive confirmation prompt
	Force      = "force"
	ForceShort = "f"

	// Exclude flags carry a regular expression filtering local paths out of uploads
	Exclude      = "exclude"
	ExcludeShort = "e"

	// Parallel flags bound the number of concurrent per-file transfers
	Parallel = "parallel"

	// Debug flags are used to enable verbose logging
	Debug      = "debug"
	DebugShort = "d"
)
