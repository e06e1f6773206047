package cli

import "github.com/alecthomas/kong"

var (
	Version   = ""
	CommitSHA = ""
)

// Globals defines global flags available to all commands.
type Globals struct {
	Telemetry bool `help:"Show timing telemetry for operations."`
}

type Commands struct {
	Globals

	Version kong.VersionFlag `help:"Show version information."`

	Report ReportCmd `cmd:"" help:"Generate the statement report from a ledger and a transaction log."`
	Check  CheckCmd  `cmd:"" help:"Report data-quality issues in the input files without writing a report."`
	Dump   DumpCmd   `cmd:"" help:"Print parsed accounts and transactions for debugging."`
	Watch  WatchCmd  `cmd:"" help:"Regenerate the statement report whenever an input file changes."`
	Init   InitCmd   `cmd:"" help:"Write sample input files to get started."`
}
