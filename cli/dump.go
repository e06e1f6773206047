package cli

import (
	"context"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/jornvdb/bankstmt/loader"
)

// DumpCmd prints the parsed account registry and transaction list for
// debugging input files.
type DumpCmd struct {
	Ledger       string `help:"Account ledger input filename." arg:""`
	Transactions string `help:"Transaction log input filename." arg:""`
}

func (cmd *DumpCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx := context.Background()

	ldr := loader.New()
	accounts, err := ldr.LoadAccounts(runCtx, cmd.Ledger)
	if err != nil {
		return err
	}

	txns, err := ldr.LoadTransactions(runCtx, cmd.Transactions)
	if err != nil {
		return err
	}

	repr.Println(accounts)
	repr.Println(txns)

	return nil
}
