// Package loader reads the two pipeline inputs, the account ledger and the
// transaction log, from disk. A missing or unreadable input file is the one
// fatal condition in the pipeline; everything past the read is lenient and
// degrades per record instead of failing.
//
// Example usage:
//
//	ldr := loader.New()
//	accounts, err := ldr.LoadAccounts(ctx, "ledger.txt")
//	txns, err := ldr.LoadTransactions(ctx, "transactions.txt")
package loader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jornvdb/bankstmt/ledger"
	"github.com/jornvdb/bankstmt/parser"
	"github.com/jornvdb/bankstmt/telemetry"
)

// Loader reads and parses the pipeline input files.
type Loader struct{}

// New creates a new Loader.
func New() *Loader {
	return &Loader{}
}

// LoadAccounts reads the ledger file and builds the account registry.
// Lines that do not match the ledger pattern are dropped silently; a read
// failure is fatal and returned.
func (l *Loader) LoadAccounts(ctx context.Context, filename string) (map[int]*ledger.Account, error) {
	timer := telemetry.StartTimer(ctx, fmt.Sprintf("load ledger %s", filepath.Base(filename)))
	defer timer.End()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return ledger.ParseAccounts(string(data)), nil
}

// LoadTransactions reads the transaction log and parses every line into a
// record, assigning sequence numbers by file position. A read failure is
// fatal and returned; malformed records degrade to defaults instead.
func (l *Loader) LoadTransactions(ctx context.Context, filename string) ([]*parser.Transaction, error) {
	timer := telemetry.StartTimer(ctx, fmt.Sprintf("load transactions %s", filepath.Base(filename)))
	defer timer.End()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return parser.ParseLog(string(data)), nil
}
