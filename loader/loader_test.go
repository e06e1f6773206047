package loader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAccounts(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "ledger.txt",
		"100 \"Jane Doe\" 250.00\n"+
			"garbage line\n"+
			"200 \"Bob\" 100.0\n")

	accounts, err := New().LoadAccounts(context.Background(), path)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(accounts))
	assert.Equal(t, "Jane Doe", accounts[100].CustomerInfo)
}

func TestLoadAccountsMissingFile(t *testing.T) {
	_, err := New().LoadAccounts(context.Background(), filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestLoadTransactions(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "transactions.txt",
		"purchase\t200\tts\t\"Mart\"\t25.00\n"+
			"payment\t200\tts\tcredit\t4111\t40.00\n")

	txns, err := New().LoadTransactions(context.Background(), path)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(txns))
	assert.Equal(t, 0, txns[0].SequenceNumber)
	assert.Equal(t, 1, txns[1].SequenceNumber)
}

func TestLoadTransactionsMissingFile(t *testing.T) {
	_, err := New().LoadTransactions(context.Background(), filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestLoadCancelledContext(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "ledger.txt", "100 \"Jane\" 250.00\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().LoadAccounts(ctx, path)
	assert.Error(t, err)
}
