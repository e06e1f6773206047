package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/alecthomas/kong"
)

func writeInputs(t *testing.T, dir string) (string, string) {
	t.Helper()

	ledgerPath := filepath.Join(dir, "ledger.txt")
	txnPath := filepath.Join(dir, "transactions.txt")

	assert.NoError(t, os.WriteFile(ledgerPath, []byte(
		"200 \"Bob\" 100.0\n"+
			"bad-line\n"), 0o644))
	assert.NoError(t, os.WriteFile(txnPath, []byte(
		"purchase\t200\t2024-03-01\t\"Corner Mart\"\t25.00\n"+
			"payment\t200\t2024-03-02\tcredit\t4111\t40.00\n"), 0o644))

	return ledgerPath, txnPath
}

// runCommand parses and runs a command line against a fresh Commands tree,
// capturing stdout and stderr.
func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var commands Commands
	var stdout, stderr bytes.Buffer

	parser, err := kong.New(&commands,
		kong.Name("bankstmt"),
		kong.Writers(&stdout, &stderr),
		kong.Bind(&commands.Globals),
		kong.Vars{"version": "test"},
	)
	assert.NoError(t, err)

	ctx, err := parser.Parse(args)
	assert.NoError(t, err)

	err = ctx.Run()
	return stdout.String(), stderr.String(), err
}

func TestReportCmd(t *testing.T) {
	dir := t.TempDir()
	ledgerPath, txnPath := writeInputs(t, dir)
	outPath := filepath.Join(dir, "statement.txt")

	stdout, _, err := runCommand(t, "report", ledgerPath, txnPath, "-o", outPath)
	assert.NoError(t, err)
	assert.True(t, strings.Contains(stdout, "Wrote statement"))

	report, err := os.ReadFile(outPath)
	assert.NoError(t, err)

	out := string(report)
	assert.True(t, strings.Contains(out, "Account 200, Bob, starting balance: 100.00"))
	assert.True(t, strings.Contains(out, "Total purchases: 25.00"))
	assert.True(t, strings.Contains(out, "Total payments: 40.00"))
	assert.True(t, strings.Contains(out, "Final balance: 115.00"))
}

func TestReportCmdOverwritesOutput(t *testing.T) {
	dir := t.TempDir()
	ledgerPath, txnPath := writeInputs(t, dir)
	outPath := filepath.Join(dir, "statement.txt")

	assert.NoError(t, os.WriteFile(outPath, []byte("stale content"), 0o644))

	_, _, err := runCommand(t, "report", ledgerPath, txnPath, "-o", outPath)
	assert.NoError(t, err)

	report, err := os.ReadFile(outPath)
	assert.NoError(t, err)
	assert.False(t, strings.Contains(string(report), "stale content"))
}

func TestReportCmdStdout(t *testing.T) {
	dir := t.TempDir()
	ledgerPath, txnPath := writeInputs(t, dir)

	stdout, _, err := runCommand(t, "report", ledgerPath, txnPath, "--stdout")
	assert.NoError(t, err)
	assert.True(t, strings.Contains(stdout, "Final balance: 115.00"))
}

func TestReportCmdMissingInputIsFatal(t *testing.T) {
	dir := t.TempDir()
	_, txnPath := writeInputs(t, dir)
	outPath := filepath.Join(dir, "statement.txt")

	_, stderr, err := runCommand(t, "report", filepath.Join(dir, "missing.txt"), txnPath, "-o", outPath)
	assert.Error(t, err)

	cmdErr, ok := err.(*CommandError)
	assert.True(t, ok)
	assert.Equal(t, 1, cmdErr.ExitCode())
	assert.True(t, strings.Contains(stderr, "missing.txt"))

	// No partial output was written.
	_, statErr := os.Stat(outPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestCheckCmd(t *testing.T) {
	dir := t.TempDir()
	ledgerPath := filepath.Join(dir, "ledger.txt")
	txnPath := filepath.Join(dir, "transactions.txt")

	assert.NoError(t, os.WriteFile(ledgerPath, []byte(
		"200 \"Bob\" 100.0\n"+
			"bad-line\n"), 0o644))
	assert.NoError(t, os.WriteFile(txnPath, []byte(
		"purchase\t200\tts\t\"Mart\"\t25.00\n"+
			"refund\t200\tts\t\"Mart\"\t1.00\n"+
			"payment\t999\tts\tcash\t\t5.00\n"+
			"purchase\tbogus\tts\t\"Mart\"\t2.00\n"), 0o644))

	stdout, _, err := runCommand(t, "check", ledgerPath, txnPath)
	assert.NoError(t, err)

	assert.True(t, strings.Contains(stdout, "1 accounts loaded"))
	assert.True(t, strings.Contains(stdout, "4 transactions parsed"))
	assert.True(t, strings.Contains(stdout, "1 ledger line(s) dropped"))
	assert.True(t, strings.Contains(stdout, "1 transaction(s) with unrecognized type"))
	assert.True(t, strings.Contains(stdout, "1 transaction(s) with unparsable account number"))
	assert.True(t, strings.Contains(stdout, "1 transaction(s) referencing accounts missing"))
}

func TestCheckCmdCleanInputs(t *testing.T) {
	dir := t.TempDir()
	ledgerPath, txnPath := writeInputs(t, dir)

	// Remove the deliberately bad ledger line for a clean pass.
	assert.NoError(t, os.WriteFile(ledgerPath, []byte("200 \"Bob\" 100.0\n"), 0o644))

	stdout, _, err := runCommand(t, "check", ledgerPath, txnPath)
	assert.NoError(t, err)
	assert.True(t, strings.Contains(stdout, "Check passed"))
}

func TestInitCmd(t *testing.T) {
	dir := t.TempDir()

	stdout, _, err := runCommand(t, "init", dir)
	assert.NoError(t, err)
	assert.True(t, strings.Contains(stdout, "ledger.txt"))
	assert.True(t, strings.Contains(stdout, "transactions.txt"))

	// The samples must round-trip through the pipeline.
	report, err := generateReport(context.Background(),
		filepath.Join(dir, "ledger.txt"),
		filepath.Join(dir, "transactions.txt"),
		48)
	assert.NoError(t, err)
	assert.True(t, strings.Contains(string(report), "Account 100, Jane Doe"))
	assert.True(t, strings.Contains(string(report), "Final balance: 115.00"))
}

func TestGenerateReportTelemetry(t *testing.T) {
	dir := t.TempDir()
	ledgerPath, txnPath := writeInputs(t, dir)
	outPath := filepath.Join(dir, "statement.txt")

	_, stderr, err := runCommand(t, "--telemetry", "report", ledgerPath, txnPath, "-o", outPath)
	assert.NoError(t, err)
	assert.True(t, strings.Contains(stderr, "report statement.txt"))
	assert.True(t, strings.Contains(stderr, "load ledger"))
	assert.True(t, strings.Contains(stderr, "render"))
}
