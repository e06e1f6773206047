package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/alecthomas/kong"

	"github.com/jornvdb/bankstmt/ledger"
	"github.com/jornvdb/bankstmt/loader"
	"github.com/jornvdb/bankstmt/statement"
	"github.com/jornvdb/bankstmt/telemetry"
)

type ReportCmd struct {
	Ledger       string `help:"Account ledger input filename." arg:""`
	Transactions string `help:"Transaction log input filename." arg:""`
	Output       string `help:"Statement output filename, overwritten on each run." short:"o" default:"statement.txt"`
	Stdout       bool   `help:"Print the report to stdout instead of writing a file."`
	AmountColumn int    `help:"Column for amount alignment in transaction lines." default:"48"`
}

func (cmd *ReportCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx := context.Background()

	var collector telemetry.Collector
	var rootTimer telemetry.Timer
	var once sync.Once

	reportTelemetry := func() {
		once.Do(func() {
			if collector != nil {
				rootTimer.End()
				_, _ = fmt.Fprintln(ctx.Stderr)
				collector.Report(ctx.Stderr)
			}
		})
	}

	if globals.Telemetry {
		collector = telemetry.NewTimingCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)

		rootTimer = collector.Start(fmt.Sprintf("report %s", filepath.Base(cmd.Output)))
		runCtx = telemetry.WithRootTimer(runCtx, rootTimer)

		defer reportTelemetry()
	}

	report, err := generateReport(runCtx, cmd.Ledger, cmd.Transactions, cmd.AmountColumn)
	if err != nil {
		printError(ctx.Stderr, err.Error())
		reportTelemetry()
		return NewCommandError(1)
	}

	if cmd.Stdout {
		_, err := ctx.Stdout.Write(report)
		return err
	}

	if err := os.WriteFile(cmd.Output, report, 0o644); err != nil {
		printError(ctx.Stderr, fmt.Sprintf("failed to write %s: %v", cmd.Output, err))
		reportTelemetry()
		return NewCommandError(1)
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Wrote statement to %s", pathStyle.Render(cmd.Output)))

	return nil
}

// generateReport runs the whole pipeline and returns the rendered report.
// The report is built fully in memory; the caller writes it in a single
// call so no partial statement file is ever observable.
func generateReport(ctx context.Context, ledgerPath, txnPath string, amountColumn int) ([]byte, error) {
	ldr := loader.New()

	accounts, err := ldr.LoadAccounts(ctx, ledgerPath)
	if err != nil {
		return nil, err
	}

	txns, err := ldr.LoadTransactions(ctx, txnPath)
	if err != nil {
		return nil, err
	}

	timer := telemetry.StartTimer(ctx, fmt.Sprintf("reconcile (%d accounts)", len(accounts)))
	byAccount := ledger.GroupByAccount(txns)
	for number, account := range accounts {
		accounts[number] = ledger.Reconcile(account, byAccount)
	}
	timer.End()

	timer = telemetry.StartTimer(ctx, "render")
	defer timer.End()

	var buf bytes.Buffer
	renderer := statement.New(statement.WithAmountColumn(amountColumn))
	if err := renderer.Render(&buf, accounts, byAccount); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
