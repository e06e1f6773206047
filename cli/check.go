package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"golang.org/x/exp/slices"

	"github.com/jornvdb/bankstmt/ledger"
	"github.com/jornvdb/bankstmt/loader"
	"github.com/jornvdb/bankstmt/output"
	"github.com/jornvdb/bankstmt/parser"
	"github.com/jornvdb/bankstmt/telemetry"
)

type CheckCmd struct {
	Ledger       string `help:"Account ledger input filename." arg:""`
	Transactions string `help:"Transaction log input filename." arg:""`
}

// Run reports data-quality findings in the inputs. The pipeline itself
// tolerates all of these by design, so findings are informational; only a
// failed read produces a non-zero exit.
func (cmd *CheckCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx := context.Background()

	var collector telemetry.Collector
	if globals.Telemetry {
		collector = telemetry.NewTimingCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)

		defer func() {
			_, _ = fmt.Fprintln(ctx.Stderr)
			collector.Report(ctx.Stderr)
		}()
	}

	styles := output.NewStyles(ctx.Stdout)

	ldr := loader.New()
	accounts, err := ldr.LoadAccounts(runCtx, cmd.Ledger)
	if err != nil {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(1)
	}

	txns, err := ldr.LoadTransactions(runCtx, cmd.Transactions)
	if err != nil {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(1)
	}

	// Dropped ledger lines come from comparing the registry against the
	// raw non-blank line count; the lenient loader has no other signal.
	raw, err := os.ReadFile(cmd.Ledger)
	if err != nil {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(1)
	}
	ledgerLines := 0
	for _, line := range strings.Split(string(raw), "\n") {
		if strings.TrimSpace(line) != "" {
			ledgerLines++
		}
	}
	dropped := ledgerLines - len(accounts)

	var unknownTypes, unknownMethods, unmatched, orphaned int
	for _, txn := range txns {
		if txn.Type == parser.TxnUnknown {
			unknownTypes++
		}
		if txn.Method == parser.MethodUnknown {
			unknownMethods++
		}
		if txn.AccountNumber == parser.UnmatchedAccount {
			unmatched++
			continue
		}
		if _, ok := accounts[txn.AccountNumber]; !ok {
			orphaned++
		}
	}

	printInfof(ctx.Stdout, "%s accounts loaded", styles.Keyword(fmt.Sprintf("%d", len(accounts))))
	printInfof(ctx.Stdout, "%s transactions parsed", styles.Keyword(fmt.Sprintf("%d", len(txns))))

	findings := 0
	reportFinding := func(count int, format string) {
		if count == 0 {
			return
		}
		findings += count
		printWarning(ctx.Stdout, fmt.Sprintf(format, count))
	}

	reportFinding(dropped, "%d ledger line(s) dropped (pattern mismatch)")
	reportFinding(unknownTypes, "%d transaction(s) with unrecognized type (ignored by the balance fold)")
	reportFinding(unknownMethods, "%d payment(s) with unrecognized method")
	reportFinding(unmatched, "%d transaction(s) with unparsable account number")
	reportFinding(orphaned, "%d transaction(s) referencing accounts missing from the ledger")

	if findings == 0 {
		printSuccess(ctx.Stdout, "Check passed")
	} else {
		_, _ = fmt.Fprintf(ctx.Stdout, "%s\n",
			styles.Dim(fmt.Sprintf("%d finding(s); the report command tolerates all of them", findings)))
	}

	// Balance preview per account, reconciled the same way report does.
	byAccount := ledger.GroupByAccount(txns)
	numbers := make([]int, 0, len(accounts))
	for number := range accounts {
		numbers = append(numbers, number)
	}
	slices.Sort(numbers)
	for _, number := range numbers {
		reconciled := ledger.Reconcile(accounts[number], byAccount)
		_, _ = fmt.Fprintf(ctx.Stdout, "  %s %s: %s\n",
			styles.Account(fmt.Sprintf("%d", number)),
			accounts[number].CustomerInfo,
			styles.Amount(ledger.FormatAmount(reconciled.Balance)),
		)
	}

	return nil
}
