// Package statement renders reconciled accounts and their transactions as a
// plain-text statement report, one block per account.
//
// The renderer recomputes purchase and payment subtotals and the final
// balance from the transaction list itself. This is deliberately redundant
// with the reconciler's fold; the two computations must agree, and the
// package tests assert that they do.
package statement

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/exp/slices"

	"github.com/jornvdb/bankstmt/ledger"
	"github.com/jornvdb/bankstmt/parser"
)

const (
	// DefaultAmountColumn is the column where transaction amounts start.
	DefaultAmountColumn = 48

	// MinimumSpacing is the minimum number of spaces between the
	// transaction description and its amount.
	MinimumSpacing = 2

	// separatorWidth is the width of the block separator line.
	separatorWidth = 60
)

// Renderer writes statement blocks for a set of accounts.
type Renderer struct {
	amountColumn int
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithAmountColumn sets the column where amounts are aligned. Descriptions
// wider than the column push the amount right with minimum spacing instead
// of truncating.
func WithAmountColumn(col int) Option {
	return func(r *Renderer) {
		r.amountColumn = col
	}
}

// New creates a Renderer with the given options.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		amountColumn: DefaultAmountColumn,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Render writes one statement block per account, ordered by account number.
// Transactions within a block appear in original log order. Transactions
// that reference no known account are not rendered; they still exist in the
// grouping and are surfaced by the check command instead.
func (r *Renderer) Render(w io.Writer, accounts map[int]*ledger.Account, byAccount map[int][]*parser.Transaction) error {
	numbers := make([]int, 0, len(accounts))
	for number := range accounts {
		numbers = append(numbers, number)
	}
	slices.Sort(numbers)

	for _, number := range numbers {
		if err := r.renderAccount(w, accounts[number], byAccount[number]); err != nil {
			return err
		}
	}

	return nil
}

// renderAccount writes a single account's statement block.
func (r *Renderer) renderAccount(w io.Writer, account *ledger.Account, txns []*parser.Transaction) error {
	_, err := fmt.Fprintf(w, "Account %d, %s, starting balance: %s\n",
		account.Number,
		account.CustomerInfo,
		ledger.FormatAmount(account.StartingBalance),
	)
	if err != nil {
		return err
	}

	for _, txn := range txns {
		if err := r.renderTransaction(w, txn); err != nil {
			return err
		}
	}

	// Totals are recomputed from the same transaction list the block shows,
	// independently of the reconciler.
	totals := ledger.Summarize(txns)
	final := account.StartingBalance.Add(totals.Payments).Sub(totals.Purchases)

	_, err = fmt.Fprintf(w, "Total purchases: %s\nTotal payments: %s\nFinal balance: %s\n%s\n",
		ledger.FormatAmount(totals.Purchases),
		ledger.FormatAmount(totals.Payments),
		ledger.FormatAmount(final),
		strings.Repeat("-", separatorWidth),
	)
	return err
}

// renderTransaction writes one transaction line with the amount aligned at
// the configured column.
func (r *Renderer) renderTransaction(w io.Writer, txn *parser.Transaction) error {
	parts := []string{"  " + txn.Timestamp}

	if txn.Type == parser.TxnPurchase {
		parts = append(parts, txn.Merchant)
	}

	parts = append(parts, txn.Method.String())

	if txn.CardOrCheckNumber != "" {
		parts = append(parts, txn.CardOrCheckNumber)
	}

	desc := strings.Join(parts, "  ")
	amount := ledger.FormatAmount(ledger.ParseAmount(txn.Amount))

	// Display width rather than byte length keeps wide runes in merchant
	// names from breaking the amount column.
	padding := r.amountColumn - runewidth.StringWidth(desc) - len(amount)
	if padding < MinimumSpacing {
		padding = MinimumSpacing
	}

	_, err := fmt.Fprintf(w, "%s%s%s\n", desc, strings.Repeat(" ", padding), amount)
	return err
}
