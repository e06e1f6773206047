package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/jornvdb/bankstmt/parser"
)

// Totals holds the per-account subtotals over one transaction list.
type Totals struct {
	Purchases decimal.Decimal
	Payments  decimal.Decimal
}

// Reconcile folds an account's transactions over its starting balance and
// returns a new Account with the resulting balance. Payments add their
// amount, purchases subtract it, and any other type leaves the balance
// unchanged. StartingBalance carries through untouched.
//
// Reconcile is pure: neither the input account nor the transaction lists
// are mutated, and reconciling twice from the same inputs yields the same
// result. An account with no transactions ends at its starting balance.
func Reconcile(account *Account, byAccount map[int][]*parser.Transaction) *Account {
	balance := account.StartingBalance

	for _, txn := range byAccount[account.Number] {
		switch txn.Type {
		case parser.TxnPayment:
			balance = balance.Add(ParseAmount(txn.Amount))
		case parser.TxnPurchase:
			balance = balance.Sub(ParseAmount(txn.Amount))
		}
	}

	return &Account{
		Number:          account.Number,
		CustomerInfo:    account.CustomerInfo,
		StartingBalance: account.StartingBalance,
		Balance:         balance,
	}
}

// Summarize computes purchase and payment subtotals over a transaction
// list. Unknown transaction types contribute to neither subtotal, matching
// the Reconcile fold.
func Summarize(txns []*parser.Transaction) Totals {
	totals := Totals{
		Purchases: decimal.Zero,
		Payments:  decimal.Zero,
	}

	for _, txn := range txns {
		switch txn.Type {
		case parser.TxnPayment:
			totals.Payments = totals.Payments.Add(ParseAmount(txn.Amount))
		case parser.TxnPurchase:
			totals.Purchases = totals.Purchases.Add(ParseAmount(txn.Amount))
		}
	}

	return totals
}
