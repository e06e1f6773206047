// Package ledger provides the account registry and balance reconciliation
// for the statement pipeline. It loads accounts from the ledger input file,
// parses and formats monetary amounts, groups transactions by account, and
// folds each account's transactions into a reconciled balance.
//
// All monetary amounts use decimal arithmetic to avoid floating point
// precision issues. Parsing is lenient throughout: a malformed ledger line
// is dropped from the registry, a malformed amount parses to zero, and an
// unknown transaction type leaves the balance unchanged. A bad record never
// aborts the batch.
//
// Example usage:
//
//	accounts := ledger.ParseAccounts(ledgerText)
//	byAccount := ledger.GroupByAccount(txns)
//	for number, account := range accounts {
//	    accounts[number] = ledger.Reconcile(account, byAccount)
//	}
package ledger
