package ledger

import (
	"github.com/jornvdb/bankstmt/parser"
)

// GroupByAccount partitions transactions into per-account lists keyed by
// account number. Order within a group is the original log order; grouping
// appends in input order so no explicit re-sort is needed before rendering.
// Records with an unparsable account number group under
// parser.UnmatchedAccount.
func GroupByAccount(txns []*parser.Transaction) map[int][]*parser.Transaction {
	byAccount := make(map[int][]*parser.Transaction)
	for _, txn := range txns {
		byAccount[txn.AccountNumber] = append(byAccount[txn.AccountNumber], txn)
	}
	return byAccount
}
