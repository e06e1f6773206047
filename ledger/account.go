package ledger

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Account is one entry from the ledger input file.
//
// StartingBalance is fixed at load time and never mutated. Balance is
// recomputed from StartingBalance plus transaction history on each
// reconciliation pass; Reconcile returns a new Account rather than mutating
// in place.
type Account struct {
	Number          int
	CustomerInfo    string
	StartingBalance decimal.Decimal
	Balance         decimal.Decimal
}

// accountPattern matches one ledger line: an integer account number,
// whitespace, a double-quoted customer name, whitespace, and a decimal
// balance with at least one fraction digit. Integer-only balances do not
// match and the line is skipped.
var accountPattern = regexp.MustCompile(`^\s*(\d+)\s+"([^"]*)"\s+(\d+\.\d+)\s*$`)

// ParseAccounts builds the account registry from the ledger text, one
// account per line, keyed by account number. Lines that do not match the
// ledger pattern are dropped without error; there are no partial entries.
func ParseAccounts(text string) map[int]*Account {
	accounts := make(map[int]*Account)

	for _, line := range strings.Split(text, "\n") {
		m := accountPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		number, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}

		balance, err := decimal.NewFromString(m[3])
		if err != nil {
			continue
		}

		accounts[number] = &Account{
			Number:          number,
			CustomerInfo:    m[2],
			StartingBalance: balance,
			Balance:         balance,
		}
	}

	return accounts
}
