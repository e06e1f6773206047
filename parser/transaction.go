// Package parser turns raw transaction-log text into structured transaction
// records. The log is tab-delimited with a variable field count per line:
// purchases carry a merchant, payments carry a payment method plus an
// optional card or check number. Parsing is deliberately lenient; a
// malformed field degrades to a default instead of failing the line, and a
// malformed line never aborts the batch.
package parser

import (
	"strconv"
	"strings"
)

// TxnType classifies a transaction record by its first field.
type TxnType uint8

const (
	TxnUnknown TxnType = iota
	TxnPayment
	TxnPurchase
)

var txnTypeNames = map[TxnType]string{
	TxnUnknown:  "unknown",
	TxnPayment:  "payment",
	TxnPurchase: "purchase",
}

func (t TxnType) String() string {
	if name, ok := txnTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParseTxnType maps the raw type field to a TxnType. Matching is
// case-insensitive; anything unrecognized becomes TxnUnknown.
func ParseTxnType(s string) TxnType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "payment":
		return TxnPayment
	case "purchase":
		return TxnPurchase
	default:
		return TxnUnknown
	}
}

// UnmatchedAccount is the account-number sentinel for records whose account
// field did not parse as an integer. Ledger account numbers are positive, so
// the sentinel never matches a real account; the record is still grouped and
// rendered under it.
const UnmatchedAccount = -1

// Transaction is a single parsed record from the transaction log.
// Transactions are immutable after parsing.
type Transaction struct {
	// Type is the record classification from the first field.
	Type TxnType

	// SequenceNumber is the zero-based line position in the log file.
	// It is the ordering key for rendering.
	SequenceNumber int

	// AccountNumber keys the transaction to an account, or
	// UnmatchedAccount when the field did not parse.
	AccountNumber int

	// Timestamp is the raw timestamp field, empty if absent.
	Timestamp string

	// Merchant is the quote-stripped merchant field. Only meaningful for
	// purchases.
	Merchant string

	// Method describes how a payment was made. For non-payment records it
	// is MethodPurchase.
	Method PaymentMethod

	// CardOrCheckNumber is the card or check number for Credit/Check
	// payments, empty otherwise.
	CardOrCheckNumber string

	// Amount is the transaction amount as a raw string, selected by field
	// position. It defaults to "" when the line is too short, which parses
	// to zero downstream.
	Amount string
}

// ParseLine parses one tab-delimited log line into a Transaction. seq is the
// zero-based position of the line in the log file.
//
// Field layout: [0]=type, [1]=account number, [2]=timestamp,
// [3]=merchant or payment method, [4..]=method-specific fields. Payment
// lines carry six fields (type, account, timestamp, method, card/check
// number, amount); purchase lines carry five (type, account, timestamp,
// merchant, amount).
func ParseLine(line string, seq int) *Transaction {
	fields := strings.Split(line, "\t")

	txn := &Transaction{
		Type:           ParseTxnType(field(fields, 0)),
		SequenceNumber: seq,
		AccountNumber:  parseAccountNumber(field(fields, 1)),
		Timestamp:      field(fields, 2),
		Merchant:       strings.Trim(field(fields, 3), `"`),
	}

	if txn.Type == TxnPayment {
		info := ParseMethod(fields)
		txn.Method = info.Method
		txn.CardOrCheckNumber = info.Number
	} else {
		txn.Method = MethodPurchase
	}

	// Amount position depends on the record shape: six-field payment lines
	// carry it in field 5, five-field purchase lines in field 4. Shorter
	// lines have no amount and default to zero downstream.
	switch {
	case len(fields) >= 6:
		txn.Amount = fields[5]
	case len(fields) >= 5:
		txn.Amount = fields[4]
	}

	return txn
}

// ParseLog parses the full transaction log, one record per line. Blank
// lines are skipped but still consume a sequence number so that
// SequenceNumber always equals the zero-based file line.
func ParseLog(text string) []*Transaction {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")

	txns := make([]*Transaction, 0, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		txns = append(txns, ParseLine(line, i))
	}

	return txns
}

// parseAccountNumber parses the account field, falling back to the
// UnmatchedAccount sentinel. Leniency here is deliberate: a corrupt account
// field must not drop the record from the report.
func parseAccountNumber(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return UnmatchedAccount
	}
	return n
}

// field returns fields[i] or "" when the line is too short.
func field(fields []string, i int) string {
	if i >= len(fields) {
		return ""
	}
	return fields[i]
}
