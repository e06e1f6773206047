package parser

import "strings"

// PaymentMethod classifies how a payment was made. Non-payment records use
// MethodPurchase so every transaction carries a method tag.
type PaymentMethod uint8

const (
	MethodUnknown PaymentMethod = iota
	MethodCash
	MethodCredit
	MethodCheck
	MethodPurchase
)

var methodNames = map[PaymentMethod]string{
	MethodUnknown:  "Unknown",
	MethodCash:     "Cash",
	MethodCredit:   "Credit",
	MethodCheck:    "Check",
	MethodPurchase: "Purchase",
}

func (m PaymentMethod) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return "Unknown"
}

// MethodInfo is the result of parsing a payment line's method fields.
type MethodInfo struct {
	Method PaymentMethod

	// Number is the card or check number for Credit/Check, empty otherwise.
	Number string

	// Amount is the amount string as seen by the method parser. It is
	// informational only; the record's stored amount comes from the outer
	// field selection in ParseLine, which reads the same position.
	Amount string
}

// ParseMethod inspects the full field list of a payment line and extracts
// the payment method, its card or check number, and the amount string.
// Field 3 names the method; matching is case-insensitive and trimmed.
//
//   - cash: no card or check number, whatever follows
//   - credit/check: field 4 is the card or check number, field 5 the amount
//   - anything else: Unknown with a zero amount
func ParseMethod(fields []string) MethodInfo {
	switch strings.ToLower(strings.TrimSpace(field(fields, 3))) {
	case "cash":
		return MethodInfo{Method: MethodCash}
	case "credit":
		return MethodInfo{
			Method: MethodCredit,
			Number: field(fields, 4),
			Amount: amountField(fields),
		}
	case "check":
		return MethodInfo{
			Method: MethodCheck,
			Number: field(fields, 4),
			Amount: amountField(fields),
		}
	default:
		return MethodInfo{Method: MethodUnknown, Amount: "0"}
	}
}

func amountField(fields []string) string {
	if len(fields) > 5 {
		return fields[5]
	}
	return "0"
}
