package utils

import "github.com/shopspring/decimal"

// MoneyPrecision is the number of decimals amounts are shown with in messages.
const MoneyPrecision = 2

// FormatWithPrecision formats an amount with the given precision
// Example: amount 12.3456 with precision 2 returns "12.35", 2500 returns "2500.00"
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

// FormatMoney formats an amount for user-facing messages. Stored amounts are never rounded.
func FormatMoney(amount decimal.Decimal) string {
	return FormatWithPrecision(amount, MoneyPrecision)
}
