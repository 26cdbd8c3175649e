package wallet

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"
)

// MinorUnits converts a major-unit amount (rupees) to minor units
// (paise), the convention at the payment gateway boundary.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

// FromMinorUnits converts a minor-unit amount back to major units.
func FromMinorUnits(minor int64) decimal.Decimal {
	return decimal.New(minor, -2)
}

// NewPaymentID generates a ledger identifier for a gateway credit
// recorded without a receipt payment id.
func NewPaymentID() string {
	return fmt.Sprintf("#PAY-%d", time.Now().UnixMilli())
}

// NewWithdrawalID generates a ledger identifier for a withdrawal debit.
func NewWithdrawalID() string {
	return fmt.Sprintf("#WD-%d", time.Now().UnixMilli())
}

// NewShipmentTxnID generates a ledger identifier for a shipment debit.
func NewShipmentTxnID() string {
	return fmt.Sprintf("#TXN-%d", 1000+rand.IntN(9000))
}
