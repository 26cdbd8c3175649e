package profile

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction types recorded in the wallet ledger.
const (
	TypeCredit = "credit"
	TypeDebit  = "debit"
)

// Terminal transaction statuses. These are display labels, not a state
// machine: a transaction is only ever persisted in a terminal state.
const (
	StatusSuccess   = "Success"
	StatusProcessed = "Processed"
	StatusCompleted = "Completed"
)

// Profile is the whole stored blob for one account owner. It is always
// read and rewritten in full; no partial updates exist.
type Profile struct {
	User      User       `json:"user"`
	Wallet    Wallet     `json:"wallet"`
	Customers []Customer `json:"customers"`
	Shipments []Shipment `json:"shipments"`
}

// User holds account-level settings for the profile owner.
type User struct {
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	Role          string        `json:"role"`
	Avatar        string        `json:"avatar,omitempty"`
	Phone         string        `json:"phone,omitempty"`
	KYCStatus     string        `json:"kycStatus,omitempty"`
	PasswordHash  string        `json:"passwordHash,omitempty"`
	Notifications Notifications `json:"notifications"`
}

// Notifications captures the owner's notification channel toggles.
type Notifications struct {
	Email bool `json:"email"`
	SMS   bool `json:"sms"`
}

// Wallet owns the balance and the append-only transaction log.
// Invariant: Balance equals the sum of all transaction amounts.
type Wallet struct {
	Balance       decimal.Decimal `json:"balance"`
	SpendingLimit decimal.Decimal `json:"spendingLimit"`
	Transactions  []Transaction   `json:"transactions"`
}

// Transaction is a single immutable ledger entry. Credits carry a
// positive amount, debits a negative one; the sign always matches Type.
type Transaction struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Description string          `json:"desc"`
	Method      string          `json:"method"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Status      string          `json:"status"`
}

// Customer is an address-book entry managed from the customers screen.
type Customer struct {
	ID      int             `json:"id"`
	Name    string          `json:"name"`
	Company string          `json:"company"`
	Email   string          `json:"email"`
	Orders  int             `json:"orders"`
	Spent   decimal.Decimal `json:"spent"`
	Status  string          `json:"status"`
}

// Shipment is a booked consignment.
type Shipment struct {
	ID          string          `json:"id"`
	Customer    string          `json:"customer"`
	Origin      string          `json:"origin"`
	Destination string          `json:"destination"`
	Date        time.Time       `json:"date"`
	Status      string          `json:"status"`
	Amount      decimal.Decimal `json:"amount"`
}

// Defaults returns the profile seeded on first run: a zero-balance
// wallet with the default spending limit and no customers or shipments.
func Defaults() Profile {
	return Profile{
		User: User{
			Name:   "Alex Morgan",
			Email:  "alex.morgan@logismart.com",
			Role:   "Admin",
			Avatar: "https://ui-avatars.com/api/?name=Alex+Morgan&background=0D8ABC&color=fff",
			Notifications: Notifications{
				Email: true,
				SMS:   false,
			},
		},
		Wallet: Wallet{
			Balance:       decimal.Zero,
			SpendingLimit: decimal.NewFromInt(200000),
			Transactions:  []Transaction{},
		},
		Customers: []Customer{},
		Shipments: []Shipment{},
	}
}
