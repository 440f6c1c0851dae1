package domain

import "time"

// Settings is the singleton application configuration editable by staff.
// Currently holds the bank account used for QR payment codes on contracts.
type Settings struct {
	BankAccount string    `json:"bank_account"`
	UpdatedOn   time.Time `json:"updated_on"`
}
