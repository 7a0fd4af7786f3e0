package models

import "time"

// Account is one ledger account. Addresses and owners are base58 public
// keys; Data is opaque to the store and interpreted by the owning program.
type Account struct {
	Address   string    `db:"address"`
	Owner     string    `db:"owner"`
	Lamports  int64     `db:"lamports"`
	Space     int       `db:"space"`
	Data      []byte    `db:"data"`
	Payer     string    `db:"payer"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
