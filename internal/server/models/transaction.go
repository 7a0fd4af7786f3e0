package models

import "time"

const (
	TxStatusSucceeded = "succeeded"
	TxStatusFailed    = "failed"
)

// Transaction is the log entry of a submitted transaction. ErrorCode is the
// numeric program error code, zero when the failure has none.
type Transaction struct {
	ID           string    `db:"id"`
	FeePayer     string    `db:"fee_payer"`
	Instructions string    `db:"instructions"`
	Status       string    `db:"status"`
	ErrorCode    int64     `db:"error_code"`
	Error        string    `db:"error"`
	Raw          []byte    `db:"raw"`
	CreatedAt    time.Time `db:"created_at"`
}
