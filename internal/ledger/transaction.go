package ledger

import (
	"errors"
	"time"
)

type Status string

const (
	Pending   Status = "pending"
	Completed Status = "completed"
	Failed    Status = "failed"
)

func (s Status) Terminal() bool { return s == Completed || s == Failed }

var (
	ErrNotFound      = errors.New("transaction not found")
	ErrTerminal      = errors.New("transaction already settled")
	ErrInvalidAmount = errors.New("amount must be a positive decimal")
	ErrMissingField  = errors.New("from, to, token and network are required")
	ErrEmptyHash     = errors.New("completed transaction needs a hash")
)

type Transaction struct {
	ID        string    `json:"id"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Amount    string    `json:"amount"`
	Token     string    `json:"token"`
	Network   string    `json:"network"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"timestamp"`
	Hash      string    `json:"hash,omitempty"`
}
