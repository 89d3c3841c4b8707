package domain

import "time"

// Operator is an account allowed to drive the control server.
type Operator struct {
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}
