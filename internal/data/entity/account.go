package entity

import (
	"strings"
	"time"
)

type AccountStatus string

const (
	StatusActive  AccountStatus = "Active"
	StatusBlocked AccountStatus = "Blocked"
)

// RegistrationDateLayout is the on-disk format of the registration date
// field in the account file.
const RegistrationDateLayout = "2006-01-02"

// Account is one row of the account file. Email is the unique key; username
// is expected to be unique as well but the store does not enforce that on
// update. Password is stored and compared as plaintext — a known weakness
// carried over from the existing account files, kept so those files remain
// readable.
type Account struct {
	Username     string
	Email        string
	Password     string
	RegisteredAt time.Time
	Status       AccountStatus
}

// Blocked reports whether the account status is Blocked, matched
// case-insensitively the way the authentication flow checks it.
func (a Account) Blocked() bool {
	return strings.EqualFold(string(a.Status), string(StatusBlocked))
}
