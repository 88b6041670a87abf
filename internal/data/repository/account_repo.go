package repository

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/record"
	"movie-booking/pkg/storage"

	"go.uber.org/zap"
)

// accountMinFields is the arity below which an account line is malformed.
// The registration date and status fields are optional and default to today
// and Active.
const accountMinFields = 3

// AccountRepository persists accounts to a comma-delimited file, one record
// per line: username,email,password,registrationDate,status.
//
// Identity matching is deliberately not uniform and the distinct behaviors
// are kept distinct: Authenticate and IsBlocked match username or email
// case-insensitively, Find and the mutate-by-email operations match the
// stored value exactly, and Register rejects case-sensitive duplicates.
// Callers depend on each policy where it applies.
type AccountRepository interface {
	// Register appends a new account with status Active and today's
	// registration date. Returns ErrConflict when a stored record already
	// carries the username or the email.
	Register(username, email, password string) error

	// Authenticate reports whether some record matches identifier on
	// username or email case-insensitively and password exactly. Any I/O
	// failure reads as false.
	Authenticate(identifier, password string) bool

	// IsBlocked reports whether a record matching identifier has status
	// Blocked (case-insensitive).
	IsBlocked(identifier string) bool

	// Find returns the first record in file order whose username or email
	// equals identifier exactly, or nil when none does.
	Find(identifier string) *entity.Account

	// UpdateProfile locates the record by exact oldEmail and rewrites its
	// username, email and password, preserving registration date and
	// status. Returns ErrNotFound when no record matches.
	UpdateProfile(oldEmail, newUsername, newEmail, newPassword string) error

	// UpdatePassword rewrites only the password of the record with the
	// given email.
	UpdatePassword(email, newPassword string) error

	// SetStatus rewrites only the status of the record with the given
	// email.
	SetStatus(email string, status entity.AccountStatus) error

	// Delete removes the record with the given email.
	Delete(email string) error

	// ListAll returns every well-formed record in file order, with absent
	// trailing fields defaulted.
	ListAll() []entity.Account
}

type accountRepository struct {
	store *storage.Storage
	path  string
	codec record.Codec
	mu    sync.Mutex
	log   *zap.Logger
}

func NewAccountRepository(store *storage.Storage, path string, log *zap.Logger) AccountRepository {
	return &accountRepository{
		store: store,
		path:  path,
		codec: record.Codec{Delimiter: ",", MinFields: accountMinFields},
		log:   log.With(zap.String("repository", "account")),
	}
}

func (r *accountRepository) encode(a entity.Account) string {
	return r.codec.Encode([]string{
		a.Username,
		a.Email,
		a.Password,
		a.RegisteredAt.Format(entity.RegistrationDateLayout),
		string(a.Status),
	})
}

func (r *accountRepository) decode(line string) (entity.Account, bool) {
	fields, ok := r.codec.Decode(line)
	if !ok {
		return entity.Account{}, false
	}

	registered := time.Now()
	if raw := record.Field(fields, 3, ""); raw != "" {
		if parsed, err := time.Parse(entity.RegistrationDateLayout, raw); err == nil {
			registered = parsed
		}
	}

	return entity.Account{
		Username:     fields[0],
		Email:        fields[1],
		Password:     fields[2],
		RegisteredAt: registered,
		Status:       entity.AccountStatus(record.Field(fields, 4, string(entity.StatusActive))),
	}, true
}

func (r *accountRepository) readLocked() []string {
	lines, err := r.store.ReadLines(r.path)
	if err != nil {
		r.log.Warn("Failed to read account file", zap.Error(err), zap.String("path", r.path))
		return nil
	}
	return lines
}

func (r *accountRepository) Register(username, email, password string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, line := range r.readLocked() {
		fields, _ := r.codec.Decode(line)
		if len(fields) < 2 {
			continue
		}
		if fields[0] == username || fields[1] == email {
			return ErrConflict
		}
	}

	account := entity.Account{
		Username:     username,
		Email:        email,
		Password:     password,
		RegisteredAt: time.Now(),
		Status:       entity.StatusActive,
	}
	if err := r.store.AppendLine(r.path, r.encode(account)); err != nil {
		r.log.Error("Failed to register account", zap.Error(err), zap.String("email", email))
		return fmt.Errorf("register account: %w", err)
	}

	r.log.Info("Account registered", zap.String("username", username), zap.String("email", email))
	return nil
}

func (r *accountRepository) Authenticate(identifier, password string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, line := range r.readLocked() {
		fields, ok := r.codec.Decode(line)
		if !ok {
			continue
		}
		if matchesIdentifier(fields[0], fields[1], identifier) && fields[2] == password {
			return true
		}
	}
	return false
}

func (r *accountRepository) IsBlocked(identifier string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, line := range r.readLocked() {
		account, ok := r.decode(line)
		if !ok {
			continue
		}
		if matchesIdentifier(account.Username, account.Email, identifier) && account.Blocked() {
			return true
		}
	}
	return false
}

func (r *accountRepository) Find(identifier string) *entity.Account {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, line := range r.readLocked() {
		account, ok := r.decode(line)
		if !ok {
			continue
		}
		if account.Username == identifier || account.Email == identifier {
			return &account
		}
	}
	return nil
}

func (r *accountRepository) UpdateProfile(oldEmail, newUsername, newEmail, newPassword string) error {
	return r.rewriteByEmail(oldEmail, func(a entity.Account) entity.Account {
		a.Username = newUsername
		a.Email = newEmail
		a.Password = newPassword
		return a
	})
}

func (r *accountRepository) UpdatePassword(email, newPassword string) error {
	return r.rewriteByEmail(email, func(a entity.Account) entity.Account {
		a.Password = newPassword
		return a
	})
}

func (r *accountRepository) SetStatus(email string, status entity.AccountStatus) error {
	return r.rewriteByEmail(email, func(a entity.Account) entity.Account {
		a.Status = status
		return a
	})
}

// rewriteByEmail runs the shared read-all, locate-by-key, transform,
// write-all cycle. The file is rewritten only after a full scan that found
// the target; otherwise it is left untouched and ErrNotFound is returned.
func (r *accountRepository) rewriteByEmail(email string, transform func(entity.Account) entity.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines := r.readLocked()
	found := false
	for i, line := range lines {
		account, ok := r.decode(line)
		if !ok || account.Email != email {
			continue
		}
		lines[i] = r.encode(transform(account))
		found = true
	}

	if !found {
		return ErrNotFound
	}

	if err := r.store.WriteLines(r.path, lines); err != nil {
		r.log.Error("Failed to rewrite account file", zap.Error(err), zap.String("email", email))
		return fmt.Errorf("update account: %w", err)
	}
	return nil
}

func (r *accountRepository) Delete(email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines := r.readLocked()
	kept := make([]string, 0, len(lines))
	found := false
	for _, line := range lines {
		fields, _ := r.codec.Decode(line)
		if len(fields) >= 2 && fields[1] == email {
			found = true
			continue
		}
		kept = append(kept, line)
	}

	if !found {
		return ErrNotFound
	}

	if err := r.store.WriteLines(r.path, kept); err != nil {
		r.log.Error("Failed to delete account", zap.Error(err), zap.String("email", email))
		return fmt.Errorf("delete account: %w", err)
	}

	r.log.Info("Account deleted", zap.String("email", email))
	return nil
}

func (r *accountRepository) ListAll() []entity.Account {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines := r.readLocked()
	accounts := make([]entity.Account, 0, len(lines))
	for _, line := range lines {
		if account, ok := r.decode(line); ok {
			accounts = append(accounts, account)
		}
	}
	return accounts
}

func matchesIdentifier(username, email, identifier string) bool {
	return strings.EqualFold(username, identifier) || strings.EqualFold(email, identifier)
}
