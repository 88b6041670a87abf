package repository

import (
	"errors"

	"movie-booking/pkg/storage"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

// ErrNotFound is returned when a mutate-by-key operation finds no record for
// the key. The backing file is left untouched.
var ErrNotFound = errors.New("record not found")

// ErrConflict is returned when registration would duplicate an existing
// username or email. Nothing is written.
var ErrConflict = errors.New("account already exists")

type Repository struct {
	Catalog CatalogRepository
	Account AccountRepository
	Ticket  TicketRepository
}

func NewRepository(store *storage.Storage, config *utils.Config, log *zap.Logger) *Repository {
	return &Repository{
		Catalog: NewCatalogRepository(store, config.Store.CatalogFile, log),
		Account: NewAccountRepository(store, config.Store.AccountFile, log),
		Ticket:  NewTicketRepository(store, config.Store.LedgerFile, log),
	}
}
