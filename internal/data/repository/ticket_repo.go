package repository

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/record"
	"movie-booking/pkg/storage"

	"go.uber.org/zap"
)

// ticketFields is the exact arity of a ledger record. Lines with fewer
// fields are skipped by AllBookings but still tallied by CountsByOwner.
const ticketFields = 10

// RecentMovieNone is returned by MostRecentMovie when the owner has no
// bookings.
const RecentMovieNone = "N/A"

// TicketRepository is the append-only booking ledger. Records are written
// exactly once and never mutated or deleted; "most recent" means last in
// append order, not any date comparison. Owners are matched
// case-insensitively on every query.
type TicketRepository interface {
	// Append writes one booking record to the end of the ledger file.
	Append(b entity.Booking) error

	// AllBookings returns every well-formed record, oldest first.
	AllBookings() []entity.Booking

	// BookingsFor returns the owner's bookings, oldest first.
	BookingsFor(ownerKey string) []entity.Booking

	// CountsByOwner tallies bookings per owner in a single pass. Unlike
	// AllBookings it counts every line that carries an owner field, even
	// ones too short to decode fully; the dashboards rely on that total.
	CountsByOwner() map[string]int

	// MostRecentMovie returns the movie name of the owner's last booking
	// in file order, or RecentMovieNone.
	MostRecentMovie(ownerKey string) string

	// TotalSpent sums the owner's price fields. A price that does not
	// parse counts as zero.
	TotalSpent(ownerKey string) int

	// RecentBookings returns every well-formed record newest first, for
	// the admin home table.
	RecentBookings() []entity.Booking
}

type ticketRepository struct {
	store *storage.Storage
	path  string
	codec record.Codec
	mu    sync.Mutex
	log   *zap.Logger
}

func NewTicketRepository(store *storage.Storage, path string, log *zap.Logger) TicketRepository {
	return &ticketRepository{
		store: store,
		path:  path,
		codec: record.Codec{Delimiter: ";", MinFields: ticketFields},
		log:   log.With(zap.String("repository", "ticket")),
	}
}

func (r *ticketRepository) Append(b entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	line := r.codec.Encode([]string{
		b.Owner, b.MovieName, b.Genre, b.Language, b.Rating,
		b.Date, b.Time, b.Seats, b.SeatType, b.Price,
	})
	if err := r.store.AppendLine(r.path, line); err != nil {
		r.log.Error("Failed to append booking", zap.Error(err), zap.String("owner", b.Owner))
		return fmt.Errorf("append booking: %w", err)
	}

	r.log.Info("Booking recorded",
		zap.String("owner", b.Owner),
		zap.String("movie", b.MovieName),
		zap.String("seats", b.Seats),
		zap.String("price", b.Price),
	)
	return nil
}

func (r *ticketRepository) readLines() []string {
	lines, err := r.store.ReadLines(r.path)
	if err != nil {
		r.log.Warn("Failed to read ledger file", zap.Error(err), zap.String("path", r.path))
		return nil
	}
	return lines
}

func (r *ticketRepository) AllBookings() []entity.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines := r.readLines()
	bookings := make([]entity.Booking, 0, len(lines))
	for _, line := range lines {
		fields, ok := r.codec.Decode(line)
		if !ok {
			continue
		}
		bookings = append(bookings, entity.Booking{
			Owner:     fields[0],
			MovieName: fields[1],
			Genre:     fields[2],
			Language:  fields[3],
			Rating:    fields[4],
			Date:      fields[5],
			Time:      fields[6],
			Seats:     fields[7],
			SeatType:  fields[8],
			Price:     fields[9],
		})
	}
	return bookings
}

func (r *ticketRepository) BookingsFor(ownerKey string) []entity.Booking {
	var owned []entity.Booking
	for _, b := range r.AllBookings() {
		if strings.EqualFold(b.Owner, ownerKey) {
			owned = append(owned, b)
		}
	}
	return owned
}

func (r *ticketRepository) CountsByOwner() map[string]int {
	r.mu.Lock()
	defer r.mu.Unlock()

	counts := make(map[string]int)
	for _, line := range r.readLines() {
		parts := strings.SplitN(line, ";", 2)
		owner := strings.TrimSpace(parts[0])
		if owner == "" {
			continue
		}
		counts[owner]++
	}
	return counts
}

func (r *ticketRepository) MostRecentMovie(ownerKey string) string {
	owned := r.BookingsFor(ownerKey)
	if len(owned) == 0 {
		return RecentMovieNone
	}
	return owned[len(owned)-1].MovieName
}

func (r *ticketRepository) TotalSpent(ownerKey string) int {
	total := 0
	for _, b := range r.BookingsFor(ownerKey) {
		price, err := strconv.Atoi(strings.TrimSpace(b.Price))
		if err != nil {
			continue
		}
		total += price
	}
	return total
}

func (r *ticketRepository) RecentBookings() []entity.Booking {
	all := r.AllBookings()
	recent := make([]entity.Booking, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		recent = append(recent, all[i])
	}
	return recent
}
