package usecase

import (
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
	"movie-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrIncompleteSelection is returned by Commit while the session is missing
// a seat, a showtime or a date. Nothing is written.
var ErrIncompleteSelection = errors.New("incomplete selection")

// ErrSessionCommitted is returned when Commit is called on a session that
// already committed. A session covers exactly one checkout.
var ErrSessionCommitted = errors.New("session already committed")

// Per-seat prices by seat type. A seat type outside the table prices at
// zero rather than failing; the UI treats that as "no type chosen yet".
var seatTariff = map[string]int{
	"Standard":  185,
	"Reclining": 225,
	"Luxury":    300,
}

// UnitPriceFor returns the per-seat price for a seat type, zero for an
// unrecognized one.
func UnitPriceFor(seatType string) int {
	return seatTariff[seatType]
}

type SessionState string

const (
	StateIdle         SessionState = "idle"
	StateSeatsPartial SessionState = "seats_partial"
	StateTimeChosen   SessionState = "time_chosen"
	StateDateChosen   SessionState = "date_chosen"
	StateReady        SessionState = "ready"
	StateCommitted    SessionState = "committed"
)

type BookingService interface {
	// StartSession opens a checkout for one owner and one movie. The
	// session is discarded by the caller after Commit or on cancel.
	StartSession(ownerKey string, movie entity.Movie) *BookingSession
}

type bookingService struct {
	ticketRepo repository.TicketRepository
	log        *zap.Logger
}

func NewBookingService(ticketRepo repository.TicketRepository, log *zap.Logger) BookingService {
	return &bookingService{
		ticketRepo: ticketRepo,
		log:        log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) StartSession(ownerKey string, movie entity.Movie) *BookingSession {
	id := utils.GenerateUUID()
	session := &BookingSession{
		id:         id,
		owner:      ownerKey,
		movie:      movie,
		seats:      make(map[string]struct{}),
		ticketRepo: s.ticketRepo,
		log:        s.log.With(zap.String("session", id.String())),
	}
	s.log.Debug("Booking session started",
		zap.String("owner", ownerKey),
		zap.String("movie", movie.Name),
	)
	return session
}

// BookingSession accumulates the selections of one checkout. Seat toggling,
// showtime and date are independent choices made in any order; each can be
// reversed before commit. Price is derived from the seat count and seat
// type, recomputed on every change, never set directly.
type BookingSession struct {
	id         uuid.UUID
	owner      string
	movie      entity.Movie
	seats      map[string]struct{}
	showTime   string
	showDate   string
	seatType   string
	price      int
	committed  bool
	ticketRepo repository.TicketRepository
	log        *zap.Logger
}

func (s *BookingSession) ID() uuid.UUID { return s.id }

// ToggleSeat selects the seat, or deselects it when already selected.
func (s *BookingSession) ToggleSeat(label string) {
	if _, selected := s.seats[label]; selected {
		delete(s.seats, label)
	} else {
		s.seats[label] = struct{}{}
	}
	s.recompute()
}

// ChooseTime sets the showtime, replacing any earlier choice.
func (s *BookingSession) ChooseTime(label string) {
	s.showTime = label
}

// ChooseDate sets the show date, replacing any earlier choice.
func (s *BookingSession) ChooseDate(d time.Time) {
	s.showDate = d.Format(entity.BookingDateLayout)
}

// ChooseSeatType sets the seat type and reprices the selection.
func (s *BookingSession) ChooseSeatType(seatType string) {
	s.seatType = seatType
	s.recompute()
}

func (s *BookingSession) recompute() {
	s.price = len(s.seats) * UnitPriceFor(s.seatType)
}

// Seats returns the selected seat labels sorted lexicographically,
// independent of selection order.
func (s *BookingSession) Seats() []string {
	labels := make([]string, 0, len(s.seats))
	for label := range s.seats {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

func (s *BookingSession) Price() int { return s.price }

// Ready reports whether the selection is complete: at least one seat, a
// showtime and a date. It is re-evaluated on every call, so deselecting the
// last seat takes a session out of Ready again.
func (s *BookingSession) Ready() bool {
	return len(s.seats) > 0 && s.showTime != "" && s.showDate != ""
}

// State derives the session state from the current selections. The partial
// states report the furthest selection made so far.
func (s *BookingSession) State() SessionState {
	switch {
	case s.committed:
		return StateCommitted
	case s.Ready():
		return StateReady
	case s.showDate != "":
		return StateDateChosen
	case s.showTime != "":
		return StateTimeChosen
	case len(s.seats) > 0:
		return StateSeatsPartial
	default:
		return StateIdle
	}
}

// Commit assembles the booking record from the session state and appends it
// to the ledger. It fails without writing unless the session is Ready, and
// a committed session cannot commit again.
func (s *BookingSession) Commit() (*entity.Booking, error) {
	if s.committed {
		return nil, ErrSessionCommitted
	}
	if !s.Ready() {
		return nil, ErrIncompleteSelection
	}

	booking := entity.Booking{
		Owner:     s.owner,
		MovieName: s.movie.Name,
		Genre:     s.movie.Genre,
		Language:  s.movie.Language,
		Rating:    s.movie.Rating,
		Date:      s.showDate,
		Time:      s.showTime,
		Seats:     strings.Join(s.Seats(), ","),
		SeatType:  s.seatType,
		Price:     strconv.Itoa(s.price),
	}

	if err := s.ticketRepo.Append(booking); err != nil {
		s.log.Error("Failed to commit booking", zap.Error(err), zap.String("owner", s.owner))
		return nil, err
	}

	s.committed = true
	return &booking, nil
}
