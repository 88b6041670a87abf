package usecase

import (
	"strconv"
	"strings"

	"movie-booking/internal/data/repository"
	"movie-booking/internal/dto/response"

	"go.uber.org/zap"
)

// DashboardService derives the admin and user home cards from the current
// store snapshots. All reads, no caching; every call re-reads the files.
type DashboardService interface {
	AdminSummary() *response.AdminSummary
	UserSummary(ownerKey string) *response.UserSummary
	RecentBookings() []response.BookingRow
	UserRows() []response.UserRow
}

type dashboardService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewDashboardService(repo *repository.Repository, log *zap.Logger) DashboardService {
	return &dashboardService{
		repo: repo,
		log:  log.With(zap.String("service", "dashboard")),
	}
}

func (s *dashboardService) AdminSummary() *response.AdminSummary {
	bookings := s.repo.Ticket.AllBookings()
	revenue := 0
	for _, b := range bookings {
		if price, err := strconv.Atoi(strings.TrimSpace(b.Price)); err == nil {
			revenue += price
		}
	}

	// The account file has no notion of an inactive row beyond Blocked, and
	// the original dashboard showed the same number for both counters.
	users := len(s.repo.Account.ListAll())

	return &response.AdminSummary{
		TotalMovies:   len(s.repo.Catalog.LoadAll()),
		TotalUsers:    users,
		ActiveUsers:   users,
		TotalBookings: len(bookings),
		TotalRevenue:  revenue,
	}
}

func (s *dashboardService) UserSummary(ownerKey string) *response.UserSummary {
	return &response.UserSummary{
		TotalBookings: len(s.repo.Ticket.BookingsFor(ownerKey)),
		TotalSpent:    s.repo.Ticket.TotalSpent(ownerKey),
		RecentMovie:   s.repo.Ticket.MostRecentMovie(ownerKey),
	}
}

func (s *dashboardService) RecentBookings() []response.BookingRow {
	recent := s.repo.Ticket.RecentBookings()
	rows := make([]response.BookingRow, len(recent))
	for i, b := range recent {
		rows[i] = response.BookingRow{
			Owner: b.Owner,
			Movie: b.MovieName,
			Date:  b.Date,
		}
	}
	return rows
}

func (s *dashboardService) UserRows() []response.UserRow {
	counts := s.repo.Ticket.CountsByOwner()
	accounts := s.repo.Account.ListAll()

	rows := make([]response.UserRow, len(accounts))
	for i, a := range accounts {
		// Bookings may be recorded under username or email; both key the
		// same account.
		bookings := counts[a.Username] + counts[a.Email]
		rows[i] = response.UserRow{
			Username:     a.Username,
			Email:        a.Email,
			RegisteredAt: a.RegisteredAt,
			Status:       string(a.Status),
			Bookings:     bookings,
		}
	}
	return rows
}
