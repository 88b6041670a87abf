package response

import "time"

// AdminSummary is the admin home card. TotalUsers and ActiveUsers are both
// the row count of the account file; the original dashboard never
// distinguished them and callers display both, so the conflation is kept.
type AdminSummary struct {
	TotalMovies   int
	TotalUsers    int
	ActiveUsers   int
	TotalBookings int
	TotalRevenue  int
}

// UserSummary is the per-account home card.
type UserSummary struct {
	TotalBookings int
	TotalSpent    int
	RecentMovie   string
}

// BookingRow is one row of the recent-bookings table on the admin home.
type BookingRow struct {
	Owner string
	Movie string
	Date  string
}

// UserRow is one row of the admin users table: the account plus its booking
// tally.
type UserRow struct {
	Username     string
	Email        string
	RegisteredAt time.Time
	Status       string
	Bookings     int
}
