package entity

// BookingDateLayout is the on-disk format of the show date field in the
// ledger file.
const BookingDateLayout = "Jan 02, 2006"

// Booking is one row of the ledger file: an immutable fact written exactly
// once when a checkout commits. Owner is the username or email the booking
// was made under; ledger queries match it case-insensitively. Seats is the
// comma-joined, lexicographically sorted seat list. Price stays a string
// because the ledger tolerates rows whose price field never parsed; sums
// treat those as zero instead of rejecting the row.
type Booking struct {
	Owner     string
	MovieName string
	Genre     string
	Language  string
	Rating    string
	Date      string
	Time      string
	Seats     string
	SeatType  string
	Price     string
}
