package entity

// Movie is one row of the catalog file. The name identifies the movie in the
// UI but is not guaranteed unique; rows are addressed by position within a
// loaded snapshot. Duration, rating and genre are kept as the free-form
// strings the file carries.
type Movie struct {
	Name       string
	Director   string
	Genre      string
	Language   string
	Duration   string
	Rating     string
	PosterPath string
}
