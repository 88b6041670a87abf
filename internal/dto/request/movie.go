package request

// MovieRequest carries the movie form fields for add and update. Genre,
// language and rating come from fixed UI vocabularies but only presence is
// enforced here; the store accepts whatever strings it is handed. Duration
// is kept as text, matching the file format.
type MovieRequest struct {
	Name       string `validate:"required"`
	Director   string `validate:"required"`
	Genre      string `validate:"required"`
	Language   string `validate:"required"`
	Duration   string `validate:"required"`
	Rating     string `validate:"required"`
	PosterPath string
}
