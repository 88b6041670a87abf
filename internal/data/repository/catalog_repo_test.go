package repository

import (
	"testing"

	"movie-booking/internal/data/entity"
	"movie-booking/pkg/storage"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const catalogPath = "data/movies.txt"

func newCatalogRepo(t *testing.T) (CatalogRepository, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	return NewCatalogRepository(storage.New(fs), catalogPath, zap.NewNop()), fs
}

func TestCatalogLoadAllMissingFile(t *testing.T) {
	repo, _ := newCatalogRepo(t)
	assert.Empty(t, repo.LoadAll())
}

func TestCatalogSaveAndLoad(t *testing.T) {
	repo, _ := newCatalogRepo(t)

	movies := []entity.Movie{
		{Name: "Heat", Director: "Michael Mann", Genre: "Crime", Language: "English", Duration: "170", Rating: "R", PosterPath: "posters/heat.jpg"},
		{Name: "Ran", Director: "Akira Kurosawa", Genre: "Drama", Language: "Japanese", Duration: "162", Rating: "R"},
	}
	require.NoError(t, repo.SaveAll(movies))

	assert.Equal(t, movies, repo.LoadAll())
}

func TestCatalogSaveLoadSaveIsStable(t *testing.T) {
	repo, fs := newCatalogRepo(t)

	require.NoError(t, repo.SaveAll([]entity.Movie{
		{Name: "Heat", Director: "Michael Mann", Genre: "Crime", Language: "English", Duration: "170", Rating: "R"},
		{Name: "Alien", Director: "Ridley Scott", Genre: "Horror", Language: "English", Duration: "117", Rating: "R", PosterPath: "posters/alien.jpg"},
	}))

	before, err := afero.ReadFile(fs, catalogPath)
	require.NoError(t, err)

	require.NoError(t, repo.SaveAll(repo.LoadAll()))

	after, err := afero.ReadFile(fs, catalogPath)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestCatalogSkipsMalformedLines(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := storage.New(fs)
	require.NoError(t, store.AppendLine(catalogPath, "Heat,Michael Mann,Crime,English,170,R"))
	require.NoError(t, store.AppendLine(catalogPath, "broken,line"))
	require.NoError(t, store.AppendLine(catalogPath, "Ran,Akira Kurosawa,Drama,Japanese,162,R,posters/ran.jpg"))

	repo := NewCatalogRepository(store, catalogPath, zap.NewNop())

	movies := repo.LoadAll()
	require.Len(t, movies, 2)
	assert.Equal(t, "Heat", movies[0].Name)
	assert.Equal(t, "", movies[0].PosterPath)
	assert.Equal(t, "posters/ran.jpg", movies[1].PosterPath)
}
