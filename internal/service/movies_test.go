package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/MZidanFI/Bioskop-Project/internal/errors"
	"github.com/MZidanFI/Bioskop-Project/internal/models"
)

type fakeSearcher struct {
	ids []int64
	err error
}

func (s *fakeSearcher) SearchIDs(_ context.Context, _ string) ([]int64, error) {
	return s.ids, s.err
}

func newMovieFixture(searcher MovieSearcher) (*MovieService, *fakeMovieStore, *fakePublisher) {
	movies := newFakeMovieStore(
		models.Movie{ID: 1, Title: "Avengers: Secret Wars", Price: 50000, Status: models.MovieStatusNow},
		models.Movie{ID: 2, Title: "Moana 2", Price: 45000, Status: models.MovieStatusSoon},
		models.Movie{ID: 3, Title: "Laskar Pelangi", Price: 40000, Status: models.MovieStatusNow},
	)
	nats := &fakePublisher{}
	return NewMovieService(movies, searcher, nats), movies, nats
}

func TestCatalogueSplit(t *testing.T) {
	svc, _, _ := newMovieFixture(nil)

	resp, err := svc.Catalogue(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, resp.NowShowing, 2)
	require.Len(t, resp.ComingSoon, 1)
	assert.Equal(t, "Moana 2", resp.ComingSoon[0].Title)
}

func TestCatalogueSearchUsesIndex(t *testing.T) {
	svc, _, _ := newMovieFixture(&fakeSearcher{ids: []int64{3}})

	resp, err := svc.Catalogue(context.Background(), "pelangi")
	require.NoError(t, err)
	require.Len(t, resp.NowShowing, 1)
	assert.Equal(t, "Laskar Pelangi", resp.NowShowing[0].Title)
	assert.Empty(t, resp.ComingSoon)
}

func TestCatalogueSearchIndexFailureFallsBack(t *testing.T) {
	svc, _, _ := newMovieFixture(&fakeSearcher{err: errors.New("index down")})

	// The SQL path of the fake ignores the query and returns everything;
	// the point is that an index failure never fails the request.
	resp, err := svc.Catalogue(context.Background(), "pelangi")
	require.NoError(t, err)
	assert.Len(t, resp.NowShowing, 2)
}

func TestCatalogueSearchNoHits(t *testing.T) {
	svc, _, _ := newMovieFixture(&fakeSearcher{ids: []int64{}})

	resp, err := svc.Catalogue(context.Background(), "tidakada")
	require.NoError(t, err)
	assert.Empty(t, resp.NowShowing)
	assert.Empty(t, resp.ComingSoon)
}

func TestGetMovie(t *testing.T) {
	svc, _, _ := newMovieFixture(nil)
	ctx := context.Background()

	movie, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Avengers: Secret Wars", movie.Title)

	_, err = svc.Get(ctx, 404)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCreateMovie(t *testing.T) {
	svc, _, nats := newMovieFixture(nil)

	req := &models.CreateMovieRequest{
		Title:  "Dilan 1990",
		Price:  35000,
		Status: models.MovieStatusNow,
	}
	movie, err := svc.Create(context.Background(), admin(), req)
	require.NoError(t, err)
	assert.NotZero(t, movie.ID)

	require.Len(t, nats.published, 1)
	assert.Equal(t, models.EventMovieCreated, nats.published[0].subject)
}

func TestCreateMovieRequiresAdmin(t *testing.T) {
	svc, _, _ := newMovieFixture(nil)

	req := &models.CreateMovieRequest{Title: "Dilan 1990", Price: 35000, Status: models.MovieStatusNow}
	_, err := svc.Create(context.Background(), user(1), req)
	assert.ErrorIs(t, err, apperrors.ErrAuthorizationDenied)
}

func TestUpdateMoviePartial(t *testing.T) {
	svc, _, _ := newMovieFixture(nil)
	ctx := context.Background()

	newPrice := int64(60000)
	updated, err := svc.Update(ctx, admin(), 1, &models.UpdateMovieRequest{Price: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, int64(60000), updated.Price)
	assert.Equal(t, "Avengers: Secret Wars", updated.Title)
}

func TestUpdateMovieValidation(t *testing.T) {
	svc, _, _ := newMovieFixture(nil)
	ctx := context.Background()

	badPrice := int64(0)
	_, err := svc.Update(ctx, admin(), 1, &models.UpdateMovieRequest{Price: &badPrice})
	assert.Error(t, err)

	badStatus := "archived"
	_, err = svc.Update(ctx, admin(), 1, &models.UpdateMovieRequest{Status: &badStatus})
	assert.Error(t, err)

	_, err = svc.Update(ctx, admin(), 404, &models.UpdateMovieRequest{})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteMovie(t *testing.T) {
	svc, _, nats := newMovieFixture(nil)
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, admin(), 1))
	_, err := svc.Get(ctx, 1)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, admin(), 1), apperrors.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, user(1), 3), apperrors.ErrAuthorizationDenied)

	require.Len(t, nats.published, 1)
	assert.Equal(t, models.EventMovieDeleted, nats.published[0].subject)
}
