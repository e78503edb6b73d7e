package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/MZidanFI/Bioskop-Project/internal/errors"
	"github.com/MZidanFI/Bioskop-Project/internal/identity"
	"github.com/MZidanFI/Bioskop-Project/internal/models"
)

func newBookingFixture() (*BookingService, *fakeBookingStore, *fakePublisher) {
	movies := newFakeMovieStore(
		models.Movie{ID: 1, Title: "Avengers: Secret Wars", Price: 50000, Status: models.MovieStatusNow},
		models.Movie{ID: 2, Title: "Moana 2", Price: 45000, Status: models.MovieStatusSoon},
		models.Movie{ID: 3, Title: "Laskar Pelangi", Price: 40000, Status: models.MovieStatusNow},
	)
	bookings := newFakeBookingStore()
	nats := &fakePublisher{}
	return NewBookingService(movies, bookings, nats), bookings, nats
}

func user(id int64) identity.Identity {
	return identity.Identity{UserID: id, Username: "user", Role: models.RoleUser}
}

func admin() identity.Identity {
	return identity.Identity{UserID: 99, Username: "admin", Role: models.RoleAdmin}
}

func TestBookSeats(t *testing.T) {
	svc, _, _ := newBookingFixture()
	ctx := context.Background()

	resp, err := svc.BookSeats(ctx, user(1), 1, []string{"A1", "A2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A1", "A2"}, resp.Booked)
	assert.Empty(t, resp.Skipped)

	seats, err := svc.BookedSeats(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"A1", "A2"}, seats)
}

func TestBookSeatsHeldSeatIsSkipped(t *testing.T) {
	svc, store, _ := newBookingFixture()
	ctx := context.Background()

	_, err := svc.BookSeats(ctx, user(1), 1, []string{"A1"})
	require.NoError(t, err)

	// Another user asking for the same seat succeeds but books nothing
	resp, err := svc.BookSeats(ctx, user(2), 1, []string{"A1", "B1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"B1"}, resp.Booked)
	assert.Equal(t, []string{"A1"}, resp.Skipped)

	// The seat still belongs to the first user
	assert.Equal(t, int64(1), store.owner(1, "A1"))
}

func TestBookSeatsRebookingOwnSeatIsNoOp(t *testing.T) {
	svc, store, _ := newBookingFixture()
	ctx := context.Background()

	_, err := svc.BookSeats(ctx, user(1), 1, []string{"A1"})
	require.NoError(t, err)

	resp, err := svc.BookSeats(ctx, user(1), 1, []string{"A1"})
	require.NoError(t, err)
	assert.Empty(t, resp.Booked)
	assert.Equal(t, []string{"A1"}, resp.Skipped)

	// No duplicate row appeared
	seats, _ := svc.BookedSeats(ctx, 1)
	assert.Equal(t, []string{"A1"}, seats)
	assert.Equal(t, int64(1), store.owner(1, "A1"))
}

func TestBookSeatsDuplicatesInRequestCollapse(t *testing.T) {
	svc, _, _ := newBookingFixture()

	resp, err := svc.BookSeats(context.Background(), user(1), 1, []string{"A1", "A1", "", "A1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A1"}, resp.Booked)
	assert.Empty(t, resp.Skipped)
}

func TestBookSeatsSameSeatDifferentMovies(t *testing.T) {
	svc, store, _ := newBookingFixture()
	ctx := context.Background()

	_, err := svc.BookSeats(ctx, user(1), 1, []string{"A1"})
	require.NoError(t, err)

	// Seat numbers are scoped per movie
	resp, err := svc.BookSeats(ctx, user(2), 3, []string{"A1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A1"}, resp.Booked)

	assert.Equal(t, int64(1), store.owner(1, "A1"))
	assert.Equal(t, int64(2), store.owner(3, "A1"))
}

func TestBookSeatsErrors(t *testing.T) {
	svc, _, _ := newBookingFixture()
	ctx := context.Background()

	_, err := svc.BookSeats(ctx, identity.Identity{}, 1, []string{"A1"})
	assert.ErrorIs(t, err, apperrors.ErrAuthenticationRequired)

	_, err = svc.BookSeats(ctx, user(1), 404, []string{"A1"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// Coming-soon movies are not bookable
	_, err = svc.BookSeats(ctx, user(1), 2, []string{"A1"})
	assert.ErrorIs(t, err, apperrors.ErrMovieNotShowing)
}

func TestBookSeatsPublishesEvent(t *testing.T) {
	svc, _, nats := newBookingFixture()

	_, err := svc.BookSeats(context.Background(), user(1), 1, []string{"A1"})
	require.NoError(t, err)

	require.Len(t, nats.published, 1)
	assert.Equal(t, models.EventBookingCreated, nats.published[0].subject)
	event := nats.published[0].data.(models.BookingCreatedEvent)
	assert.Equal(t, []string{"A1"}, event.Booked)
}

func TestResetSeats(t *testing.T) {
	svc, store, _ := newBookingFixture()
	ctx := context.Background()

	_, err := svc.BookSeats(ctx, user(1), 1, []string{"A1", "A2"})
	require.NoError(t, err)
	_, err = svc.BookSeats(ctx, user(2), 3, []string{"A1"})
	require.NoError(t, err)

	count, err := svc.ResetSeats(ctx, admin(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// The movie's seats are free again, the other movie is untouched
	seats, _ := svc.BookedSeats(ctx, 1)
	assert.Empty(t, seats)
	seats, _ = svc.BookedSeats(ctx, 3)
	assert.Equal(t, []string{"A1"}, seats)

	// The rows survive as history for reporting
	items, err := svc.History(ctx, user(1))
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, item := range items {
		assert.Equal(t, models.BookingStatusHistory, item.Status)
	}
	assert.Equal(t, int64(0), store.owner(1, "A1"))
}

func TestResetSeatsIdempotent(t *testing.T) {
	svc, _, _ := newBookingFixture()
	ctx := context.Background()

	_, err := svc.BookSeats(ctx, user(1), 1, []string{"A1"})
	require.NoError(t, err)

	count, err := svc.ResetSeats(ctx, admin(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = svc.ResetSeats(ctx, admin(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestResetSeatsFreesSeatForRebooking(t *testing.T) {
	svc, store, _ := newBookingFixture()
	ctx := context.Background()

	_, err := svc.BookSeats(ctx, user(1), 1, []string{"A1"})
	require.NoError(t, err)
	_, err = svc.ResetSeats(ctx, admin(), 1)
	require.NoError(t, err)

	resp, err := svc.BookSeats(ctx, user(2), 1, []string{"A1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A1"}, resp.Booked)
	assert.Equal(t, int64(2), store.owner(1, "A1"))
}

func TestResetSeatsAccessControl(t *testing.T) {
	svc, _, _ := newBookingFixture()
	ctx := context.Background()

	_, err := svc.ResetSeats(ctx, user(1), 1)
	assert.ErrorIs(t, err, apperrors.ErrAuthorizationDenied)

	_, err = svc.ResetSeats(ctx, identity.Identity{}, 1)
	assert.ErrorIs(t, err, apperrors.ErrAuthenticationRequired)

	_, err = svc.ResetSeats(ctx, admin(), 404)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestHistoryRequiresAuthentication(t *testing.T) {
	svc, _, _ := newBookingFixture()

	_, err := svc.History(context.Background(), identity.Identity{})
	assert.ErrorIs(t, err, apperrors.ErrAuthenticationRequired)
}
