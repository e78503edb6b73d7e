package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/MZidanFI/Bioskop-Project/internal/errors"
	"github.com/MZidanFI/Bioskop-Project/internal/identity"
)

func TestRatingSummaryEmpty(t *testing.T) {
	svc := NewRatingService(newFakeRatingStore())

	summary, err := svc.Summary(context.Background(), 1, identity.Identity{})
	require.NoError(t, err)
	assert.Equal(t, 0.0, summary.Average)
	assert.Equal(t, int64(0), summary.Count)
	assert.Equal(t, 0, summary.OwnScore)
}

func TestRatingSummaryRounding(t *testing.T) {
	store := newFakeRatingStore()
	svc := NewRatingService(store)
	ctx := context.Background()

	require.NoError(t, svc.Submit(ctx, user(1), 1, 4))
	require.NoError(t, svc.Submit(ctx, user(2), 1, 5))
	require.NoError(t, svc.Submit(ctx, user(3), 1, 5))

	// 14/3 = 4.666..., rounded to one decimal
	summary, err := svc.Summary(ctx, 1, identity.Identity{})
	require.NoError(t, err)
	assert.Equal(t, 4.7, summary.Average)
	assert.Equal(t, int64(3), summary.Count)
}

func TestRatingSummaryOwnScore(t *testing.T) {
	svc := NewRatingService(newFakeRatingStore())
	ctx := context.Background()

	require.NoError(t, svc.Submit(ctx, user(1), 1, 3))
	require.NoError(t, svc.Submit(ctx, user(2), 1, 5))

	summary, err := svc.Summary(ctx, 1, user(1))
	require.NoError(t, err)
	assert.Equal(t, 3, summary.OwnScore)

	// A user who has not rated sees zero
	summary, err = svc.Summary(ctx, 1, user(3))
	require.NoError(t, err)
	assert.Equal(t, 0, summary.OwnScore)
}

func TestRatingSubmitUpdatesInPlace(t *testing.T) {
	store := newFakeRatingStore()
	svc := NewRatingService(store)
	ctx := context.Background()

	require.NoError(t, svc.Submit(ctx, user(1), 1, 2))
	require.NoError(t, svc.Submit(ctx, user(1), 1, 5))

	summary, err := svc.Summary(ctx, 1, user(1))
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.Count)
	assert.Equal(t, 5.0, summary.Average)
	assert.Equal(t, 5, summary.OwnScore)
}

func TestRatingSubmitPerMovie(t *testing.T) {
	svc := NewRatingService(newFakeRatingStore())
	ctx := context.Background()

	require.NoError(t, svc.Submit(ctx, user(1), 1, 5))
	require.NoError(t, svc.Submit(ctx, user(1), 2, 1))

	summary, err := svc.Summary(ctx, 1, user(1))
	require.NoError(t, err)
	assert.Equal(t, 5, summary.OwnScore)

	summary, err = svc.Summary(ctx, 2, user(1))
	require.NoError(t, err)
	assert.Equal(t, 1, summary.OwnScore)
}

func TestRatingSubmitValidation(t *testing.T) {
	svc := NewRatingService(newFakeRatingStore())
	ctx := context.Background()

	assert.ErrorIs(t, svc.Submit(ctx, user(1), 1, 0), apperrors.ErrInvalidScore)
	assert.ErrorIs(t, svc.Submit(ctx, user(1), 1, 6), apperrors.ErrInvalidScore)
	assert.ErrorIs(t, svc.Submit(ctx, identity.Identity{}, 1, 3), apperrors.ErrAuthenticationRequired)
}

func TestRatingAverageStaysInBounds(t *testing.T) {
	svc := NewRatingService(newFakeRatingStore())
	ctx := context.Background()

	for i := int64(1); i <= 10; i++ {
		score := int(i%5) + 1
		require.NoError(t, svc.Submit(ctx, user(i), 1, score))
	}

	summary, err := svc.Summary(ctx, 1, identity.Identity{})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, summary.Average, 1.0)
	assert.LessOrEqual(t, summary.Average, 5.0)
}
