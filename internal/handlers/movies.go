package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MZidanFI/Bioskop-Project/internal/models"
)

// ListMovies - GET /api/movies?q=
// The catalogue split into now-showing and coming-soon; unfiltered
// listings are served from cache when possible.
func (h *Handlers) ListMovies(c *gin.Context) {
	query := c.Query("q")

	if query == "" && h.cacheClient != nil {
		if rawJSON, err := h.cacheClient.GetMovieListRaw(c.Request.Context()); err == nil {
			c.Data(http.StatusOK, "application/json", rawJSON)
			return
		}
	}

	response, err := h.services.Movies.Catalogue(c.Request.Context(), query)
	if err != nil {
		slog.Error("Failed to list movies", "error", err)
		writeError(c, err)
		return
	}

	if query == "" && h.cacheClient != nil {
		h.cacheClient.SetMovieList(c.Request.Context(), response)
	}

	c.JSON(http.StatusOK, response)
}

// GetMovie - GET /api/movies/:id
// Movie detail with rating summary; for bookable movies the currently
// held seats come along so the seat picker can grey them out.
func (h *Handlers) GetMovie(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid movie id"})
		return
	}

	ctx := c.Request.Context()
	id := callerIdentity(c)

	movie, err := h.services.Movies.Get(ctx, movieID)
	if err != nil {
		writeError(c, err)
		return
	}

	rating, err := h.services.Ratings.Summary(ctx, movieID, id)
	if err != nil {
		slog.Error("Failed to get rating summary", "error", err, "movie_id", movieID)
		writeError(c, err)
		return
	}

	response := models.MovieDetailResponse{
		Movie:  *movie,
		Rating: *rating,
	}

	if movie.Status == models.MovieStatusNow {
		seats, err := h.bookedSeats(c, movieID)
		if err != nil {
			slog.Error("Failed to get booked seats", "error", err, "movie_id", movieID)
			writeError(c, err)
			return
		}
		response.BookedSeats = seats
	}

	c.JSON(http.StatusOK, response)
}

func (h *Handlers) bookedSeats(c *gin.Context, movieID int64) ([]string, error) {
	ctx := c.Request.Context()

	if h.cacheClient != nil {
		if seats, err := h.cacheClient.GetBookedSeats(ctx, movieID); err == nil {
			return seats, nil
		}
	}

	seats, err := h.services.Bookings.BookedSeats(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if seats == nil {
		seats = []string{}
	}

	if h.cacheClient != nil {
		h.cacheClient.SetBookedSeats(ctx, movieID, seats)
	}

	return seats, nil
}

// SubmitRating - POST /api/movies/:id/rating
func (h *Handlers) SubmitRating(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid movie id"})
		return
	}

	var req models.SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	id := callerIdentity(c)

	// Rating a missing movie is a 404, not a dangling row
	if _, err := h.services.Movies.Get(ctx, movieID); err != nil {
		writeError(c, err)
		return
	}

	if err := h.services.Ratings.Submit(ctx, id, movieID, req.Score); err != nil {
		writeError(c, err)
		return
	}

	summary, err := h.services.Ratings.Summary(ctx, movieID, id)
	if err != nil {
		slog.Error("Failed to get rating summary", "error", err, "movie_id", movieID)
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
