package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MZidanFI/Bioskop-Project/internal/models"
)

// BookSeats - POST /api/bookings
// Seats already held come back in "skipped"; the request itself still
// succeeds.
func (h *Handlers) BookSeats(c *gin.Context) {
	var req models.BookSeatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	id := callerIdentity(c)

	response, err := h.services.Bookings.BookSeats(ctx, id, req.MovieID, req.Seats)
	if err != nil {
		slog.Error("Failed to book seats", "error", err, "movie_id", req.MovieID, "user_id", id.UserID)
		writeError(c, err)
		return
	}

	if h.cacheClient != nil && len(response.Booked) > 0 {
		h.cacheClient.InvalidateBookedSeats(ctx, req.MovieID)
	}

	c.JSON(http.StatusCreated, response)
}

// BookingHistory - GET /api/bookings/history
func (h *Handlers) BookingHistory(c *gin.Context) {
	ctx := c.Request.Context()
	id := callerIdentity(c)

	items, err := h.services.Bookings.History(ctx, id)
	if err != nil {
		slog.Error("Failed to get booking history", "error", err, "user_id", id.UserID)
		writeError(c, err)
		return
	}
	if items == nil {
		items = []models.HistoryItem{}
	}

	c.JSON(http.StatusOK, gin.H{"bookings": items})
}
