package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MZidanFI/Bioskop-Project/internal/models"
)

// reportDate parses the optional ?date= parameter; the report defaults
// to today.
func reportDate(c *gin.Context) (time.Time, error) {
	raw := c.Query("date")
	if raw == "" {
		return time.Now(), nil
	}
	return time.Parse("2006-01-02", raw)
}

// CreateMovie - POST /api/admin/movies
func (h *Handlers) CreateMovie(c *gin.Context) {
	var req models.CreateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()

	movie, err := h.services.Movies.Create(ctx, callerIdentity(c), &req)
	if err != nil {
		slog.Error("Failed to create movie", "error", err, "title", req.Title)
		writeError(c, err)
		return
	}

	if h.cacheClient != nil {
		h.cacheClient.InvalidateMovieList(ctx)
	}

	c.JSON(http.StatusCreated, movie)
}

// UpdateMovie - PUT /api/admin/movies/:id
func (h *Handlers) UpdateMovie(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid movie id"})
		return
	}

	var req models.UpdateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()

	movie, err := h.services.Movies.Update(ctx, callerIdentity(c), movieID, &req)
	if err != nil {
		slog.Error("Failed to update movie", "error", err, "movie_id", movieID)
		writeError(c, err)
		return
	}

	if h.cacheClient != nil {
		h.cacheClient.InvalidateMovieList(ctx)
	}

	c.JSON(http.StatusOK, movie)
}

// DeleteMovie - DELETE /api/admin/movies/:id
func (h *Handlers) DeleteMovie(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid movie id"})
		return
	}

	ctx := c.Request.Context()

	if err := h.services.Movies.Delete(ctx, callerIdentity(c), movieID); err != nil {
		slog.Error("Failed to delete movie", "error", err, "movie_id", movieID)
		writeError(c, err)
		return
	}

	if h.cacheClient != nil {
		h.cacheClient.InvalidateMovieList(ctx)
		h.cacheClient.InvalidateBookedSeats(ctx, movieID)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Movie deleted"})
}

// ResetSeats - POST /api/admin/movies/:id/reset-seats
// Moves the movie's active bookings to history; the sales report keeps
// seeing them.
func (h *Handlers) ResetSeats(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid movie id"})
		return
	}

	ctx := c.Request.Context()

	count, err := h.services.Bookings.ResetSeats(ctx, callerIdentity(c), movieID)
	if err != nil {
		slog.Error("Failed to reset seats", "error", err, "movie_id", movieID)
		writeError(c, err)
		return
	}

	if h.cacheClient != nil {
		h.cacheClient.InvalidateBookedSeats(ctx, movieID)
	}

	c.JSON(http.StatusOK, models.ResetSeatsResponse{ResetCount: count})
}

// AdminPanel - GET /api/admin/panel?date=
func (h *Handlers) AdminPanel(c *gin.Context) {
	date, err := reportDate(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	panel, err := h.services.Reports.AdminPanel(c.Request.Context(), callerIdentity(c), date)
	if err != nil {
		slog.Error("Failed to build admin panel", "error", err)
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, panel)
}

// DownloadReport - GET /api/admin/report?date=
// Streams the daily sales report as a CSV attachment.
func (h *Handlers) DownloadReport(c *gin.Context) {
	date, err := reportDate(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	var buf bytes.Buffer
	filename, err := h.services.Reports.WriteCSV(c.Request.Context(), callerIdentity(c), date, &buf)
	if err != nil {
		slog.Error("Failed to write sales report", "error", err)
		writeError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
