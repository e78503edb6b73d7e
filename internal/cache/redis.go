package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MZidanFI/Bioskop-Project/internal/config"
)

const (
	movieListKey   = "movies:list"
	bookedSeatsKey = "seats:movie:%d"

	movieListTTL   = 60 * time.Second
	bookedSeatsTTL = 30 * time.Second
)

// Client caches the movie catalogue and per-movie booked-seat sets.
// Every miss or Redis error degrades to the database path.
type Client struct {
	rdb *redis.Client
}

func NewClient(cfg config.RedisConfig) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
		DialTimeout:  5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// GetMovieListRaw returns the cached catalogue response as raw JSON.
func (c *Client) GetMovieListRaw(ctx context.Context) ([]byte, error) {
	return c.rdb.Get(ctx, movieListKey).Bytes()
}

// SetMovieList stores the catalogue response. Marshal or Redis failures
// only lose the cache entry.
func (c *Client) SetMovieList(ctx context.Context, value interface{}) {
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, movieListKey, payload, movieListTTL)
}

// InvalidateMovieList drops the cached catalogue after a movie mutation.
func (c *Client) InvalidateMovieList(ctx context.Context) {
	c.rdb.Del(ctx, movieListKey)
}

// GetBookedSeats returns the cached active seat set for a movie.
func (c *Client) GetBookedSeats(ctx context.Context, movieID int64) ([]string, error) {
	payload, err := c.rdb.Get(ctx, fmt.Sprintf(bookedSeatsKey, movieID)).Bytes()
	if err != nil {
		return nil, err
	}

	var seats []string
	if err := json.Unmarshal(payload, &seats); err != nil {
		return nil, err
	}
	return seats, nil
}

// SetBookedSeats stores the active seat set for a movie.
func (c *Client) SetBookedSeats(ctx context.Context, movieID int64, seats []string) {
	payload, err := json.Marshal(seats)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, fmt.Sprintf(bookedSeatsKey, movieID), payload, bookedSeatsTTL)
}

// InvalidateBookedSeats drops the seat set after a booking or reset.
func (c *Client) InvalidateBookedSeats(ctx context.Context, movieID int64) {
	c.rdb.Del(ctx, fmt.Sprintf(bookedSeatsKey, movieID))
}

func (c *Client) Close() error {
	return c.rdb.Close()
}
