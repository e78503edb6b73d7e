package service

import (
	"context"
	"time"

	"github.com/MZidanFI/Bioskop-Project/internal/models"
)

// In-memory stores backing the service tests.

type fakeMovieStore struct {
	movies map[int64]*models.Movie
	nextID int64
}

func newFakeMovieStore(movies ...models.Movie) *fakeMovieStore {
	s := &fakeMovieStore{
		movies: make(map[int64]*models.Movie),
		nextID: 1,
	}
	for _, m := range movies {
		movie := m
		if movie.ID == 0 {
			movie.ID = s.nextID
		}
		if movie.ID >= s.nextID {
			s.nextID = movie.ID + 1
		}
		s.movies[movie.ID] = &movie
	}
	return s
}

func (s *fakeMovieStore) GetByID(_ context.Context, id int64) (*models.Movie, error) {
	movie, ok := s.movies[id]
	if !ok {
		return nil, nil
	}
	copied := *movie
	return &copied, nil
}

func (s *fakeMovieStore) GetByIDs(_ context.Context, ids []int64) ([]models.Movie, error) {
	var result []models.Movie
	for _, id := range ids {
		if movie, ok := s.movies[id]; ok {
			result = append(result, *movie)
		}
	}
	return result, nil
}

func (s *fakeMovieStore) List(_ context.Context, status, titleQuery string) ([]models.Movie, error) {
	var result []models.Movie
	for id := int64(1); id < s.nextID; id++ {
		movie, ok := s.movies[id]
		if !ok {
			continue
		}
		if status != "" && movie.Status != status {
			continue
		}
		result = append(result, *movie)
	}
	return result, nil
}

func (s *fakeMovieStore) Create(_ context.Context, movie *models.Movie) error {
	movie.ID = s.nextID
	s.nextID++
	copied := *movie
	s.movies[movie.ID] = &copied
	return nil
}

func (s *fakeMovieStore) Update(_ context.Context, movie *models.Movie) error {
	copied := *movie
	s.movies[movie.ID] = &copied
	return nil
}

func (s *fakeMovieStore) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := s.movies[id]; !ok {
		return false, nil
	}
	delete(s.movies, id)
	return true, nil
}

type fakeBookingStore struct {
	bookings []models.Booking
	nextID   int64
}

func newFakeBookingStore() *fakeBookingStore {
	return &fakeBookingStore{nextID: 1}
}

func (s *fakeBookingStore) InsertActive(_ context.Context, booking *models.Booking) (bool, error) {
	for _, b := range s.bookings {
		if b.MovieID == booking.MovieID && b.SeatNumber == booking.SeatNumber && b.Status == models.BookingStatusBooked {
			return false, nil
		}
	}
	booking.ID = s.nextID
	s.nextID++
	booking.Status = models.BookingStatusBooked
	s.bookings = append(s.bookings, *booking)
	return true, nil
}

func (s *fakeBookingStore) BookedSeats(_ context.Context, movieID int64) ([]string, error) {
	var seats []string
	for _, b := range s.bookings {
		if b.MovieID == movieID && b.Status == models.BookingStatusBooked {
			seats = append(seats, b.SeatNumber)
		}
	}
	return seats, nil
}

func (s *fakeBookingStore) ResetActive(_ context.Context, movieID int64) (int64, error) {
	var count int64
	for i := range s.bookings {
		if s.bookings[i].MovieID == movieID && s.bookings[i].Status == models.BookingStatusBooked {
			s.bookings[i].Status = models.BookingStatusHistory
			count++
		}
	}
	return count, nil
}

func (s *fakeBookingStore) HistoryByUser(_ context.Context, userID int64) ([]models.HistoryItem, error) {
	var items []models.HistoryItem
	for i := len(s.bookings) - 1; i >= 0; i-- {
		b := s.bookings[i]
		if b.UserID != userID {
			continue
		}
		items = append(items, models.HistoryItem{
			BookingID:   b.ID,
			MovieID:     b.MovieID,
			SeatNumber:  b.SeatNumber,
			BookingDate: b.BookingDate,
			Status:      b.Status,
		})
	}
	return items, nil
}

// owner returns the user holding the seat, or 0.
func (s *fakeBookingStore) owner(movieID int64, seat string) int64 {
	for _, b := range s.bookings {
		if b.MovieID == movieID && b.SeatNumber == seat && b.Status == models.BookingStatusBooked {
			return b.UserID
		}
	}
	return 0
}

type fakeRatingStore struct {
	ratings []models.Rating
	nextID  int64
}

func newFakeRatingStore() *fakeRatingStore {
	return &fakeRatingStore{nextID: 1}
}

func (s *fakeRatingStore) GetByUserAndMovie(_ context.Context, userID, movieID int64) (*models.Rating, error) {
	for _, r := range s.ratings {
		if r.UserID == userID && r.MovieID == movieID {
			copied := r
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeRatingStore) Insert(_ context.Context, rating *models.Rating) error {
	rating.ID = s.nextID
	s.nextID++
	s.ratings = append(s.ratings, *rating)
	return nil
}

func (s *fakeRatingStore) UpdateScore(_ context.Context, id int64, score int) error {
	for i := range s.ratings {
		if s.ratings[i].ID == id {
			s.ratings[i].Score = score
			return nil
		}
	}
	return nil
}

func (s *fakeRatingStore) Aggregate(_ context.Context, movieID int64) (float64, int64, error) {
	var sum, count int64
	for _, r := range s.ratings {
		if r.MovieID == movieID {
			sum += int64(r.Score)
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(count), count, nil
}

type fakeSalesStore struct {
	rows    []models.SalesRow
	revenue int64
	counts  []models.TicketCount
}

func (s *fakeSalesStore) SalesByDate(_ context.Context, _ time.Time) ([]models.SalesRow, error) {
	return s.rows, nil
}

func (s *fakeSalesStore) RevenueByDate(_ context.Context, _ time.Time) (int64, error) {
	return s.revenue, nil
}

func (s *fakeSalesStore) TicketCounts(_ context.Context) ([]models.TicketCount, error) {
	return s.counts, nil
}

type fakePublisher struct {
	published []publishedEvent
}

type publishedEvent struct {
	subject string
	data    interface{}
}

func (p *fakePublisher) Publish(subject string, data interface{}) error {
	p.published = append(p.published, publishedEvent{subject: subject, data: data})
	return nil
}
