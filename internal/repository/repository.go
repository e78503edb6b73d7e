package repository

import (
	"github.com/MZidanFI/Bioskop-Project/internal/database"
)

type Repositories struct {
	Users    *UserRepository
	Movies   *MovieRepository
	Bookings *BookingRepository
	Ratings  *RatingRepository
}

func NewRepositories(db *database.DB) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(db),
		Movies:   NewMovieRepository(db),
		Bookings: NewBookingRepository(db),
		Ratings:  NewRatingRepository(db),
	}
}
