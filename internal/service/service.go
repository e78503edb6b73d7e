package service

import (
	"github.com/MZidanFI/Bioskop-Project/internal/auth"
	"github.com/MZidanFI/Bioskop-Project/internal/messaging"
	"github.com/MZidanFI/Bioskop-Project/internal/repository"
	"github.com/MZidanFI/Bioskop-Project/internal/search"
)

// Publisher is the slice of the messaging client services need. Publish
// failures are logged and never fail the operation that triggered them.
type Publisher interface {
	Publish(subject string, data interface{}) error
}

type Services struct {
	Auth     *AuthService
	Movies   *MovieService
	Bookings *BookingService
	Ratings  *RatingService
	Reports  *ReportService
}

func NewServices(repos *repository.Repositories, tokens *auth.TokenManager, natsClient *messaging.NATSClient, movieIndex *search.MovieIndex) *Services {
	var searcher MovieSearcher
	if movieIndex != nil {
		searcher = movieIndex
	}

	return &Services{
		Auth:     NewAuthService(repos.Users, tokens),
		Movies:   NewMovieService(repos.Movies, searcher, natsClient),
		Bookings: NewBookingService(repos.Movies, repos.Bookings, natsClient),
		Ratings:  NewRatingService(repos.Ratings),
		Reports:  NewReportService(repos.Bookings, repos.Movies),
	}
}
