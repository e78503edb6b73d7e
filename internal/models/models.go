package models

// RegisterRequest - payload for user registration
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=100"`
	Password string `json:"password" binding:"required,min=3,max=72"`
}

// RegisterResponse - response for successful registration
type RegisterResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// LoginRequest - payload for login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse - response for successful login
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// CreateMovieRequest - admin payload to add a movie
type CreateMovieRequest struct {
	Title       string  `json:"title" binding:"required,max=100"`
	Price       int64   `json:"price" binding:"required,gt=0"`
	Image       *string `json:"image,omitempty"`
	Description *string `json:"description,omitempty"`
	Showtime    *string `json:"showtime,omitempty"`
	Status      string  `json:"status" binding:"required,oneof=now soon"`
}

// UpdateMovieRequest - admin payload to edit a movie; nil fields keep
// the current value.
type UpdateMovieRequest struct {
	Title       *string `json:"title,omitempty"`
	Price       *int64  `json:"price,omitempty"`
	Image       *string `json:"image,omitempty"`
	Description *string `json:"description,omitempty"`
	Showtime    *string `json:"showtime,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// MovieListResponse - catalogue split into the two display sections
type MovieListResponse struct {
	NowShowing []Movie `json:"now_showing"`
	ComingSoon []Movie `json:"coming_soon"`
}

// MovieDetailResponse - movie plus rating summary and, for bookable
// movies, the currently held seats.
type MovieDetailResponse struct {
	Movie       Movie         `json:"movie"`
	Rating      RatingSummary `json:"rating"`
	BookedSeats []string      `json:"booked_seats,omitempty"`
}

// RatingSummary - aggregate rating of a movie from the caller's viewpoint
type RatingSummary struct {
	Average  float64 `json:"average"`
	Count    int64   `json:"count"`
	OwnScore int     `json:"own_score"`
}

// SubmitRatingRequest - payload for rating a movie
type SubmitRatingRequest struct {
	Score int `json:"score" binding:"required"`
}

// BookSeatsRequest - payload for booking one or more seats
type BookSeatsRequest struct {
	MovieID int64    `json:"movie_id" binding:"required"`
	Seats   []string `json:"seats" binding:"required,min=1"`
}

// BookSeatsResponse - outcome of a booking call. The call succeeds even
// when some seats were already taken; those come back in Skipped.
type BookSeatsResponse struct {
	Booked  []string `json:"booked"`
	Skipped []string `json:"skipped"`
}

// ResetSeatsResponse - number of seats moved to history by an admin reset
type ResetSeatsResponse struct {
	ResetCount int64 `json:"reset_count"`
}

// AdminPanelResponse - everything the admin dashboard shows for one date
type AdminPanelResponse struct {
	Date         string        `json:"date"`
	Movies       []Movie       `json:"movies"`
	DailySales   []SalesRow    `json:"daily_sales"`
	DailyRevenue int64         `json:"daily_revenue"`
	TicketCounts []TicketCount `json:"ticket_counts"`
}
