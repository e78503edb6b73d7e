package integration

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/MZidanFI/Bioskop-Project/internal/models"
)

// The suite runs against a live API instance and skips entirely when
// API_BASE_URL is unset.

// BaseURL returns the API address, skipping the test without one.
func BaseURL(t *testing.T) string {
	url := os.Getenv("API_BASE_URL")
	if url == "" {
		t.Skip("API_BASE_URL not set, skipping integration test")
	}
	return url
}

// AdminCredentials returns the admin login for the target instance.
func AdminCredentials() (username, password string) {
	username = os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password = os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "123"
	}
	return username, password
}

// NewUserClient registers a fresh throwaway user and logs in.
func NewUserClient(t *testing.T) *TestClient {
	client := NewTestClient(BaseURL(t))
	username := fmt.Sprintf("it_%d", time.Now().UnixNano())
	client.Register(t, username, "rahasia")
	client.Login(t, username, "rahasia")
	return client
}

// NewAdminClient logs in as the seeded admin.
func NewAdminClient(t *testing.T) *TestClient {
	client := NewTestClient(BaseURL(t))
	username, password := AdminCredentials()
	login := client.Login(t, username, password)
	if login.Role != models.RoleAdmin {
		t.Fatalf("Expected admin role for %s, got %q", username, login.Role)
	}
	return client
}

// FindNowShowing returns a bookable movie, skipping when there is none.
func FindNowShowing(t *testing.T, client *TestClient) *models.Movie {
	list := client.ListMovies(t)
	if len(list.NowShowing) == 0 {
		t.Skip("No now-showing movies available for booking tests")
	}
	return &list.NowShowing[0]
}

// FreeSeat picks a seat token not currently held for the movie.
func FreeSeat(t *testing.T, client *TestClient, movieID int64) string {
	detail := client.GetMovie(t, movieID)
	held := make(map[string]bool, len(detail.BookedSeats))
	for _, seat := range detail.BookedSeats {
		held[seat] = true
	}

	for row := 'A'; row <= 'Z'; row++ {
		for num := 1; num <= 50; num++ {
			seat := fmt.Sprintf("%c%d", row, num)
			if !held[seat] {
				return seat
			}
		}
	}

	t.Fatal("No free seat token found")
	return ""
}

// LogTestStep logs a test step for better debugging
func LogTestStep(t *testing.T, step string, args ...interface{}) {
	t.Logf("🔹 "+step, args...)
}

// LogTestResult logs a test result
func LogTestResult(t *testing.T, result string, args ...interface{}) {
	t.Logf("✅ "+result, args...)
}
