package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/MZidanFI/Bioskop-Project/internal/models"
)

// TestClient provides methods for testing a running API instance.
type TestClient struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

// NewTestClient creates a new test client
func NewTestClient(baseURL string) *TestClient {
	return &TestClient{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// makeRequest makes an HTTP request and returns the response
func (c *TestClient) makeRequest(t *testing.T, method, path string, body interface{}) *http.Response {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, reqBody)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		t.Fatalf("Failed to make request: %v", err)
	}

	return resp
}

// HealthCheck verifies the API is up
func (c *TestClient) HealthCheck(t *testing.T) {
	resp := c.makeRequest(t, "GET", "/health", nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
}

// Register creates an account; an already-taken username is fine when
// tests re-run against the same database.
func (c *TestClient) Register(t *testing.T, username, password string) {
	req := models.RegisterRequest{Username: username, Password: password}

	resp := c.makeRequest(t, "POST", "/api/auth/register", req)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusConflict {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status 201 or 409, got %d. Body: %s", resp.StatusCode, string(body))
	}
}

// Login authenticates and stores the token for subsequent requests
func (c *TestClient) Login(t *testing.T, username, password string) *models.LoginResponse {
	req := models.LoginRequest{Username: username, Password: password}

	resp := c.makeRequest(t, "POST", "/api/auth/login", req)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var login models.LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&login); err != nil {
		t.Fatalf("Failed to decode login response: %v", err)
	}

	c.Token = login.Token
	return &login
}

// ListMovies lists the catalogue
func (c *TestClient) ListMovies(t *testing.T) *models.MovieListResponse {
	resp := c.makeRequest(t, "GET", "/api/movies", nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var list models.MovieListResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("Failed to decode movie list response: %v", err)
	}

	return &list
}

// GetMovie fetches one movie with its rating and seats
func (c *TestClient) GetMovie(t *testing.T, movieID int64) *models.MovieDetailResponse {
	resp := c.makeRequest(t, "GET", fmt.Sprintf("/api/movies/%d", movieID), nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var detail models.MovieDetailResponse
	if err := json.NewDecoder(resp.Body).Decode(&detail); err != nil {
		t.Fatalf("Failed to decode movie detail response: %v", err)
	}

	return &detail
}

// BookSeats books seats for a movie
func (c *TestClient) BookSeats(t *testing.T, movieID int64, seats []string) *models.BookSeatsResponse {
	req := models.BookSeatsRequest{MovieID: movieID, Seats: seats}

	resp := c.makeRequest(t, "POST", "/api/bookings", req)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status 201, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var booking models.BookSeatsResponse
	if err := json.NewDecoder(resp.Body).Decode(&booking); err != nil {
		t.Fatalf("Failed to decode booking response: %v", err)
	}

	return &booking
}

// SubmitRating rates a movie and returns the new summary
func (c *TestClient) SubmitRating(t *testing.T, movieID int64, score int) *models.RatingSummary {
	req := models.SubmitRatingRequest{Score: score}

	resp := c.makeRequest(t, "POST", fmt.Sprintf("/api/movies/%d/rating", movieID), req)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var summary models.RatingSummary
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		t.Fatalf("Failed to decode rating response: %v", err)
	}

	return &summary
}

// ResetSeats resets a movie's seats (admin)
func (c *TestClient) ResetSeats(t *testing.T, movieID int64) *models.ResetSeatsResponse {
	resp := c.makeRequest(t, "POST", fmt.Sprintf("/api/admin/movies/%d/reset-seats", movieID), nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var reset models.ResetSeatsResponse
	if err := json.NewDecoder(resp.Body).Decode(&reset); err != nil {
		t.Fatalf("Failed to decode reset response: %v", err)
	}

	return &reset
}

// DownloadReport fetches the daily CSV report (admin)
func (c *TestClient) DownloadReport(t *testing.T, date string) ([]byte, string) {
	resp := c.makeRequest(t, "GET", "/api/admin/report?date="+date, nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read report body: %v", err)
	}

	return body, resp.Header.Get("Content-Disposition")
}
