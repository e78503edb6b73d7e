package integration

import (
	"testing"
)

// TestAPI_HealthCheck tests the API health endpoint
func TestAPI_HealthCheck(t *testing.T) {
	client := NewTestClient(BaseURL(t))

	LogTestStep(t, "Testing API health check")
	client.HealthCheck(t)
	LogTestResult(t, "API is healthy and responding")
}

// TestAPI_BookingFlow walks the full seat booking flow: two users race
// for one seat, the loser is skipped, the admin resets and the seat
// frees up again.
func TestAPI_BookingFlow(t *testing.T) {
	first := NewUserClient(t)
	second := NewUserClient(t)
	admin := NewAdminClient(t)

	movie := FindNowShowing(t, first)
	seat := FreeSeat(t, first, movie.ID)
	LogTestStep(t, "Booking seat %s for movie %d", seat, movie.ID)

	// 1. First user takes the seat
	resp := first.BookSeats(t, movie.ID, []string{seat})
	if len(resp.Booked) != 1 || resp.Booked[0] != seat {
		t.Fatalf("Expected seat %s booked, got %+v", seat, resp)
	}
	LogTestResult(t, "Seat %s booked", seat)

	// 2. Second user asking for the same seat is skipped, not rejected
	resp = second.BookSeats(t, movie.ID, []string{seat})
	if len(resp.Booked) != 0 {
		t.Fatalf("Expected no seats booked for second user, got %+v", resp.Booked)
	}
	if len(resp.Skipped) != 1 || resp.Skipped[0] != seat {
		t.Fatalf("Expected seat %s skipped for second user, got %+v", seat, resp)
	}
	LogTestResult(t, "Second booking of %s skipped silently", seat)

	// 3. Rebooking by the owner is also a no-op
	resp = first.BookSeats(t, movie.ID, []string{seat})
	if len(resp.Skipped) != 1 {
		t.Fatalf("Expected owner rebooking to be skipped, got %+v", resp)
	}

	// 4. The seat shows as held in the movie detail
	detail := first.GetMovie(t, movie.ID)
	found := false
	for _, s := range detail.BookedSeats {
		if s == seat {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("Seat %s not reported as booked, seats: %+v", seat, detail.BookedSeats)
	}

	// 5. Admin resets, seat frees up
	reset := admin.ResetSeats(t, movie.ID)
	if reset.ResetCount < 1 {
		t.Fatalf("Expected at least one seat reset, got %d", reset.ResetCount)
	}
	LogTestResult(t, "Reset %d seats", reset.ResetCount)

	resp = second.BookSeats(t, movie.ID, []string{seat})
	if len(resp.Booked) != 1 {
		t.Fatalf("Expected seat %s bookable after reset, got %+v", seat, resp)
	}
	LogTestResult(t, "Seat %s rebooked after reset", seat)

	// Cleanup for re-runs
	admin.ResetSeats(t, movie.ID)
}

// TestAPI_Ratings rates a movie twice and checks the upsert.
func TestAPI_Ratings(t *testing.T) {
	client := NewUserClient(t)
	movie := FindNowShowing(t, client)

	LogTestStep(t, "Rating movie %d", movie.ID)

	summary := client.SubmitRating(t, movie.ID, 4)
	if summary.OwnScore != 4 {
		t.Fatalf("Expected own score 4, got %d", summary.OwnScore)
	}
	firstCount := summary.Count

	// Resubmitting replaces, never adds
	summary = client.SubmitRating(t, movie.ID, 2)
	if summary.OwnScore != 2 {
		t.Fatalf("Expected own score 2 after resubmit, got %d", summary.OwnScore)
	}
	if summary.Count != firstCount {
		t.Fatalf("Expected rating count to stay %d, got %d", firstCount, summary.Count)
	}
	if summary.Average < 1.0 || summary.Average > 5.0 {
		t.Fatalf("Average %f out of bounds", summary.Average)
	}

	LogTestResult(t, "Rating upsert verified, average %.1f over %d ratings", summary.Average, summary.Count)
}

// TestAPI_AccessControl verifies the admin gate from a regular account.
func TestAPI_AccessControl(t *testing.T) {
	client := NewUserClient(t)
	movie := FindNowShowing(t, client)

	LogTestStep(t, "Verifying admin endpoints reject a regular user")

	resp := client.makeRequest(t, "POST", "/api/admin/movies/1/reset-seats", nil)
	resp.Body.Close()
	if resp.StatusCode != 403 {
		t.Fatalf("Expected 403 for reset-seats as user, got %d", resp.StatusCode)
	}

	resp = client.makeRequest(t, "GET", "/api/admin/panel", nil)
	resp.Body.Close()
	if resp.StatusCode != 403 {
		t.Fatalf("Expected 403 for admin panel as user, got %d", resp.StatusCode)
	}

	// And that booking still works for the same account
	seat := FreeSeat(t, client, movie.ID)
	client.BookSeats(t, movie.ID, []string{seat})

	LogTestResult(t, "Admin endpoints gated correctly")
}
