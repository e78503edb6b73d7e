package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MZidanFI/Bioskop-Project/internal/models"
)

func sampleRows() []models.SalesRow {
	date := time.Date(2025, 8, 20, 14, 30, 5, 0, time.UTC)
	return []models.SalesRow{
		{BookingID: 1, BookingDate: date, Username: "budi", MovieTitle: "Avengers: Secret Wars", SeatNumber: "A1", Price: 50000, Status: models.BookingStatusBooked},
		{BookingID: 2, BookingDate: date.Add(45 * time.Minute), Username: "sari", MovieTitle: "Laskar Pelangi", SeatNumber: "B2", Price: 40000, Status: models.BookingStatusHistory},
		{BookingID: 3, BookingDate: date.Add(2 * time.Hour), Username: "budi", MovieTitle: "Avengers: Secret Wars", SeatNumber: "A2", Price: 50000, Status: models.BookingStatusBooked},
	}
}

func TestWriteCSVLayout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleRows()))

	content := buf.String()
	require.True(t, strings.HasPrefix(content, "\ufeff"), "report must start with a UTF-8 BOM")

	lines := strings.Split(strings.TrimPrefix(content, "\ufeff"), "\r\n")
	expected := []string{
		"ID Transaksi;Tanggal;Jam;Username;Film;Kursi;Harga;Status",
		"1;2025-08-20;14:30:05;budi;Avengers: Secret Wars;A1;50000;booked",
		"2;2025-08-20;15:15:05;sari;Laskar Pelangi;B2;40000;history",
		"3;2025-08-20;16:30:05;budi;Avengers: Secret Wars;A2;50000;booked",
		"",
		"",
		";;;;--- RINCIAN PER FILM ---;;;",
		";;;;Avengers: Secret Wars;Total:;100000;",
		";;;;Laskar Pelangi;Total:;40000;",
		"",
		";;;;GRAND TOTAL HARI INI;;140000;",
		"",
	}
	assert.Equal(t, expected, lines)
}

func TestWriteCSVNoBookings(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	lines := strings.Split(strings.TrimPrefix(buf.String(), "\ufeff"), "\r\n")
	expected := []string{
		"ID Transaksi;Tanggal;Jam;Username;Film;Kursi;Harga;Status",
		"",
		"",
		";;;;--- RINCIAN PER FILM ---;;;",
		"",
		";;;;GRAND TOTAL HARI INI;;0;",
		"",
	}
	assert.Equal(t, expected, lines)
}

func TestSummarizeFirstSeenOrder(t *testing.T) {
	rows := sampleRows()
	summary := Summarize(rows)

	require.Len(t, summary.MovieTotals, 2)
	assert.Equal(t, "Avengers: Secret Wars", summary.MovieTotals[0].Title)
	assert.Equal(t, int64(100000), summary.MovieTotals[0].Amount)
	assert.Equal(t, "Laskar Pelangi", summary.MovieTotals[1].Title)
	assert.Equal(t, int64(40000), summary.MovieTotals[1].Amount)
	assert.Equal(t, int64(140000), summary.GrandTotal)
}

func TestSummarizeGrandTotalCountsHistoryRows(t *testing.T) {
	summary := Summarize(sampleRows())

	// A reset seat is still a sale that day
	var sum int64
	for _, row := range sampleRows() {
		sum += row.Price
	}
	assert.Equal(t, sum, summary.GrandTotal)
}

func TestFilename(t *testing.T) {
	date := time.Date(2025, 8, 20, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "Laporan_2025-08-20.csv", Filename(date))
}
