// Package report renders the daily sales report in the CSV layout the
// admin panel exports: UTF-8 with BOM, semicolon-delimited, CRLF rows.
package report

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/MZidanFI/Bioskop-Project/internal/models"
)

const (
	perMovieMarker = "--- RINCIAN PER FILM ---"
	grandTotalRow  = "GRAND TOTAL HARI INI"
)

var header = []string{"ID Transaksi", "Tanggal", "Jam", "Username", "Film", "Kursi", "Harga", "Status"}

// MovieTotal is one per-movie subtotal line of the report.
type MovieTotal struct {
	Title  string
	Amount int64
}

// Summary holds the aggregated part of a report. GrandTotal matches
// DailyRevenue for the same date: every row counts, booked and history.
type Summary struct {
	MovieTotals []MovieTotal
	GrandTotal  int64
}

// Summarize accumulates per-movie subtotals in first-seen order plus the
// grand total. It is a pure function of the day's booking rows.
func Summarize(rows []models.SalesRow) Summary {
	var summary Summary
	index := make(map[string]int)

	for _, row := range rows {
		if row.Status != models.BookingStatusBooked && row.Status != models.BookingStatusHistory {
			continue
		}
		summary.GrandTotal += row.Price
		if i, ok := index[row.MovieTitle]; ok {
			summary.MovieTotals[i].Amount += row.Price
		} else {
			index[row.MovieTitle] = len(summary.MovieTotals)
			summary.MovieTotals = append(summary.MovieTotals, MovieTotal{Title: row.MovieTitle, Amount: row.Price})
		}
	}

	return summary
}

// WriteCSV renders the rows as the downloadable report. Layout: header,
// one line per booking, two blank lines, the per-movie marker, one
// subtotal line per movie, a blank line, then the grand total.
func WriteCSV(w io.Writer, rows []models.SalesRow) error {
	if _, err := io.WriteString(w, "\ufeff"); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	cw.Comma = ';'
	cw.UseCRLF = true

	if err := cw.Write(header); err != nil {
		return err
	}

	for _, row := range rows {
		record := []string{
			strconv.FormatInt(row.BookingID, 10),
			row.BookingDate.Format("2006-01-02"),
			row.BookingDate.Format("15:04:05"),
			row.Username,
			row.MovieTitle,
			row.SeatNumber,
			strconv.FormatInt(row.Price, 10),
			row.Status,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	summary := Summarize(rows)

	blank := []string{}
	if err := cw.Write(blank); err != nil {
		return err
	}
	if err := cw.Write(blank); err != nil {
		return err
	}
	if err := cw.Write([]string{"", "", "", "", perMovieMarker, "", "", ""}); err != nil {
		return err
	}
	for _, total := range summary.MovieTotals {
		record := []string{"", "", "", "", total.Title, "Total:", strconv.FormatInt(total.Amount, 10), ""}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	if err := cw.Write(blank); err != nil {
		return err
	}
	if err := cw.Write([]string{"", "", "", "", grandTotalRow, "", strconv.FormatInt(summary.GrandTotal, 10), ""}); err != nil {
		return err
	}

	cw.Flush()
	return cw.Error()
}

// Filename returns the download name for a date, e.g. Laporan_2024-05-01.csv.
func Filename(date time.Time) string {
	return "Laporan_" + date.Format("2006-01-02") + ".csv"
}
