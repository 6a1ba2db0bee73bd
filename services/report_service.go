package services

import (
	"bytes"
	"context"
	"html/template"
	"strings"
	"time"

	"github.com/Abdul-Mateen-1/Railway-Management-System/models"
	"github.com/Abdul-Mateen-1/Railway-Management-System/repository"
	"github.com/Abdul-Mateen-1/Railway-Management-System/utils"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

type ReportService struct {
	repo repository.Repository
}

func NewReportService(repo repository.Repository) *ReportService {
	return &ReportService{repo: repo}
}

// RevenueReport sums the totals of confirmed bookings.
type RevenueReport struct {
	TotalRevenue float64          `json:"total_revenue"`
	BookingCount int              `json:"booking_count"`
	Bookings     []models.Booking `json:"bookings"`
}

type TrainPerformanceRow struct {
	TrainNumber string `json:"train_number"`
	TrainName   string `json:"train_name"`
	Bookings    int    `json:"bookings"`
}

type UserActivityRow struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Bookings int    `json:"bookings"`
}

func (s *ReportService) Revenue() (*RevenueReport, error) {
	bookings, err := s.repo.GetBookings()
	if err != nil {
		return nil, err
	}

	report := &RevenueReport{Bookings: []models.Booking{}}
	for _, booking := range bookings {
		if !strings.EqualFold(booking.Status, models.BookingStatusConfirmed) {
			continue
		}
		report.Bookings = append(report.Bookings, booking)
		report.TotalRevenue += booking.TotalAmount
	}
	report.BookingCount = len(report.Bookings)
	return report, nil
}

// TrainPerformance counts bookings per train, including trains with none.
func (s *ReportService) TrainPerformance() ([]TrainPerformanceRow, error) {
	trains, err := s.repo.GetTrains()
	if err != nil {
		return nil, err
	}
	bookings, err := s.repo.GetBookings()
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int)
	for _, booking := range bookings {
		counts[booking.TrainID]++
	}

	rows := make([]TrainPerformanceRow, 0, len(trains))
	for _, train := range trains {
		rows = append(rows, TrainPerformanceRow{
			TrainNumber: train.TrainNumber,
			TrainName:   train.TrainName,
			Bookings:    counts[train.ID],
		})
	}
	return rows, nil
}

// UserActivity counts bookings per user, including users with none.
func (s *ReportService) UserActivity() ([]UserActivityRow, error) {
	users, err := s.repo.GetUsers()
	if err != nil {
		return nil, err
	}
	bookings, err := s.repo.GetBookings()
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int)
	for _, booking := range bookings {
		counts[booking.UserID]++
	}

	rows := make([]UserActivityRow, 0, len(users))
	for _, user := range users {
		rows = append(rows, UserActivityRow{
			Name:     user.Name,
			Email:    user.Email,
			Bookings: counts[user.ID],
		})
	}
	return rows, nil
}

// RevenuePDF renders the revenue report to a printable PDF via headless
// Chrome. Requires a Chrome binary on the host.
func (s *ReportService) RevenuePDF() ([]byte, error) {
	report, err := s.Revenue()
	if err != nil {
		return nil, err
	}

	html, err := renderRevenueHTML(report)
	if err != nil {
		return nil, err
	}
	return printToPDF(html)
}

type revenueRow struct {
	PNR        string
	TrainName  string
	TravelDate string
	Amount     string
}

func renderRevenueHTML(report *RevenueReport) (string, error) {
	tmpl, err := template.ParseFiles("templates/revenue_report.html")
	if err != nil {
		return "", err
	}

	rows := make([]revenueRow, 0, len(report.Bookings))
	for _, booking := range report.Bookings {
		rows = append(rows, revenueRow{
			PNR:        booking.PNR,
			TrainName:  booking.TrainName,
			TravelDate: booking.TravelDate.Format("02 Jan 2006"),
			Amount:     utils.FormatPKR(booking.TotalAmount),
		})
	}

	data := struct {
		GeneratedAt  string
		TotalRevenue string
		BookingCount int
		Rows         []revenueRow
	}{
		GeneratedAt:  time.Now().Format("January 2, 2006 3:04 PM"),
		TotalRevenue: utils.FormatPKR(report.TotalRevenue),
		BookingCount: report.BookingCount,
		Rows:         rows,
	}

	var rendered bytes.Buffer
	if err := tmpl.Execute(&rendered, data); err != nil {
		return "", err
	}
	return rendered.String(), nil
}

func printToPDF(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}
