package service

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/voyago/travel-admin-api/internal/fixture"
	appErrors "github.com/voyago/travel-admin-api/pkg/errors"
	"github.com/voyago/travel-admin-api/pkg/export"
)

// Statistics kinds addressable via /statistics/{kind}.
const (
	StatsKindChats     = "chats"
	StatsKindEmployees = "employees"
	StatsKindImages    = "images"
	StatsKindKpi       = "kpi"
	StatsKindReports   = "reports"
	StatsKindReviews   = "reviews"
)

// ExportResult is a rendered statistics file ready to send.
type ExportResult struct {
	Filename    string
	ContentType string
	Body        []byte
}

// StatisticsService generates the statistics cards and their exports.
type StatisticsService struct {
	logger *zap.Logger
}

func NewStatisticsService(logger *zap.Logger) *StatisticsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatisticsService{logger: logger}
}

// Get returns the card for one kind, or NOT_FOUND for an unknown kind.
func (s *StatisticsService) Get(kind string, seed int64) (interface{}, error) {
	g := fixture.New(seed)
	switch kind {
	case StatsKindChats:
		return g.ChatStats(), nil
	case StatsKindEmployees:
		return g.EmployeesStats(), nil
	case StatsKindImages:
		return g.ImagesStats(), nil
	case StatsKindKpi:
		return g.KpiMetrics(), nil
	case StatsKindReports:
		return g.ReportsStats(), nil
	case StatsKindReviews:
		return g.ReviewsStats(), nil
	default:
		return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("unknown statistics kind %q", kind))
	}
}

// Export renders every statistics card as a CSV or PDF table.
func (s *StatisticsService) Export(format string, seed int64) (*ExportResult, error) {
	report := fixture.New(seed).StatisticsReport()

	table := export.Report{
		Title:   "Platform Statistics",
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total conversations", strconv.Itoa(report.Chats.TotalConversations)},
			{"Open conversations", strconv.Itoa(report.Chats.OpenConversations)},
			{"Satisfaction score", fmt.Sprintf("%.2f", report.Chats.SatisfactionScore)},
			{"Total employees", strconv.Itoa(report.Employees.TotalEmployees)},
			{"Online now", strconv.Itoa(report.Employees.OnlineNow)},
			{"Total images", strconv.Itoa(report.Images.TotalImages)},
			{"Pending moderation", strconv.Itoa(report.Images.PendingModeration)},
			{"Revenue (cents)", strconv.FormatInt(report.Kpi.RevenueCents, 10)},
			{"Bookings", strconv.Itoa(report.Kpi.BookingsCount)},
			{"Active users", strconv.Itoa(report.Kpi.ActiveUsers)},
			{"Reports generated", strconv.Itoa(report.Reports.GeneratedThisMonth)},
			{"Total reviews", strconv.Itoa(report.Reviews.TotalReviews)},
			{"Average rating", fmt.Sprintf("%.2f", report.Reviews.AverageRating)},
		},
	}

	switch format {
	case "csv", "":
		body, err := export.CSV(table)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv export")
		}
		return &ExportResult{Filename: "statistics.csv", ContentType: "text/csv", Body: body}, nil
	case "pdf":
		body, err := export.PDF(table)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf export")
		}
		return &ExportResult{Filename: "statistics.pdf", ContentType: "application/pdf", Body: body}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
}
