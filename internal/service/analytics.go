package service

import (
	"fmt"
	"strings"
	"time"

	"esports-club-backend/internal/database/models"
	"esports-club-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	defaultAnalyticsDays = 30
	maxAnalyticsDays     = 365
	topPathsLimit        = 10
)

// AnalyticsService records page views and aggregates traffic summaries
type AnalyticsService struct {
	repo      repository.PageViewRepositoryInterface
	validator *validator.Validate
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(repo repository.PageViewRepositoryInterface, validator *validator.Validate) *AnalyticsService {
	return &AnalyticsService{
		repo:      repo,
		validator: validator,
	}
}

// RecordPageViewRequest represents a single page view report
type RecordPageViewRequest struct {
	Path      string `json:"path" validate:"required,max=500"`
	Referrer  string `json:"referrer" validate:"max=500"`
	UserAgent string `json:"user_agent" validate:"max=500"`
	VisitorID string `json:"visitor_id" validate:"max=100"`
}

// RecordPageViewResponse reports whether the view was stored or skipped
type RecordPageViewResponse struct {
	Recorded bool   `json:"recorded"`
	Skipped  bool   `json:"skipped,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

// DailyTraffic is one day of the analytics series
type DailyTraffic struct {
	Day            string `json:"day"`
	Views          int64  `json:"views"`
	UniqueVisitors int64  `json:"unique_visitors"`
}

// AnalyticsSummaryResponse is the aggregated traffic report
type AnalyticsSummaryResponse struct {
	Days            int                    `json:"days"`
	TotalViews      int64                  `json:"total_views"`
	UniqueVisitors  int64                  `json:"unique_visitors"`
	AvgViewsPerDay  float64                `json:"avg_views_per_day"`
	Daily           []DailyTraffic         `json:"daily"`
	TopPaths        []repository.PathCount `json:"top_paths"`
	GeneratedAtUnix int64                  `json:"generated_at"`
}

// RecordPageView stores a page view unless the path belongs to the admin or
// API surface, which are never counted. Skipped views still return success.
func (s *AnalyticsService) RecordPageView(req *RecordPageViewRequest) (*RecordPageViewResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if strings.HasPrefix(req.Path, "/admin") || strings.HasPrefix(req.Path, "/api") {
		return &RecordPageViewResponse{Recorded: false, Skipped: true, Reason: "internal path"}, nil
	}

	visitorID := req.VisitorID
	if visitorID == "" {
		visitorID = uuid.NewString()
	}

	view := &models.PageView{
		Path:      req.Path,
		Referrer:  req.Referrer,
		UserAgent: req.UserAgent,
		VisitorID: visitorID,
	}
	if err := s.repo.Create(view); err != nil {
		return nil, fmt.Errorf("failed to record page view: %w", err)
	}

	return &RecordPageViewResponse{Recorded: true}, nil
}

// Summary aggregates traffic over the trailing N days (default 30)
func (s *AnalyticsService) Summary(days int) (*AnalyticsSummaryResponse, error) {
	if days < 1 {
		days = defaultAnalyticsDays
	}
	if days > maxAnalyticsDays {
		days = maxAnalyticsDays
	}
	since := time.Now().AddDate(0, 0, -days)

	totalViews, err := s.repo.CountSince(since)
	if err != nil {
		return nil, fmt.Errorf("failed to count views: %w", err)
	}
	uniqueVisitors, err := s.repo.CountUniqueVisitorsSince(since)
	if err != nil {
		return nil, fmt.Errorf("failed to count unique visitors: %w", err)
	}
	dailyRows, err := s.repo.DailyCounts(since)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate daily counts: %w", err)
	}
	topPaths, err := s.repo.TopPaths(since, topPathsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate top paths: %w", err)
	}

	daily := make([]DailyTraffic, len(dailyRows))
	for i, row := range dailyRows {
		daily[i] = DailyTraffic{
			Day:            row.Day.Format("2006-01-02"),
			Views:          row.Views,
			UniqueVisitors: row.UniqueVisitors,
		}
	}

	return &AnalyticsSummaryResponse{
		Days:            days,
		TotalViews:      totalViews,
		UniqueVisitors:  uniqueVisitors,
		AvgViewsPerDay:  float64(totalViews) / float64(days),
		Daily:           daily,
		TopPaths:        topPaths,
		GeneratedAtUnix: time.Now().Unix(),
	}, nil
}
