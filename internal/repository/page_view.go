package repository

import (
	"time"

	"esports-club-backend/internal/database/models"

	"gorm.io/gorm"
)

// PageViewRepository handles database operations for page view records
type PageViewRepository struct {
	db *gorm.DB
}

// NewPageViewRepository creates a new page view repository
func NewPageViewRepository(db *gorm.DB) *PageViewRepository {
	return &PageViewRepository{db: db}
}

// Create records a single page view
func (r *PageViewRepository) Create(view *models.PageView) error {
	return r.db.Create(view).Error
}

// CountSince counts all page views recorded at or after the given time
func (r *PageViewRepository) CountSince(since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.PageView{}).Where("created_at >= ?", since).Count(&count).Error
	return count, err
}

// CountUniqueVisitorsSince counts distinct visitor IDs seen at or after the
// given time
func (r *PageViewRepository) CountUniqueVisitorsSince(since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.PageView{}).
		Where("created_at >= ?", since).
		Distinct("visitor_id").
		Count(&count).Error
	return count, err
}

// DailyCounts aggregates views and unique visitors per day since the given
// time, oldest day first
func (r *PageViewRepository) DailyCounts(since time.Time) ([]DailyPageViews, error) {
	var rows []DailyPageViews
	err := r.db.Model(&models.PageView{}).
		Select("date_trunc('day', created_at) AS day, COUNT(*) AS views, COUNT(DISTINCT visitor_id) AS unique_visitors").
		Where("created_at >= ?", since).
		Group("day").
		Order("day ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// TopPaths returns the most viewed paths since the given time, most viewed
// first
func (r *PageViewRepository) TopPaths(since time.Time, limit int) ([]PathCount, error) {
	var rows []PathCount
	err := r.db.Model(&models.PageView{}).
		Select("path, COUNT(*) AS views").
		Where("created_at >= ?", since).
		Group("path").
		Order("views DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
