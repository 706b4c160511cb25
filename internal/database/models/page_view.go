package models

// PageView records a single visit to a public page. Rows are aggregation
// input for the analytics summary and are never updated.
type PageView struct {
	BaseModel
	Path      string `json:"path" gorm:"not null;size:500;index"`
	Referrer  string `json:"referrer,omitempty" gorm:"size:500"`
	UserAgent string `json:"user_agent,omitempty" gorm:"size:500"`
	VisitorID string `json:"visitor_id" gorm:"not null;size:100;index"`
}

// TableName returns the table name for PageView
func (PageView) TableName() string {
	return "page_views"
}
