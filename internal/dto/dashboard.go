package dto

import (
	"time"

	"github.com/Axton-Industries/Nextgen-work/internal/layout"
	"github.com/Axton-Industries/Nextgen-work/internal/models"
	"github.com/Axton-Industries/Nextgen-work/internal/synth"
	"github.com/Axton-Industries/Nextgen-work/internal/timefilter"
)

// OverviewResponse is the class-wide dashboard payload.
type OverviewResponse struct {
	Filter      timefilter.FilterState      `json:"filter"`
	Weeks       []timefilter.WeekDescriptor `json:"weeks"`
	Summary     []models.StatCard           `json:"summary"`
	Writing     []models.WritingOverview    `json:"writing"`
	Engagement  []models.EngagementMetric   `json:"engagement"`
	Improvement []models.ImprovementStat    `json:"improvement"`
	ErrorWords  []models.ErrorAnalysis      `json:"errorWords"`
	Bubbles     []layout.Bubble             `json:"bubbles"`
	GeneratedAt time.Time                   `json:"generatedAt"`
}

// StudentDashboardResponse is the single-student dashboard payload.
type StudentDashboardResponse struct {
	Student     models.Student              `json:"student"`
	Filter      timefilter.FilterState      `json:"filter"`
	Seed        int                         `json:"seed"`
	Weeks       []timefilter.WeekDescriptor `json:"weeks"`
	Stats       []models.StatCard           `json:"stats"`
	Summary     synth.Summary               `json:"summary"`
	Charts      synth.Charts                `json:"charts"`
	ErrorWords  []models.ErrorAnalysis      `json:"errorWords"`
	GeneratedAt time.Time                   `json:"generatedAt"`
}

// StudentListQuery captures GET /students parameters.
type StudentListQuery struct {
	Active   *bool `form:"active"`
	Page     int   `form:"page" binding:"omitempty,min=1"`
	PageSize int   `form:"pageSize" binding:"omitempty,min=1,max=100"`
}

// StudentSearchQuery captures GET /students/search parameters.
type StudentSearchQuery struct {
	Query string `form:"q"`
}
