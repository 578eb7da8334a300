package schedule

import (
	"github.com/studybuddy/platform/internal/studyplan"
)

// DateLayout is the on-disk date format, kept compatible with files written
// by earlier deployments.
const DateLayout = "2006-01-02"

// StatusActive is the initial status of every schedule.
const StatusActive = "active"

// StudySchedule is one persisted study-schedule record. Records are
// append/delete only; there is no in-place edit. CurrentWeek and progress
// are derived on read and never stored (see Progress).
type StudySchedule struct {
	ID          int                  `json:"id"`
	Name        string               `json:"name"`
	ExamType    string               `json:"exam_type"`
	Subjects    []string             `json:"subjects"`
	Weeks       int                  `json:"weeks"`
	HoursPerDay int                  `json:"hours_per_day"`
	CreatedDate string               `json:"created_date"`
	StartDate   string               `json:"start_date"`
	Status      string               `json:"status"`
	AIPlan      []studyplan.WeekPlan `json:"ai_plan,omitempty"`
}

// Progress is the transient view of how far along a schedule is at some
// evaluation time.
type Progress struct {
	CurrentWeek int     `json:"current_week"`
	Percent     float64 `json:"progress"`
}
