package schedule

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/studybuddy/platform/internal/storage"
	"github.com/studybuddy/platform/internal/studyplan"
)

// Planner produces an optional AI study plan; a nil result attaches nothing.
type Planner interface {
	Generate(ctx context.Context, examType string, subjects []string, weeks, hoursPerDay int) []studyplan.WeekPlan
}

// Store owns the ordered schedule collection and its persistence file. The
// file is read once at construction and rewritten in full on every create
// or delete. No concurrent writers are assumed.
type Store struct {
	path      string
	schedules []StudySchedule
	planner   Planner
	logger    zerolog.Logger
	now       func() time.Time
}

func NewStore(path string, planner Planner, logger zerolog.Logger) (*Store, error) {
	s := &Store{
		path:    path,
		planner: planner,
		logger:  logger.With().Str("component", "schedule_store").Logger(),
		now:     time.Now,
	}
	if _, err := storage.LoadJSON(path, &s.schedules); err != nil {
		return nil, err
	}
	return s, nil
}

// CreateParams carries the caller's schedule inputs. Zero-valued Weeks and
// HoursPerDay take the historical defaults.
type CreateParams struct {
	ExamType    string
	CustomName  string
	Subjects    []string
	Weeks       int
	HoursPerDay int
	StartDate   string
}

// Create resolves preset name/subjects, assigns the next id, optionally
// attaches an AI plan, appends and persists.
//
// Ids are assigned as len(collection)+1 for compatibility with files
// written by earlier deployments; after a delete the next create can reuse
// an id.
func (s *Store) Create(ctx context.Context, p CreateParams) (StudySchedule, error) {
	if p.Weeks <= 0 {
		p.Weeks = 12
	}
	if p.HoursPerDay <= 0 {
		p.HoursPerDay = 4
	}

	name := p.CustomName
	subjects := p.Subjects
	if preset, ok := Preset(p.ExamType); ok && p.ExamType != CustomExamType {
		name = preset.Name
		if len(subjects) == 0 {
			subjects = preset.Subjects
		}
	} else if name == "" {
		name = DefaultScheduleName
	}

	today := s.now().Format(DateLayout)
	startDate := p.StartDate
	if startDate == "" {
		startDate = today
	}

	sched := StudySchedule{
		ID:          len(s.schedules) + 1,
		Name:        name,
		ExamType:    p.ExamType,
		Subjects:    subjects,
		Weeks:       p.Weeks,
		HoursPerDay: p.HoursPerDay,
		CreatedDate: today,
		StartDate:   startDate,
		Status:      StatusActive,
	}

	if s.planner != nil {
		if plan := s.planner.Generate(ctx, p.ExamType, subjects, p.Weeks, p.HoursPerDay); plan != nil {
			sched.AIPlan = plan
		}
	}

	s.schedules = append(s.schedules, sched)
	if err := s.save(); err != nil {
		return StudySchedule{}, err
	}

	s.logger.Info().Int("id", sched.ID).Str("exam_type", sched.ExamType).Msg("schedule created")
	return sched, nil
}

// Get returns the first schedule matching id, or false when absent.
func (s *Store) Get(id int) (StudySchedule, bool) {
	for _, sched := range s.schedules {
		if sched.ID == id {
			return sched, true
		}
	}
	return StudySchedule{}, false
}

// List returns all schedules in creation order.
func (s *Store) List() []StudySchedule {
	out := make([]StudySchedule, len(s.schedules))
	copy(out, s.schedules)
	return out
}

// Delete removes the schedule with the given id and persists. Deleting an
// unknown id is a no-op, not an error.
func (s *Store) Delete(id int) error {
	kept := s.schedules[:0]
	for _, sched := range s.schedules {
		if sched.ID != id {
			kept = append(kept, sched)
		}
	}
	s.schedules = kept
	return s.save()
}

// ProgressAt computes the derived progress of a schedule at the given
// evaluation time. The current week is clamped to [1, Weeks]; an unparsable
// start date counts as starting now.
func (s *Store) ProgressAt(sched StudySchedule, now time.Time) Progress {
	// Legacy or hand-edited files can carry weeks <= 0; dividing by it
	// would poison the JSON encoding with NaN.
	if sched.Weeks <= 0 {
		return Progress{CurrentWeek: 1, Percent: 0}
	}

	start, err := time.Parse(DateLayout, sched.StartDate)
	if err != nil {
		s.logger.Warn().Err(err).Int("id", sched.ID).Msg("bad start date")
		start = now
	}

	daysElapsed := int(now.Sub(start).Hours() / 24)
	currentWeek := daysElapsed/7 + 1
	if currentWeek < 1 {
		currentWeek = 1
	}
	if currentWeek > sched.Weeks {
		currentWeek = sched.Weeks
	}

	percent := float64(currentWeek) / float64(sched.Weeks) * 100
	if percent > 100 {
		percent = 100
	}

	return Progress{
		CurrentWeek: currentWeek,
		Percent:     math.Round(percent*10) / 10,
	}
}

// Now returns the store's clock, injectable for tests.
func (s *Store) Now() time.Time {
	return s.now()
}

func (s *Store) save() error {
	return storage.SaveJSON(s.path, s.schedules)
}
