package schedule

// ExamPreset is a built-in template describing a known exam's default
// subjects and duration. Presets are static and read-only.
type ExamPreset struct {
	Code          string   `json:"code"`
	Name          string   `json:"name"`
	Subjects      []string `json:"subjects"`
	DurationWeeks int      `json:"duration_weeks"`
	Description   string   `json:"description"`
}

// CustomExamType is the preset code that always takes the caller's own name
// and subjects.
const CustomExamType = "Custom"

// DefaultScheduleName is used when a custom schedule is created without one.
const DefaultScheduleName = "Custom Study Plan"

var presetOrder = []string{"GATE", "JEE", "NEET", "CAT", "UPSC", CustomExamType}

var presets = map[string]ExamPreset{
	"GATE": {
		Code:          "GATE",
		Name:          "GATE (Graduate Aptitude Test in Engineering)",
		Subjects:      []string{"Engineering Mathematics", "General Aptitude", "Technical Subject", "Data Structures", "Algorithms"},
		DurationWeeks: 24,
		Description:   "Comprehensive preparation for GATE exam",
	},
	"JEE": {
		Code:          "JEE",
		Name:          "JEE (Joint Entrance Examination)",
		Subjects:      []string{"Physics", "Chemistry", "Mathematics"},
		DurationWeeks: 52,
		Description:   "Complete JEE Main and Advanced preparation",
	},
	"NEET": {
		Code:          "NEET",
		Name:          "NEET (National Eligibility cum Entrance Test)",
		Subjects:      []string{"Physics", "Chemistry", "Biology (Botany)", "Biology (Zoology)"},
		DurationWeeks: 48,
		Description:   "Medical entrance exam preparation",
	},
	"CAT": {
		Code:          "CAT",
		Name:          "CAT (Common Admission Test)",
		Subjects:      []string{"Quantitative Ability", "Verbal Ability", "Data Interpretation", "Logical Reasoning"},
		DurationWeeks: 32,
		Description:   "MBA entrance exam preparation",
	},
	"UPSC": {
		Code:          "UPSC",
		Name:          "UPSC Civil Services",
		Subjects:      []string{"History", "Geography", "Polity", "Economy", "Science & Technology", "Current Affairs"},
		DurationWeeks: 52,
		Description:   "Civil Services examination preparation",
	},
	CustomExamType: {
		Code:          CustomExamType,
		Name:          "Custom Exam Preparation",
		Subjects:      []string{},
		DurationWeeks: 12,
		Description:   "Create your own study schedule",
	},
}

// Preset resolves an exam type code.
func Preset(code string) (ExamPreset, bool) {
	p, ok := presets[code]
	return p, ok
}

// Presets returns all presets in display order.
func Presets() []ExamPreset {
	out := make([]ExamPreset, 0, len(presetOrder))
	for _, code := range presetOrder {
		out = append(out, presets[code])
	}
	return out
}
