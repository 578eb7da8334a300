package quiz

// Difficulty constants for readability.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// OptionCount is the fixed number of choices per question.
const OptionCount = 4

// MCQ is a single multiple-choice question. Invariants: Options holds
// exactly four entries and Answer equals one of them; generated items that
// violate either are discarded before they reach a caller.
type MCQ struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
	Source   string   `json:"source"`
}

// valid reports whether a parsed item satisfies the MCQ invariants.
func (q MCQ) valid() bool {
	if q.Question == "" || len(q.Options) != OptionCount {
		return false
	}
	for _, opt := range q.Options {
		if opt == q.Answer {
			return true
		}
	}
	return false
}
