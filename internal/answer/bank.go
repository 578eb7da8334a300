package answer

// Bank is the static table of pre-written questions and answers. It is
// defined at startup and read-only afterward.
type Bank struct {
	subjects []string
	entries  map[string]map[string]string
}

// DefaultBank returns the built-in subject catalog with its canned Q&A.
func DefaultBank() *Bank {
	return &Bank{
		subjects: []string{"Math", "Science", "English", "Electronics"},
		entries: map[string]map[string]string{
			"Math": {
				"What is 2+2?":         "2+2 = 4",
				"What is 10-3?":        "10-3 = 7",
				"What is correlation?": "Correlation measures the relationship between two variables.",
			},
			"Science": {
				"What is H2O?":                        "H2O is water",
				"Which planet is nearest to the sun?": "Mercury",
				"What is Ohm's law?":                  "Ohm's law states that V = IR, where V is voltage, I is current, and R is resistance.",
			},
			"English": {
				"Synonym of happy?": "Joyful",
				"Antonym of fast?":  "Slow",
			},
			"Electronics": {
				"What does LED stand for?":              "Light Emitting Diode",
				"What is the unit of electric current?": "Ampere",
			},
		},
	}
}

// Subjects returns the subject names in catalog order.
func (b *Bank) Subjects() []string {
	out := make([]string, len(b.subjects))
	copy(out, b.subjects)
	return out
}

// Questions returns the canned question/answer pairs for a subject. Unknown
// subjects yield an empty map.
func (b *Bank) Questions(subject string) map[string]string {
	out := make(map[string]string, len(b.entries[subject]))
	for q, a := range b.entries[subject] {
		out[q] = a
	}
	return out
}

// Lookup resolves a canned answer for an exact (subject, question) pair.
func (b *Bank) Lookup(subject, question string) (string, bool) {
	ans, ok := b.entries[subject][question]
	return ans, ok
}
