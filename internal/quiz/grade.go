package quiz

// Grade scores submitted selections against a quiz payload. Selections are
// keyed by question ID; a missing or mismatched selection scores zero for
// that question. The questions slice is the payload handed out by Generate
// and re-submitted by the client, so total always equals its length.
func Grade(questions []MCQ, selections map[string]string) (score, total int) {
	total = len(questions)
	for _, q := range questions {
		if selected, ok := selections[q.ID]; ok && selected == q.Answer {
			score++
		}
	}
	return score, total
}
