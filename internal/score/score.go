package score

import "localjobs-engine/internal/domain"

// Unanswered is the selectedIndex sentinel for a question with no submission.
const Unanswered = -1

// Attempt is a graded submission before it is wrapped into a TestResult.
type Attempt struct {
	Score      int
	MaxScore   int
	Percentage float64
	Answers    []domain.Answer
}

// Grade scores selected (questionId -> option index) against the test. Pure:
// no storage, no clock. The Answers slice mirrors question order. A question
// absent from selected, or whose selection falls outside the option range, is
// normalized to selectedIndex -1 and scores as wrong, but still contributes
// its marks to MaxScore. Persisted answers therefore always hold a valid
// option index or the sentinel. correctIndex ranges are enforced at authoring
// time, not re-checked here.
func Grade(t domain.MockTest, selected map[string]int) Attempt {
	a := Attempt{Answers: make([]domain.Answer, 0, len(t.Questions))}

	for _, q := range t.Questions {
		sel, ok := selected[q.ID]
		if !ok || sel < 0 || sel >= len(q.Options) {
			sel = Unanswered
		}
		correct := sel == q.CorrectIndex

		a.MaxScore += q.Marks
		if correct {
			a.Score += q.Marks
		}
		a.Answers = append(a.Answers, domain.Answer{
			QuestionID:    q.ID,
			SelectedIndex: sel,
			Correct:       correct,
		})
	}

	if a.MaxScore > 0 {
		a.Percentage = float64(a.Score) / float64(a.MaxScore) * 100.0
	}
	return a
}
