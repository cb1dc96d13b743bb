package score

import (
	"fmt"
	"strings"

	"localjobs-engine/internal/domain"
)

const optionsPerQuestion = 4

type Validation struct {
	Errors []string `json:"errors"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}

func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate checks a test against the authoring rules that protect
// the grading invariants, returning a normalized copy: title/description
// trimmed, marks defaulted to 1 where omitted. A test that fails validation
// must not be persisted.
func NormalizeAndValidate(t domain.MockTest) (domain.MockTest, Validation) {
	out := t
	var res Validation

	out.Title = strings.TrimSpace(out.Title)
	out.Description = strings.TrimSpace(out.Description)

	if out.Title == "" {
		res.addErr("title is required")
	}
	if out.TimeLimitMinutes != nil && *out.TimeLimitMinutes <= 0 {
		res.addErr("timeLimitMinutes must be > 0 when set")
	}
	if len(out.Questions) == 0 {
		res.addErr("at least one question is required")
	}

	out.Questions = append([]domain.Question(nil), out.Questions...)
	for i := range out.Questions {
		q := &out.Questions[i]
		q.Text = strings.TrimSpace(q.Text)

		if q.Text == "" {
			res.addErr("questions[%d].text is required", i)
		}
		if len(q.Options) != optionsPerQuestion {
			res.addErr("questions[%d] must have exactly %d options", i, optionsPerQuestion)
		}
		for j, o := range q.Options {
			if strings.TrimSpace(o.Text) == "" {
				res.addErr("questions[%d].options[%d] cannot be blank", i, j)
			}
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= optionsPerQuestion {
			res.addErr("questions[%d].correctIndex must be in 0..%d", i, optionsPerQuestion-1)
		}
		if q.Marks == 0 {
			q.Marks = 1
		}
		if q.Marks < 0 {
			res.addErr("questions[%d].marks must be positive", i)
		}
	}

	return out, res
}
