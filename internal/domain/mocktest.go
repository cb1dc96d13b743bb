package domain

// MockTest is an admin-authored multiple-choice test. Immutable once written.
// TimeLimitMinutes is optional; the key is omitted from storage when unset.
type MockTest struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	TimeLimitMinutes *int       `json:"timeLimitMinutes,omitempty"`
	Questions        []Question `json:"questions"`
}

// Question carries exactly four options; CorrectIndex is validated into 0..3
// at authoring time and Marks defaults to 1.
type Question struct {
	ID           string       `json:"id"`
	Text         string       `json:"text"`
	CorrectIndex int          `json:"correctIndex"`
	Marks        int          `json:"marks"`
	Options      []OptionItem `json:"options"`
}

type OptionItem struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}
