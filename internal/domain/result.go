package domain

// TestResult records one graded attempt. CreatedAt is epoch milliseconds,
// matching the stored data format. Many results may share a testId or email.
type TestResult struct {
	ID         string   `json:"id"`
	TestID     string   `json:"testId"`
	UserEmail  string   `json:"userEmail"`
	Score      int      `json:"score"`
	MaxScore   int      `json:"maxScore"`
	Percentage float64  `json:"percentage"`
	CreatedAt  int64    `json:"createdAt"`
	Answers    []Answer `json:"answers"`
}

// Answer mirrors one question of the attempt. SelectedIndex is -1 when the
// question was left unanswered.
type Answer struct {
	QuestionID    string `json:"questionId"`
	SelectedIndex int    `json:"selectedIndex"`
	Correct       bool   `json:"correct"`
}
