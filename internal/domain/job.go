package domain

// DefaultSalary is stored when a posting leaves the salary field blank.
const DefaultSalary = "Not specified"

// Job is an admin-posted listing. Immutable once written.
type Job struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
	Salary      string `json:"salary"`
}
