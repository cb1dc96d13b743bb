package domain

// Application links a job to the emails that applied to it. An email appears
// at most once per job (case-insensitive); there is no removal operation.
type Application struct {
	JobID      string   `json:"jobId"`
	Applicants []string `json:"applicants"`
}

// HasApplicant reports whether email already applied, ignoring case.
func (a Application) HasApplicant(email string) bool {
	for _, e := range a.Applicants {
		if SameEmail(e, email) {
			return true
		}
	}
	return false
}
