package domain

// Profile holds the free-text details a user fills in, 1:1 with a User by
// email. dob and cgpa are stored as entered, no date/number validation.
type Profile struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	College    string `json:"college"`
	DOB        string `json:"dob"`
	CGPA       string `json:"cgpa"`
	ResumeLink string `json:"resumeLink"`
}
