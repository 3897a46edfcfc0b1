package types

// Candidate is a person in the hiring system. A Candidate has no pipeline
// status of its own; status lives on the Application joining it to a Job.
type Candidate struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	AvatarURL  string `json:"avatarUrl"`
	Role       string `json:"role"` // current or last role label
	Experience int    `json:"experience"`
	Education  string `json:"education"`
	Tags       []string `json:"tags"`

	ResumeURL      string           `json:"resumeUrl,omitempty"`
	ResumeText     string           `json:"resumeText,omitempty"`
	WorkExperience []WorkExperience `json:"workExperience,omitempty"`
}

// WorkExperience is a single entry in a candidate's employment history,
// ordered most recent first.
type WorkExperience struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	StartDate   string `json:"startDate"` // label, e.g. "2021-03"
	EndDate     string `json:"endDate"`   // label, e.g. "Present"
	Description string `json:"description"`
}

// CandidateDraft is the intake input for a prospective candidate, either
// filled by resume extraction or entered manually. Name and email are the
// only required fields; email is the natural dedup key.
type CandidateDraft struct {
	Name           string           `json:"name" validate:"required"`
	Email          string           `json:"email" validate:"required"`
	Phone          string           `json:"phone,omitempty"`
	Role           string           `json:"role,omitempty"`
	Experience     int              `json:"experience,omitempty" validate:"gte=0"`
	Education      string           `json:"education,omitempty"`
	Tags           []string         `json:"tags,omitempty"`
	Summary        string           `json:"summary,omitempty"`
	ResumeURL      string           `json:"resumeUrl,omitempty"`
	ResumeText     string           `json:"resumeText,omitempty"`
	WorkExperience []WorkExperience `json:"workExperience,omitempty"`
}
