package api

// User is the backend's user record. Optional fields arrive as zero
// values; defaulting happens once at the auth manager boundary, not
// here.
type User struct {
	ID         int      `json:"id"`
	Email      string   `json:"email"`
	Name       string   `json:"name"`
	Role       string   `json:"role"`
	Username   string   `json:"username"`
	Picture    string   `json:"picture"`
	Skills     []string `json:"skills"`
	IsFlagged  bool     `json:"is_flagged"`
	FlagReason string   `json:"flag_reason"`
}

// Tokens is the credentials block of an auth response.
type Tokens struct {
	Access string `json:"access"`
}

// AuthResponse is returned by login, registration, and the Google
// exchange.
type AuthResponse struct {
	User   *User  `json:"user"`
	Tokens Tokens `json:"tokens"`
}

// Education is a user's education record.
type Education struct {
	ID               int     `json:"id,omitempty"`
	Degree           string  `json:"degree"`
	Specialization   string  `json:"specialization"`
	University       string  `json:"university"`
	CGPA             float64 `json:"cgpa"`
	YearOfCompletion int     `json:"year_of_completion"`
}

// Certification is one certification entry.
type Certification struct {
	ID           int    `json:"id,omitempty"`
	Name         string `json:"cert_name"`
	Organization string `json:"issuing_organization"`
	IssueDate    string `json:"issue_date"`
}

// ProfileResponse is the GET /profile/ payload.
type ProfileResponse struct {
	User           *User           `json:"user"`
	Education      *Education      `json:"education"`
	Certifications []Certification `json:"certifications"`
}

// ProfileUpdate is the PUT /profile/ request body.
type ProfileUpdate struct {
	Education *Education `json:"education,omitempty"`
	Skills    []string   `json:"skills,omitempty"`
}

// Prediction is one predicted job role with its confidence.
type Prediction struct {
	JobRole       string   `json:"job_role"`
	Confidence    float64  `json:"confidence"`
	MissingSkills []string `json:"missing_skills"`
}

// PredictionRecord is a saved prediction run.
type PredictionRecord struct {
	ID               int       `json:"id"`
	PredictedRoles   []string  `json:"predicted_roles"`
	ConfidenceScores []float64 `json:"confidence_scores"`
	MissingSkills    []string  `json:"missing_skills"`
	Timestamp        string    `json:"timestamp"`
}

// SupportTicket is a support request and its admin reply, if any.
type SupportTicket struct {
	ID         int    `json:"id"`
	UserEmail  string `json:"user_email,omitempty"`
	Type       string `json:"type"`
	Subject    string `json:"subject"`
	Message    string `json:"message"`
	Status     string `json:"status"`
	AdminReply string `json:"admin_reply"`
	CreatedAt  string `json:"created_at"`
}

// NamedCount is a generic label+count aggregate used by analytics.
type NamedCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// JobCount is a job role with its prediction count.
type JobCount struct {
	Job   string `json:"job"`
	Count int    `json:"count"`
}

// DailyCount is predictions per weekday over the trailing week.
type DailyCount struct {
	Day         string `json:"day"`
	Predictions int    `json:"predictions"`
}

// MonthlyGrowth is user counts per month.
type MonthlyGrowth struct {
	Month  string `json:"month"`
	Users  int    `json:"users"`
	Active int    `json:"active"`
}

// AnalyticsReport is the backend-computed admin dashboard payload.
// The client renders it as-is.
type AnalyticsReport struct {
	TotalUsers         int             `json:"total_users"`
	Students           int             `json:"students"`
	Admins             int             `json:"admins"`
	TotalPredictions   int             `json:"total_predictions"`
	MonthlyPredictions int             `json:"monthly_predictions"`
	AvgConfidence      float64         `json:"avg_confidence"`
	Accuracy           float64         `json:"accuracy"`
	Universities       []NamedCount    `json:"universities"`
	TopJobs            []JobCount      `json:"top_jobs"`
	DailyPredictions   []DailyCount    `json:"daily_predictions"`
	UserGrowth         []MonthlyGrowth `json:"user_growth"`
}

// AdminUser is one row of the admin user list.
type AdminUser struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	DateJoined string `json:"date_joined"`
	IsFlagged  bool   `json:"is_flagged"`
	FlagReason string `json:"flag_reason"`
}

// PredictionLogEntry is one admin prediction-log row.
type PredictionLogEntry struct {
	User         string  `json:"user"`
	PredictedJob string  `json:"predicted_job"`
	Confidence   float64 `json:"confidence"`
	Status       string  `json:"status"`
	Timestamp    string  `json:"timestamp"`
}

// ActivityLogEntry is one admin activity-log row.
type ActivityLogEntry struct {
	ID        int    `json:"id"`
	Time      string `json:"time"`
	Admin     string `json:"admin"`
	Action    string `json:"action"`
	Target    string `json:"target"`
	Details   string `json:"details"`
	IsFlagged bool   `json:"is_flagged"`
}

// FeedbackEntry is one prediction-feedback row for admins.
type FeedbackEntry struct {
	User           string   `json:"user"`
	Rating         int      `json:"rating"`
	Comment        string   `json:"comment"`
	CreatedAt      string   `json:"created_at"`
	PredictedRoles []string `json:"predicted_roles"`
}

// ModelStatus is the prediction model's training status.
type ModelStatus struct {
	Trained  int     `json:"trained"`
	Total    int     `json:"total"`
	Coverage float64 `json:"coverage"`
}
