package talent

import "time"

// Stage is a candidate's position in the hiring pipeline.
type Stage string

const (
	StageApplied      Stage = "Applied"
	StageInterviewing Stage = "Interviewing"
	StagePending      Stage = "Pending"
	StageOffered      Stage = "Offered"
)

// Candidate is an applicant for a requisition. Candidates are immutable once
// produced by a provider and are identified informally by (Name, ReqID);
// the mock source regenerates them per query, so there is no global identity.
type Candidate struct {
	Name           string `json:"name"`
	CurrentRole    string `json:"currentRole"`
	Stage          Stage  `json:"stage"`
	Hires          int    `json:"hires"`
	NoHires        int    `json:"noHires"`
	ProfilePicture string `json:"profilePicture"`
	ReqID          string `json:"reqId"`
}

// OpenPosition is an active job posting. ReqID is the stable external
// identifier correlating positions, candidates and interview requests.
type OpenPosition struct {
	Title         string `json:"title"`
	Applicants    int    `json:"applicants"`
	DaysOpen      int    `json:"daysOpen"`
	HiringManager string `json:"hiringManager"`
	ReqID         string `json:"reqId"`
}

// InterviewRequest is built when a schedule command resolves. It is never
// persisted; it exists only long enough to render a card.
type InterviewRequest struct {
	CandidateName string    `json:"candidateName"`
	ReqID         string    `json:"reqId"`
	PositionTitle string    `json:"positionTitle"`
	Remote        bool      `json:"remote"`
	Date          time.Time `json:"date"`
}
