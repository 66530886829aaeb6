package talent

// CandidateProvider supplies candidate records for a query.
type CandidateProvider interface {
	// TopCandidates returns the most recent applicants for a requisition.
	TopCandidates(reqID string) []Candidate
	// ByName returns the candidate record for a display name.
	ByName(name string) Candidate
}

// PositionProvider supplies open position records.
type PositionProvider interface {
	// ListOpenPositions returns the caller's active postings, capped.
	ListOpenPositions() []OpenPosition
	// PositionForReqID returns the posting behind a requisition ID.
	PositionForReqID(reqID string) OpenPosition
}
