package talent

import (
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
)

// Titles are the job titles the mock providers draw from.
var Titles = []string{
	"Graphics Artist",
	"Senior Content Writer",
	"Senior Program Manager",
	"Software Developer II",
	"Principal Product Manager",
	"Marketing Manager",
	"Development Lead",
	"UX Designer",
}

var stages = []Stage{StageApplied, StageInterviewing, StagePending, StageOffered}

const (
	// DefaultMaxPositions caps ListOpenPositions results.
	DefaultMaxPositions = 5
	// DefaultTopCandidates caps TopCandidates results.
	DefaultTopCandidates = 3
)

// NewReqID generates a short upper-cased requisition ID, e.g. "0F812D01".
func NewReqID() string {
	return strings.ToUpper(strings.SplitN(uuid.NewString(), "-", 2)[0])
}

// MockCandidates generates fake candidate records. It implements
// CandidateProvider.
type MockCandidates struct {
	faker   *gofakeit.Faker
	baseURL string
	topN    int
}

// NewMockCandidates returns a provider generating random candidates.
// Profile picture URLs are rooted at baseURL; TopCandidates returns topN
// records.
func NewMockCandidates(baseURL string, topN int) *MockCandidates {
	return &MockCandidates{faker: gofakeit.New(0), baseURL: baseURL, topN: topN}
}

// NewSeededCandidates returns a deterministic provider for tests.
func NewSeededCandidates(baseURL string, seed uint64) *MockCandidates {
	return &MockCandidates{faker: gofakeit.New(seed), baseURL: baseURL, topN: DefaultTopCandidates}
}

func (m *MockCandidates) TopCandidates(reqID string) []Candidate {
	out := make([]Candidate, 0, m.topN)
	for i := 0; i < m.topN; i++ {
		c := m.generate()
		c.ReqID = reqID
		c.ProfilePicture = fmt.Sprintf("%s/images/candidate_%d.png", m.baseURL, i+1)
		out = append(out, c)
	}
	return out
}

func (m *MockCandidates) ByName(name string) Candidate {
	c := m.generate()
	c.Name = name
	return c
}

func (m *MockCandidates) generate() Candidate {
	return Candidate{
		Name:           m.faker.FirstName() + " " + m.faker.LastName(),
		CurrentRole:    Titles[m.faker.Number(0, len(Titles)-1)],
		Stage:          stages[m.faker.Number(0, len(stages)-1)],
		Hires:          m.faker.Number(0, 2),
		NoHires:        m.faker.Number(0, 2),
		ProfilePicture: fmt.Sprintf("%s/images/candidate_%d.png", m.baseURL, m.faker.Number(1, 2)),
		ReqID:          NewReqID(),
	}
}

// MockPositions generates fake open positions. It implements
// PositionProvider.
type MockPositions struct {
	faker *gofakeit.Faker
	maxN  int
}

// NewMockPositions returns a provider generating random positions;
// ListOpenPositions returns maxN records.
func NewMockPositions(maxN int) *MockPositions {
	return &MockPositions{faker: gofakeit.New(0), maxN: maxN}
}

// NewSeededPositions returns a deterministic provider for tests.
func NewSeededPositions(seed uint64) *MockPositions {
	return &MockPositions{faker: gofakeit.New(seed), maxN: DefaultMaxPositions}
}

func (m *MockPositions) ListOpenPositions() []OpenPosition {
	out := make([]OpenPosition, 0, m.maxN)
	for i := 0; i < m.maxN; i++ {
		out = append(out, m.generate())
	}
	return out
}

func (m *MockPositions) PositionForReqID(reqID string) OpenPosition {
	p := m.generate()
	p.ReqID = reqID
	return p
}

func (m *MockPositions) generate() OpenPosition {
	return OpenPosition{
		Title:         Titles[m.faker.Number(0, len(Titles)-1)],
		Applicants:    m.faker.Number(0, 4),
		DaysOpen:      m.faker.Number(0, 9),
		HiringManager: m.faker.FirstName() + " " + m.faker.LastName(),
		ReqID:         NewReqID(),
	}
}
