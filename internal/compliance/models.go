package compliance

// Severity grades how seriously a violation should be treated.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// ProcedureType classifies which regional procedure (and fee schedule)
// applies to a document.
type ProcedureType string

const (
	ProcedureBeirut   ProcedureType = "beirut"
	ProcedureTripoli  ProcedureType = "tripoli"
	ProcedureStandard ProcedureType = "standard"
)

// Court names as the underlying registries spell them.
const (
	CourtBeirut  = "بيروت الابتدائية"
	CourtTripoli = "طرابلس الابتدائية"
	CourtSharia  = "المحكمة الشرعية"
)

// Violation is one advisory finding against a document.
type Violation struct {
	Article     string   `json:"article"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
	Court       string   `json:"court"`
}

// StampDuty is the government fee for notarizing a document.
type StampDuty struct {
	LBP int `json:"lbp"`
	USD int `json:"usd"`
}

// Report is the full advisory output of a compliance check. It is a
// heuristic, not a legal-accuracy guarantee.
type Report struct {
	Violations        []Violation   `json:"violations"`
	Court             string        `json:"court"`
	StampDuty         StampDuty     `json:"stampDuty"`
	RequiredDocuments []string      `json:"requiredDocuments"`
	ProcedureType     ProcedureType `json:"procedureType"`
}
