package compliance

import "strings"

// evaluation is the mutable state threaded through the rule table. Rules read
// the court as it stands when they fire, so ordering is part of the contract.
type evaluation struct {
	court         string
	procedureType ProcedureType
	violations    []Violation
}

// textPredicate decides whether free text triggers a rule. Jurisdiction
// detection is deliberately behind this type so the naive substring match can
// later be replaced by a structured jurisdiction field without touching the
// rule table.
type textPredicate func(text string) bool

func containsAny(substrings ...string) textPredicate {
	return func(text string) bool {
		for _, s := range substrings {
			if strings.Contains(text, s) {
				return true
			}
		}
		return false
	}
}

// defaultTripoliDetector matches the Tripoli keyword in either script.
// Latin matching is case-sensitive on purpose; that mirrors the behavior the
// fee schedules were calibrated against.
var defaultTripoliDetector = containsAny("طرابلس", "tripoli")

// litigationTriggers are phrases that escalate any document to a
// consult-a-lawyer finding ("file a lawsuit" / "terminate contract").
var litigationTriggers = containsAny("رفع دعوى", "فسخ عقد")

// rule is one row of the compliance table. An empty docType matches every
// document type; a nil trigger always fires.
type rule struct {
	name    string
	docType string
	trigger textPredicate
	apply   func(e *evaluation)
}

// buildRules assembles the rule table. All rules are evaluated in order and
// none short-circuit; matching rules append their violations cumulatively.
func buildRules(tripoli textPredicate) []rule {
	return []rule{
		{
			name:    "rental lease duration",
			docType: "rental",
			apply: func(e *evaluation) {
				e.violations = append(e.violations, Violation{
					Article:     "المادة ٧٢٢ (الإيجار)",
					Description: "يجب تحديد مدة الإيجار بوضوح وفقاً للقانون اللبناني",
					Severity:    SeverityCritical,
					Court:       e.court,
				})
			},
		},
		{
			name:    "rental regional procedure",
			docType: "rental",
			trigger: tripoli,
			apply: func(e *evaluation) {
				e.court = CourtTripoli
				e.procedureType = ProcedureTripoli
				e.violations = append(e.violations, Violation{
					Article:     "المادة ١٢٣ (الإجراءات المحلية)",
					Description: "تطبق إجراءات خاصة في محافظة الشمال",
					Severity:    SeverityInfo,
					Court:       e.court,
				})
			},
		},
		{
			name:    "employment probation and termination",
			docType: "employment",
			apply: func(e *evaluation) {
				e.violations = append(e.violations, Violation{
					Article:     "المادة ٤٥ من قانون العمل",
					Description: "يجب تحديد فترة التجربة وشروط الإنهاء",
					Severity:    SeverityWarning,
					Court:       e.court,
				})
			},
		},
		{
			name:    "marriage witnesses and guardian",
			docType: "marriage",
			apply: func(e *evaluation) {
				// The religious court takes over, but the regional procedure
				// type is left untouched.
				e.court = CourtSharia
				e.violations = append(e.violations, Violation{
					Article:     "المادة ١٤ من قانون الأحوال الشخصية",
					Description: "يتطلب شهود وموافقة ولي الأمر حسب الطائفة",
					Severity:    SeverityCritical,
					Court:       CourtSharia,
				})
			},
		},
		{
			name:    "litigation escalation",
			trigger: litigationTriggers,
			apply: func(e *evaluation) {
				e.violations = append(e.violations, Violation{
					Article:     "تحذير: يتطلب استشارة محامي",
					Description: "هذا الموضوع يتطلب مساعدة قانونية مباشرة",
					Severity:    SeverityCritical,
					Court:       e.court,
				})
			},
		},
	}
}

// stampDutyTable maps procedure types to their fee schedule. Anything other
// than Beirut falls back to the regional schedule.
var stampDutyTable = map[ProcedureType]StampDuty{
	ProcedureBeirut: {LBP: 150000, USD: 10},
}

var regionalStampDuty = StampDuty{LBP: 100000, USD: 7}

func stampDutyFor(p ProcedureType) StampDuty {
	if duty, ok := stampDutyTable[p]; ok {
		return duty
	}
	return regionalStampDuty
}

// requiredDocuments is identical across document types today: ID card,
// address proof, bar-association stamp, fiscal stamp fee.
var requiredDocuments = []string{
	"بطاقة هوية",
	"إثبات عنوان",
	"ختم النقابة",
	"رسم طابع مالي",
}
