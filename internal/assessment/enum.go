package assessment

type SessionStatus string

const (
	SessionInProgress SessionStatus = "in_progress"
	SessionCompleted  SessionStatus = "completed"
)

// RIASEC category names keyed by the single-letter codes stored on options.
// P and V are legacy codes kept for data seeded before the RIASEC migration.
var categoryNames = map[string]string{
	"R": "Realistic",
	"I": "Investigative",
	"A": "Artistic",
	"S": "Social",
	"E": "Enterprising",
	"C": "Conventional",
	"P": "Personality",
	"V": "Values",
}

// CategoryName expands a stored category code to its full name. Unknown
// non-empty values pass through unchanged; empty maps to "Other".
func CategoryName(code string) string {
	if name, ok := categoryNames[code]; ok {
		return name
	}
	if code == "" {
		return "Other"
	}
	return code
}
