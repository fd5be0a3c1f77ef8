package scoring

import "strings"

// highRiskProcedureKeywords are the substrings that mark a procedure
// description as high risk for the cardiac index: intraperitoneal,
// intrathoracic, and suprainguinal vascular surgery, plus the common
// procedure names that fall into those groups.
var highRiskProcedureKeywords = []string{
	"intraperitoneal",
	"intrathoracic",
	"suprainguinal",
	"vascular",
	"aort",
	"aneurysm",
	"esophag",
	"thorac",
	"pneumonectomy",
	"laparotomy",
	"hepatectomy",
	"gastrectomy",
	"colectomy",
	"pancrea",
	"whipple",
}

// IsHighRiskSurgery reports whether a free-text procedure description counts
// as high-risk surgery. The match is a case-insensitive substring scan, not a
// whole-word match, and there is no negation handling. This is a blunt
// heuristic: compound procedure names can produce false positives or
// negatives, and that is accepted behavior.
func IsHighRiskSurgery(description string) bool {
	desc := strings.ToLower(description)
	for _, kw := range highRiskProcedureKeywords {
		if strings.Contains(desc, kw) {
			return true
		}
	}
	return false
}
