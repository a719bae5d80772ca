package render

import (
	"regexp"
	"strconv"
	"strings"
)

var gradeFraction = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*/\s*(\d+(?:\.\d+)?)`)

// ContactLine joins the present address and contact fragments with sep.
// Both empty yields "", which still renders as a blank line.
func ContactLine(address, contact, sep string) string {
	parts := make([]string, 0, 2)
	if present(address) {
		parts = append(parts, address)
	}
	if present(contact) {
		parts = append(parts, contact)
	}
	return strings.Join(parts, sep)
}

// GradePercentage converts an "obtained/total" grade into a percentage with
// one decimal. Grades already containing "%" are left alone.
func GradePercentage(grade string) (string, bool) {
	if grade == "" || strings.Contains(grade, "%") {
		return "", false
	}
	m := gradeFraction.FindStringSubmatch(grade)
	if m == nil {
		return "", false
	}
	obtained, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return "", false
	}
	total, err := strconv.ParseFloat(m[2], 64)
	if err != nil || total <= 0 {
		return "", false
	}
	return strconv.FormatFloat(obtained/total*100, 'f', 1, 64) + "%", true
}

// GradeLine renders the education grade line with the derived percentage when
// one is available.
func GradeLine(grade string) string {
	if pct, ok := GradePercentage(grade); ok {
		return "Grade: " + grade + " (" + pct + ")"
	}
	return "Grade: " + grade
}

func present(s string) bool {
	return strings.TrimSpace(s) != ""
}
