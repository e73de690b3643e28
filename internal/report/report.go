// Package report renders an accepted verdict as a downloadable plain-text
// summary.
package report

import (
	"fmt"
	"strings"

	"github.com/plantsight/plantsight-api/internal/gate"
)

const caveat = "Remedies are guidance only — consult your local agricultural extension for chemicals and dosages."

// Render produces the report body: predicted name, confidence percentage,
// remedy summary and, when present, the detailed guidance.
func Render(v gate.Verdict) string {
	var b strings.Builder
	b.WriteString("PlantSight result\n")
	fmt.Fprintf(&b, "Top prediction: %s (%.2f)\n", v.Top.Name, v.Top.Confidence)
	fmt.Fprintf(&b, "Confidence: %d%%\n", int(v.Top.Confidence*100))
	fmt.Fprintf(&b, "Remedy: %s\n", v.Remedy.Summary)
	if v.Remedy.Details != "" {
		b.WriteString("\nDetailed guidance:\n")
		b.WriteString(v.Remedy.Details)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(caveat)
	b.WriteString("\n")
	return b.String()
}
