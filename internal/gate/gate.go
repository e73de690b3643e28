// Package gate turns a classifier's ranked output into a gated,
// human-facing verdict. The gate is pure and stateless: it performs no I/O,
// trusts the input to be sorted best-first, and degrades data-shape problems
// into rejection verdicts instead of errors.
package gate

import (
	"math"
	"strconv"
	"strings"

	"github.com/plantsight/plantsight-api/internal/catalog"
)

// RawPrediction is one (class id, raw score) pair from the classifier
// adapter. The score scale is ambiguous at the source (0-1 or 0-100) and is
// normalized before any comparison.
type RawPrediction struct {
	ClassID int
	Score   float64
}

// Reason explains a rejection.
type Reason string

const (
	// ReasonNone marks an accepted verdict.
	ReasonNone Reason = "none"
	// ReasonLowConfidence: the normalized top confidence fell below the
	// configured threshold.
	ReasonLowConfidence Reason = "low_confidence"
	// ReasonNotCropLike: the resolved name matched no crop keyword.
	ReasonNotCropLike Reason = "not_crop_like"
	// ReasonNoPrediction: the classifier produced nothing usable — an empty
	// ranked list or a class id the catalog cannot vouch for.
	ReasonNoPrediction Reason = "no_prediction"
)

// Top is the resolved best prediction.
type Top struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
	ClassID    int     `json:"class_id"`
}

// Remedy is the guidance attached to an accepted verdict.
type Remedy struct {
	Summary string `json:"summary"`
	Details string `json:"details,omitempty"`
}

// Verdict is the gate's output for one ranked list.
type Verdict struct {
	Accepted bool   `json:"accepted"`
	Top      Top    `json:"top"`
	Remedy   Remedy `json:"remedy,omitempty"`
	Reason   Reason `json:"reason"`
}

// Options configures a Gate.
type Options struct {
	// Threshold is the minimum normalized confidence, in [0,1].
	Threshold float64
	// Keywords gate the resolved name; a name matching none of them is
	// rejected as not crop-like.
	Keywords []string
}

// DefaultOptions matches the documented configuration defaults.
func DefaultOptions() Options {
	return Options{
		Threshold: 0.70,
		Keywords:  []string{"cotton", "maize", "wheat", "rice", "sugarcane"},
	}
}

// Gate decides whether a classifier result is shown to the user. Construct
// once with the immutable catalog and options; Decide is safe for
// concurrent use.
type Gate struct {
	catalog   *catalog.Catalog
	threshold float64
	keywords  []string
}

func New(cat *catalog.Catalog, opts Options) *Gate {
	return &Gate{
		catalog:   cat,
		threshold: opts.Threshold,
		keywords:  opts.Keywords,
	}
}

// Normalize maps a raw confidence onto [0,1]. Values above 1 are read as
// percentages and divided by 100; the result is clamped, and NaN or
// infinite input maps to 0.
func Normalize(raw float64) float64 {
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 0
	}
	if raw > 1.0 {
		raw = raw / 100.0
	}
	if raw < 0 {
		return 0
	}
	return math.Min(1.0, raw)
}

// NormalizeValue is Normalize over loosely typed input, for scores arriving
// from configuration or declarative resources. Non-numeric input maps to 0;
// it never panics.
func NormalizeValue(v interface{}) float64 {
	switch x := v.(type) {
	case float64:
		return Normalize(x)
	case float32:
		return Normalize(float64(x))
	case int:
		return Normalize(float64(x))
	case int64:
		return Normalize(float64(x))
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0
		}
		return Normalize(f)
	default:
		return 0
	}
}

// LooksLikeCrop reports whether name contains any keyword,
// case-insensitively. An empty name never matches.
func LooksLikeCrop(name string, keywords []string) bool {
	if name == "" {
		return false
	}
	lower := strings.ToLower(name)
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// Decide consumes one ranked list, best-first, and produces one verdict.
// Acceptance requires a catalog-known class id, a normalized confidence at
// or above the threshold, and a crop-like name. Rejections report the first
// failing reason in priority order: low confidence, then not crop-like,
// then no valid prediction.
func (g *Gate) Decide(ranked []RawPrediction) Verdict {
	if len(ranked) == 0 {
		return Verdict{Accepted: false, Reason: ReasonNoPrediction}
	}

	top := ranked[0]
	conf := Normalize(top.Score)
	name := g.catalog.ResolveName(top.ClassID)

	validClass := g.catalog.Has(top.ClassID)
	confident := conf >= g.threshold
	cropLike := LooksLikeCrop(name, g.keywords)

	verdict := Verdict{
		Top: Top{Name: name, Confidence: conf, ClassID: top.ClassID},
	}

	if validClass && confident && cropLike {
		verdict.Accepted = true
		verdict.Reason = ReasonNone
		if entry, ok := g.catalog.Remedy(top.ClassID); ok {
			verdict.Remedy = Remedy{Summary: entry.Summary, Details: entry.Details}
		} else {
			verdict.Remedy = Remedy{Summary: catalog.GenericRemedy}
		}
		return verdict
	}

	switch {
	case !confident:
		verdict.Reason = ReasonLowConfidence
	case !cropLike:
		verdict.Reason = ReasonNotCropLike
	default:
		// Score and name pass but the catalog cannot vouch for the id, so
		// no remedy can be trusted.
		verdict.Reason = ReasonNoPrediction
	}
	return verdict
}

// Message returns the user-facing rejection text for a reason, with retake
// guidance. Accepted verdicts yield an empty string.
func Message(r Reason) string {
	switch r {
	case ReasonLowConfidence:
		return "Model confidence is low. Try a clearer close-up, better lighting, or crop the diseased area."
	case ReasonNotCropLike:
		return "This image does not look like a crop part. Please upload a leaf, stem, boll, or ear photo."
	case ReasonNoPrediction:
		return "No valid prediction — try another image."
	default:
		return ""
	}
}
