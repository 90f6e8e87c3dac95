package viz

import (
	"regexp"
	"strconv"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// unknownLabel and othersLabel always sort to the end of a series, in that
// relative order, so catch-all buckets trail the real categories.
const unknownLabel = "Unknown"

var leadingNumber = regexp.MustCompile(`^-?\d+(?:\.\d+)?`)

var labelDateFormats = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01/02/2006",
	"2006/01/02",
	"Jan 2006",
	"Jan 2, 2006",
}

// labelComparator orders axis labels. Each sort gets its own instance
// because collate.Collator carries internal buffers and is not safe to
// share across goroutines; allocating per batch keeps Prepare re-entrant.
type labelComparator struct {
	collator *collate.Collator
}

func newLabelComparator() *labelComparator {
	return &labelComparator{collator: collate.New(language.English, collate.Numeric)}
}

// CompareLabels orders two axis labels with a one-shot comparator. Use for
// single comparisons; sorts should reuse a comparator for the whole batch.
func CompareLabels(a, b string) int {
	return newLabelComparator().compare(a, b)
}

// compare orders two axis labels: catch-all buckets last, numeric prefixes
// numerically, dates chronologically, everything else with a locale-aware,
// numeric-sensitive collation.
func (c *labelComparator) compare(a, b string) int {
	ra, rb := labelRank(a), labelRank(b)
	if ra != rb {
		return ra - rb
	}
	if ra > 0 {
		return 0
	}

	na, okA := leadingNumberOf(a)
	nb, okB := leadingNumberOf(b)
	if okA && okB {
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		default:
			return 0
		}
	}

	ta, okA := parseLabelDate(a)
	tb, okB := parseLabelDate(b)
	if okA && okB {
		switch {
		case ta.Before(tb):
			return -1
		case ta.After(tb):
			return 1
		default:
			return 0
		}
	}

	return c.collator.CompareString(a, b)
}

func labelRank(label string) int {
	switch label {
	case unknownLabel:
		return 1
	case othersLabel:
		return 2
	default:
		return 0
	}
}

func leadingNumberOf(label string) (float64, bool) {
	match := leadingNumber.FindString(label)
	if match == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func parseLabelDate(label string) (time.Time, bool) {
	for _, format := range labelDateFormats {
		if t, err := time.Parse(format, label); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
