package viz

import (
	"sort"
	"testing"
)

func TestCompareLabels_CatchAllBucketsLast(t *testing.T) {
	labels := []string{"Others", "Beta", "Unknown", "Alpha"}

	comparator := newLabelComparator()
	sort.SliceStable(labels, func(i, j int) bool {
		return comparator.compare(labels[i], labels[j]) < 0
	})

	want := []string{"Alpha", "Beta", "Unknown", "Others"}
	for i, label := range want {
		if labels[i] != label {
			t.Fatalf("expected order %v, got %v", want, labels)
		}
	}
}

func TestCompareLabels_NumericPrefixes(t *testing.T) {
	if CompareLabels("2 - 4", "10 - 12") >= 0 {
		t.Error("numeric prefixes must compare numerically, not lexically")
	}
	if CompareLabels("-5 - 0", "0 - 5") >= 0 {
		t.Error("negative bounds sort before positive ones")
	}
}

func TestCompareLabels_Dates(t *testing.T) {
	if CompareLabels("Jan 2024", "Feb 2024") >= 0 {
		t.Error("month labels must compare chronologically")
	}
	// Digit-leading dates resolve by their leading number first; different
	// years still order correctly through that branch.
	if CompareLabels("2023-12-31", "2024-01-01") >= 0 {
		t.Error("year prefixes must order digit-leading dates")
	}
}

func TestCompareLabels_PlainStrings(t *testing.T) {
	if CompareLabels("apple", "banana") >= 0 {
		t.Error("plain strings collate alphabetically")
	}
	if CompareLabels("item2", "item10") >= 0 {
		t.Error("numeric-aware collation should order embedded numbers")
	}
}
