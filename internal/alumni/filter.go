package alumni

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// Filter returns the records matching category, newest passing year first.
// category is AllCategory, a category code, or a literal department name.
// The input slice is never modified.
func Filter(records []Record, category string) []Record {
	var out []Record
	if category == AllCategory {
		out = slices.Clone(records)
	} else {
		match := departmentMatcher(category)
		for _, r := range records {
			if match(r.Department) {
				out = append(out, r)
			}
		}
	}
	SortByYear(out)
	if out == nil {
		out = []Record{}
	}
	return out
}

func departmentMatcher(category string) func(string) bool {
	if subs, ok := Subcategories(category); ok {
		return func(dept string) bool {
			return slices.Contains(subs, dept)
		}
	}
	return func(dept string) bool {
		return dept == category
	}
}

// SortByYear orders records by descending passing year in place. The sort is
// stable; records whose year is missing or not a number go last.
func SortByYear(records []Record) {
	slices.SortStableFunc(records, func(a, b Record) int {
		ya, okA := passingYear(a)
		yb, okB := passingYear(b)
		switch {
		case okA && okB:
			return cmp.Compare(yb, ya)
		case okA:
			return -1
		case okB:
			return 1
		}
		return 0
	})
}

func passingYear(r Record) (int, bool) {
	y, err := strconv.Atoi(strings.TrimSpace(r.PassingYear))
	if err != nil {
		return 0, false
	}
	return y, true
}
