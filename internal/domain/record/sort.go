package record

import "golang.org/x/exp/slices"

// SortByNumber orders records by number ascending. Records sharing a number
// keep their relative order.
func SortByNumber(records []Record) {
	slices.SortStableFunc(records, func(a, b Record) bool {
		return a.Info().Number < b.Info().Number
	})
}

func FilterByState(records []Record, state State) []Record {
	filtered := []Record{}
	for _, r := range records {
		if r.Info().State == state {
			filtered = append(filtered, r)
		}
	}

	return filtered
}
