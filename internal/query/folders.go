package query

import (
	"cmp"
	"slices"
	"strconv"
)

// CompareFolders orders folder ids numerically when both parse as integers.
// Numeric ids sort before non-numeric ones, and non-numeric ids sort lexically.
func CompareFolders(a, b string) int {
	na, errA := strconv.ParseInt(a, 10, 64)
	nb, errB := strconv.ParseInt(b, 10, 64)

	switch {
	case errA == nil && errB == nil:
		if c := cmp.Compare(na, nb); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	default:
		return cmp.Compare(a, b)
	}
}

// SortFolders sorts ids in place with CompareFolders.
func SortFolders(ids []string) {
	slices.SortStableFunc(ids, CompareFolders)
}
