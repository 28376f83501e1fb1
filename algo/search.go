package algo

import "cmp"

// BinarySearch returns the index of target in the ascending slice s, or -1
// if s does not contain target. If target occurs more than once, any of its
// positions may be returned.
func BinarySearch[S ~[]E, E cmp.Ordered](s S, target E) int {
	left, right := 0, len(s)-1
	for left <= right {
		middle := left + (right-left)/2
		switch {
		case s[middle] > target:
			right = middle - 1
		case s[middle] < target:
			left = middle + 1
		default:
			return middle
		}
	}
	return -1
}

// IsSorted reports whether s is in ascending order.
func IsSorted[S ~[]E, E cmp.Ordered](s S) bool {
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return false
		}
	}
	return true
}
