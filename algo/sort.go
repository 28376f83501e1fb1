/*
Package algo implements textbook sorting and searching on plain slices.

All sorting functions sort in place and in ascending order. None of them is
stable except MergeSort.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package algo

import "cmp"

// SelectionSort sorts s by repeatedly moving the minimum of the unsorted
// rest to its front. O(n²) comparisons, at most n-1 swaps.
func SelectionSort[S ~[]E, E cmp.Ordered](s S) {
	for i := 0; i < len(s)-1; i++ {
		minimum := i
		for j := i + 1; j < len(s); j++ {
			if s[j] < s[minimum] {
				minimum = j
			}
		}
		if minimum != i {
			s[i], s[minimum] = s[minimum], s[i]
		}
	}
}

// QuickSort sorts s with Hoare partitioning around the last element of each
// range. Already sorted input is the worst case, with O(n²) comparisons and
// recursion depth n.
func QuickSort[S ~[]E, E cmp.Ordered](s S) {
	quicksort(s, 0, len(s)-1)
}

func quicksort[S ~[]E, E cmp.Ordered](s S, left, right int) {
	if left >= right || left < 0 {
		return
	}
	p := partition(s, left, right)
	quicksort(s, left, p-1)
	quicksort(s, p, right)
}

// partition returns a position p with left < p <= right such that every
// element in [left,p) is <= every element in [p,right].
func partition[S ~[]E, E cmp.Ordered](s S, left, right int) int {
	pivot := s[right]
	l, r := left-1, right+1
	for {
		for l++; l < r && s[l] < pivot; l++ {
		}
		for r--; r > l && s[r] > pivot; r-- {
		}
		if l >= r {
			return l
		}
		s[l], s[r] = s[r], s[l]
	}
}

// MergeSort sorts s by merging runs of doubling size, bottom-up, using a
// work buffer of len(s). MergeSort is stable.
func MergeSort[S ~[]E, E cmp.Ordered](s S) {
	n := len(s)
	if n <= 1 {
		return
	}
	src, work := s, make(S, n)
	for run := 1; run < n; run *= 2 {
		for start := 0; start < n; start += 2 * run {
			middle := min(start+run, n)
			end := min(start+2*run, n)
			merge(src, work, start, middle, end)
		}
		src, work = work, src
	}
	if &src[0] != &s[0] {
		copy(s, src)
	}
}

// merge merges the sorted runs src[start:middle] and src[middle:end] into
// dst[start:end].
func merge[S ~[]E, E cmp.Ordered](src, dst S, start, middle, end int) {
	l, r, w := start, middle, start
	for l < middle && r < end {
		if src[r] < src[l] {
			dst[w] = src[r]
			r++
		} else {
			dst[w] = src[l]
			l++
		}
		w++
	}
	w += copy(dst[w:], src[l:middle])
	copy(dst[w:], src[r:end])
}
