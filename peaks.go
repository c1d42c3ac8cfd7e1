package mmr

import "sort"

// Peaks returns the positions of every peak in an MMR of the given size,
// ordered left to right (ascending position, descending height). It returns
// nil for size 0.
//
// It finds the left most peak, then repeatedly jumps to the sibling at the
// same height; whenever that sibling lands outside the current size, it
// walks down to its left child (height - 1) until a valid position is
// found or the walk bottoms out at height 0 with nothing to its right.
func Peaks(size uint64) []uint64 {
	if size == 0 {
		return nil
	}

	height := uint64(0)
	for leftPeakPos(height+1) < size {
		height++
	}
	pos := leftPeakPos(height)

	peaks := []uint64{pos}
	for {
		candidate := pos + siblingOffset(height)
		for candidate >= size {
			if height == 0 {
				return peaks
			}
			height--
			candidate -= parentOffset(height)
		}
		pos = candidate
		peaks = append(peaks, pos)
	}
}

// PeakCount returns the number of peaks in an MMR of the given size, equal
// to the popcount of its leaf count.
func PeakCount(size uint64) int {
	return len(Peaks(size))
}

// peakIndex reports whether pos is a peak of the given (ascending, as
// returned by Peaks) peak list, via binary search.
func peakIndex(peaks []uint64, pos uint64) (int, bool) {
	i := sort.Search(len(peaks), func(i int) bool { return peaks[i] >= pos })
	if i < len(peaks) && peaks[i] == pos {
		return i, true
	}
	return -1, false
}
