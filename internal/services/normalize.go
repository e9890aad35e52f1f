package services

// Marks arrive on two scales: assignments are graded 0-100, quiz scores are
// already sums of 0-10 default marks. Every report speaks the 0-10 scale, so
// each source has exactly one conversion and call sites pick the right one.

// NormalizeAssignmentMark rescales a native 0-100 assignment mark to 0-10.
func NormalizeAssignmentMark(raw float64) float64 {
	return raw / 10
}

// NormalizeQuizScore passes the aggregated quiz score through unchanged;
// question default marks are authored in 0-10 units.
func NormalizeQuizScore(raw float64) float64 {
	return raw
}
