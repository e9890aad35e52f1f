package services

// Mark distribution bucket keys. Each key is the inclusive lower bound of its
// range on the 0-10 scale, except BucketNone which collects eligible students
// without a mark.
const (
	BucketTop  = 8  // [8, 10]
	BucketHigh = 5  // [5, 8)
	BucketMid  = 2  // [2, 5)
	BucketLow  = 0  // [0, 2)
	BucketNone = -1 // eligible, no mark
)

var bucketKeys = []int{BucketTop, BucketHigh, BucketMid, BucketLow, BucketNone}

// MarkDistribution counts students per bucket. For any report the counts sum
// to the number of eligible students.
type MarkDistribution map[int]int

func newMarkDistribution() MarkDistribution {
	d := make(MarkDistribution, len(bucketKeys))
	for _, k := range bucketKeys {
		d[k] = 0
	}
	return d
}

// Total returns the number of students across all buckets.
func (d MarkDistribution) Total() int {
	var n int
	for _, k := range bucketKeys {
		n += d[k]
	}
	return n
}

// merge adds another distribution bucket-by-bucket.
func (d MarkDistribution) merge(other MarkDistribution) {
	for _, k := range bucketKeys {
		d[k] += other[k]
	}
}

// bucketKey places one normalized mark.
func bucketKey(mark float64) int {
	switch {
	case mark >= 8:
		return BucketTop
	case mark >= 5:
		return BucketHigh
	case mark >= 2:
		return BucketMid
	default:
		return BucketLow
	}
}

// bucketScores partitions the full per-eligible-student score list into the
// distribution and the per-bucket student lists. A student with no mark
// (no response, or an ungraded submission) lands in BucketNone.
func bucketScores(scores []StudentScore) (MarkDistribution, map[int][]StudentScore) {
	dist := newMarkDistribution()
	groups := make(map[int][]StudentScore, len(bucketKeys))

	for _, s := range scores {
		key := BucketNone
		if s.Mark != nil {
			key = bucketKey(*s.Mark)
		}
		dist[key]++
		groups[key] = append(groups[key], s)
	}

	return dist, groups
}
