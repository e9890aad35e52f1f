package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coursehub/report-service/internal/models"
)

func scoreWithMark(mark float64) StudentScore {
	return StudentScore{Student: models.User{}, Mark: &mark, Submitted: true}
}

func TestBucketKey(t *testing.T) {
	tests := []struct {
		mark     float64
		expected int
	}{
		{10, BucketTop},
		{8, BucketTop},
		{7.99, BucketHigh},
		{5, BucketHigh},
		{4.99, BucketMid},
		{2, BucketMid},
		{1.99, BucketLow},
		{0, BucketLow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, bucketKey(tt.mark), "mark %v", tt.mark)
	}
}

func TestBucketScores(t *testing.T) {
	scores := []StudentScore{
		scoreWithMark(9),
		scoreWithMark(5),
		scoreWithMark(1),
		{Student: models.User{}, Submitted: true}, // submitted, ungraded
		{Student: models.User{}},                  // never responded
	}

	dist, groups := bucketScores(scores)

	assert.Equal(t, 1, dist[BucketTop])
	assert.Equal(t, 1, dist[BucketHigh])
	assert.Equal(t, 0, dist[BucketMid])
	assert.Equal(t, 1, dist[BucketLow])
	assert.Equal(t, 2, dist[BucketNone])
	assert.Equal(t, len(scores), dist.Total())

	assert.Len(t, groups[BucketTop], 1)
	assert.Len(t, groups[BucketNone], 2)
}

func TestMarkDistributionMerge(t *testing.T) {
	a := newMarkDistribution()
	a[BucketTop] = 2
	a[BucketNone] = 1

	b := newMarkDistribution()
	b[BucketTop] = 1
	b[BucketMid] = 3

	a.merge(b)

	assert.Equal(t, 3, a[BucketTop])
	assert.Equal(t, 3, a[BucketMid])
	assert.Equal(t, 1, a[BucketNone])
	assert.Equal(t, 7, a.Total())
}

func TestNormalizeAssignmentMark(t *testing.T) {
	assert.Equal(t, 10.0, NormalizeAssignmentMark(100))
	assert.Equal(t, 7.5, NormalizeAssignmentMark(75))
	assert.Equal(t, 0.0, NormalizeAssignmentMark(0))
}

func TestNormalizeQuizScore(t *testing.T) {
	assert.Equal(t, 8.5, NormalizeQuizScore(8.5))
}
