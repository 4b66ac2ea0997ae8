// Package shroonutils provides small generic in-memory containers: HashMap and HashSet,
// both separate-chaining hash tables over a fixed number of buckets, built on the vector
// package. Hash and equality functions are bound per container instance, see the hashfunc
// package for implementations covering the built-in scalar types.
//
// The containers are not safe for concurrent use. Pointers returned by Get and Insert
// reach into bucket storage and are valid only until the next mutating call on the same
// container.
package shroonutils

import (
	"github.com/CodingSaroj/ShroonUtils/internal/utils"
	"github.com/CodingSaroj/ShroonUtils/report"
)

// DefaultNumberOfBuckets - The number of buckets a container gets when the Config leaves
// it unset. More buckets cut down bucket scan lengths but spread entries over more
// allocations, fewer buckets keep entries packed at the cost of longer scans.
const DefaultNumberOfBuckets = 32

// Config - Optional construction parameters shared by HashMap and HashSet.
//   - NumberOfBuckets is the fixed number of buckets, it is rounded up to the nearest exponent of 2. Zero or negative selects DefaultNumberOfBuckets.
//   - Reporter receives every recoverable failure of the container and its buckets. Nil disables reporting, errors are still returned to callers.
type Config struct {
	NumberOfBuckets int
	Reporter        report.Reporter
}

// numberOfBuckets - Resolves the configured bucket count to an exponent of 2
func (C Config) numberOfBuckets() int {
	n := C.NumberOfBuckets
	if n <= 0 {
		n = DefaultNumberOfBuckets
	}

	return utils.RoundUp2(n)
}

// Stat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of entries stored
//   - NumberOfBuckets is the fixed number of buckets of the container
//   - BucketDistribution is the number of entries stored in each bucket, nil unless requested
type Stat struct {
	Records            int
	NumberOfBuckets    int
	BucketDistribution []int
}
