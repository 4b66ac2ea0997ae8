//go:build stress

package test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	shroonutils "github.com/CodingSaroj/ShroonUtils"
	"github.com/CodingSaroj/ShroonUtils/hashfunc"
	"github.com/CodingSaroj/ShroonUtils/vector"
)

func TestHashMapStress(t *testing.T) {
	t.Run("random operations agree with a reference map", func(t *testing.T) {
		// Prepare
		hashMap, err := shroonutils.NewHashMapConf[string, int](
			shroonutils.Config{NumberOfBuckets: 64},
			hashfunc.String,
			hashfunc.Equal[string],
		)
		assert.NoError(t, err, "creates hash map")

		reference := make(map[string]int)
		keys := make([]string, 500)
		for i := range keys {
			keys[i] = fmt.Sprintf("key-%04d", i)
		}

		// Execute
		for i := 0; i < 100000; i++ {
			key := keys[rand.Intn(len(keys))]
			switch rand.Intn(3) {
			case 0:
				value := rand.Int()
				hashMap.Insert(key, value)
				if _, exists := reference[key]; !exists {
					reference[key] = value
				}
			case 1:
				got, found := hashMap.Get(key)
				want, exists := reference[key]
				assert.Equal(t, exists, found, "presence agrees with reference")
				if exists {
					assert.Equal(t, want, *got, "value agrees with reference")
				}
			case 2:
				removed := hashMap.Erase(key)
				_, exists := reference[key]
				assert.Equal(t, exists, removed, "removal agrees with reference")
				delete(reference, key)
			}

			assert.Equal(t, len(reference), hashMap.Len(), "size agrees with reference")
		}

		// Check
		stat := hashMap.Stat(true)
		sum := 0
		for _, n := range stat.BucketDistribution {
			sum += n
		}
		assert.Equal(t, hashMap.Len(), sum, "bucket distribution sums to size")

		for key, want := range reference {
			got, found := hashMap.Get(key)
			assert.True(t, found, "every reference key present")
			assert.Equal(t, want, *got, "every reference value matches")
		}
	})
}

func TestVectorStress(t *testing.T) {
	t.Run("size stays within capacity under random operations", func(t *testing.T) {
		// Prepare
		v := vector.New[int64]()

		// Execute / Check
		for i := 0; i < 100000; i++ {
			switch rand.Intn(5) {
			case 0:
				v.Push(rand.Int63())
			case 1:
				if v.Len() > 0 {
					_ = v.Erase(rand.Intn(v.Len()))
				}
			case 2:
				_, _ = v.InsertN(rand.Intn(v.Len()+1), []int64{1, 2, 3})
			case 3:
				_ = v.EraseN(rand.Intn(v.Len()+1), rand.Intn(8))
			case 4:
				_ = v.Reserve(v.Len() + rand.Intn(16))
			}

			assert.LessOrEqual(t, v.Len(), v.Cap(), "size within capacity")
		}
	})
}
