package hashfunc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumber(t *testing.T) {
	t.Run("hashes an integer to its own value", func(t *testing.T) {
		// Execute
		h := Number(42)

		// Check
		assert.Equal(t, uint64(42), h, "identity hash")
	})

	t.Run("equal keys produce equal hash values", func(t *testing.T) {
		// Execute / Check
		assert.Equal(t, Number(int64(-7)), Number(int64(-7)), "deterministic for negative keys")
		assert.Equal(t, Number(uint16(512)), Number(uint16(512)), "deterministic across calls")
	})
}

func TestFloat(t *testing.T) {
	t.Run("hashes a float to its bit pattern", func(t *testing.T) {
		// Execute
		h := Float(1.5)

		// Check
		assert.Equal(t, uint64(0x3FF8000000000000), h, "bit pattern hash")
	})

	t.Run("distinguishes values equal under integer truncation", func(t *testing.T) {
		// Execute / Check
		assert.NotEqual(t, Float(1.0), Float(1.5), "fractional part contributes")
	})
}

func TestString(t *testing.T) {
	t.Run("equal keys produce equal hash values", func(t *testing.T) {
		// Execute
		h1 := String("separate chaining")
		h2 := String("separate chaining")

		// Check
		assert.Equal(t, h1, h2, "deterministic")
	})

	t.Run("agrees with the byte slice variant", func(t *testing.T) {
		// Execute / Check
		assert.Equal(t, String("abc"), Bytes([]byte("abc")), "same digest for same bytes")
	})
}

func TestChecksum(t *testing.T) {
	t.Run("produces the crc32 IEEE checksum", func(t *testing.T) {
		// Execute
		h := Checksum([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})

		// Check
		assert.Equal(t, Checksum([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}), h, "deterministic")
		assert.NotEqual(t, uint64(0), h, "non trivial checksum")
	})
}

func TestEqual(t *testing.T) {
	t.Run("compares comparable keys with ==", func(t *testing.T) {
		// Execute / Check
		assert.True(t, Equal(5, 5), "equal integers")
		assert.False(t, Equal(5, 6), "unequal integers")
		assert.True(t, Equal("a", "a"), "equal strings")
	})
}

func TestBytesEqual(t *testing.T) {
	t.Run("compares size and contents", func(t *testing.T) {
		// Execute / Check
		assert.True(t, BytesEqual([]byte{1, 2, 3}, []byte{1, 2, 3}), "equal slices")
		assert.False(t, BytesEqual([]byte{1, 2, 3}, []byte{1, 2}), "unequal in size")
		assert.False(t, BytesEqual([]byte{1, 2, 3}, []byte{1, 5, 3}), "unequal in contents")
	})
}
