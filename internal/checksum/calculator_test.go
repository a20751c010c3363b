package checksum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateRaw_KnownValue(t *testing.T) {
	c := New()
	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		c.CalculateRaw(nil))
	assert.Len(t, c.CalculateRaw([]byte("archive")), 64)
}

func TestCalculateCanonical_MapOrderIndependent(t *testing.T) {
	c := New()

	a := map[string]interface{}{"b": 2, "a": 1, "nested": map[string]string{"y": "2", "x": "1"}}
	b := map[string]interface{}{"nested": map[string]string{"x": "1", "y": "2"}, "a": 1, "b": 2}

	sumA, err := c.CalculateCanonical(a)
	require.NoError(t, err)
	sumB, err := c.CalculateCanonical(b)
	require.NoError(t, err)
	assert.Equal(t, sumA, sumB)
}

func TestCalculateCanonical_DetectsChange(t *testing.T) {
	c := New()
	before, err := c.CalculateCanonical([]string{"x", "y"})
	require.NoError(t, err)
	after, err := c.CalculateCanonical([]string{"y", "x"})
	require.NoError(t, err)
	assert.NotEqual(t, before, after, "slice order is significant")
}

func TestCalculateCanonical_Unencodable(t *testing.T) {
	_, err := New().CalculateCanonical(map[string]interface{}{"ch": make(chan int)})
	assert.Error(t, err)
}

func BenchmarkCalculateCanonical(b *testing.B) {
	c := New()
	v := make(map[string]string, 100)
	for i := 0; i < 100; i++ {
		v[string(rune('a'+i%26))+string(rune('a'+i/26))] = "value"
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.CalculateCanonical(v)
	}
}
