package fake

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var referenceTime = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func TestProvider_SameSeedSameDraws(t *testing.T) {
	a := NewProvider(42, referenceTime)
	b := NewProvider(42, referenceTime)

	for range 20 {
		assert.Equal(t, a.IntBetween(1, 1000), b.IntBetween(1, 1000))
		assert.Equal(t, a.Int64N(1<<40), b.Int64N(1<<40))
		assert.Equal(t, a.Float64(), b.Float64())
		assert.Equal(t, a.Password(16), b.Password(16))
		assert.Equal(t, a.Name(), b.Name())
		assert.Equal(t, a.Email(), b.Email())
		assert.Equal(t, a.Sentence(6), b.Sentence(6))
	}
}

func TestProvider_IntBetweenBounds(t *testing.T) {
	p := NewProvider(7, referenceTime)

	for range 1000 {
		v := p.IntBetween(1, 5)
		require.GreaterOrEqual(t, v, 1)
		require.LessOrEqual(t, v, 5)
	}

	assert.Equal(t, 3, p.IntBetween(3, 3))
}

func TestProvider_Password(t *testing.T) {
	p := NewProvider(1, referenceTime)

	for range 50 {
		pw := p.Password(16)
		require.Len(t, pw, 16)
		assert.True(t, strings.ContainsAny(pw, lowerChars), pw)
		assert.True(t, strings.ContainsAny(pw, upperChars), pw)
		assert.True(t, strings.ContainsAny(pw, digitChars), pw)
		assert.True(t, strings.ContainsAny(pw, specialChars), pw)
	}

	assert.Len(t, p.Password(2), 2)
	assert.Empty(t, p.Password(0))
}

func TestProvider_TextLength(t *testing.T) {
	p := NewProvider(3, referenceTime)

	for range 100 {
		text := p.Text(200)
		assert.LessOrEqual(t, utf8.RuneCountInString(text), 200)
		assert.NotEmpty(t, text)
	}

	assert.Empty(t, p.Text(0))
	assert.LessOrEqual(t, utf8.RuneCountInString(p.Text(5)), 5)
}

func TestProvider_TextIsRandomProse(t *testing.T) {
	p := NewProvider(11, referenceTime)

	distinct := map[string]struct{}{}
	for range 500 {
		text := p.Text(200)
		assert.Contains(t, text, " ")
		assert.True(t, strings.HasSuffix(text, "."), text)
		distinct[text] = struct{}{}
	}

	assert.Greater(t, len(distinct), 450)
}

func TestProvider_TextSameSeed(t *testing.T) {
	a := NewProvider(8, referenceTime)
	b := NewProvider(8, referenceTime)

	for range 20 {
		assert.Equal(t, a.Text(200), b.Text(200))
	}
}

func TestProvider_Now(t *testing.T) {
	p := NewProvider(3, referenceTime.In(time.FixedZone("X", 3600)))
	assert.True(t, p.Now().Equal(referenceTime))
	assert.Equal(t, time.UTC, p.Now().Location())
}

func TestTruncateText(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		max      int
		expected string
	}{
		{name: "short text untouched", in: "Hello there.", max: 20, expected: "Hello there."},
		{name: "cut at word boundary", in: "alpha beta gamma", max: 12, expected: "alpha beta"},
		{name: "no boundary", in: "abcdefghij", max: 4, expected: "abcd"},
		{name: "trims surrounding space", in: "  spaced  ", max: 10, expected: "spaced"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, truncateText(tt.in, tt.max))
		})
	}
}
