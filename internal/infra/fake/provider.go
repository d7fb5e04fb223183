// Package fake implements service.Provider on top of github.com/jaswdr/faker.
package fake

import (
	mathrand "math/rand"
	"math/rand/v2"
	"strings"
	"time"
	"unicode/utf8"

	"rentgen/internal/domain/service"

	"github.com/jaswdr/faker"
)

const (
	lowerChars   = "abcdefghijklmnopqrstuvwxyz"
	upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars   = "0123456789"
	specialChars = "!@#$%^&*()_+"
	passwordSet  = lowerChars + upperChars + digitChars + specialChars
)

// word count range of the sentences Text is built from
const (
	minSentenceWords = 3
	maxSentenceWords = 12
)

// provider splits its draws over two seeded sources: faker for text fields and a
// PCG generator for numbers, dates and choices. Both derive from the same seed.
type provider struct {
	faker faker.Faker
	rng   *rand.Rand
	now   time.Time
}

// NewProvider returns a Provider that is fully determined by seed and now.
func NewProvider(seed int64, now time.Time) service.Provider {
	return &provider{
		faker: faker.NewWithSeed(mathrand.NewSource(seed)),
		rng:   rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)),
		now:   now.UTC(),
	}
}

// NewSeed returns a fresh seed for runs that did not ask for one.
func NewSeed() int64 {
	return rand.Int64()
}

func (p *provider) IntBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}

	return lo + p.rng.IntN(hi-lo+1)
}

func (p *provider) Int64N(n int64) int64 {
	return p.rng.Int64N(n)
}

func (p *provider) Float64() float64 {
	return p.rng.Float64()
}

func (p *provider) Now() time.Time {
	return p.now
}

// Password returns length characters with at least one lowercase letter,
// uppercase letter, digit and special character when length allows it.
func (p *provider) Password(length int) string {
	if length <= 0 {
		return ""
	}

	out := make([]byte, 0, length)
	for _, class := range []string{lowerChars, upperChars, digitChars, specialChars} {
		if len(out) == length {
			break
		}
		out = append(out, class[p.rng.IntN(len(class))])
	}
	for len(out) < length {
		out = append(out, passwordSet[p.rng.IntN(len(passwordSet))])
	}
	p.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})

	return string(out)
}

func (p *provider) Name() string {
	return p.faker.Person().Name()
}

func (p *provider) PhoneNumber() string {
	return p.faker.Phone().Number()
}

func (p *provider) Email() string {
	return p.faker.Internet().Email()
}

func (p *provider) Sentence(words int) string {
	return p.faker.Lorem().Sentence(words)
}

// Text joins random sentences while they fit in maxChars. A first sentence
// longer than maxChars is cut at a word boundary.
func (p *provider) Text(maxChars int) string {
	if maxChars <= 0 {
		return ""
	}

	text := ""
	for {
		sentence := p.faker.Lorem().Sentence(p.rng.IntN(maxSentenceWords-minSentenceWords+1) + minSentenceWords)
		if text == "" {
			if utf8.RuneCountInString(sentence) > maxChars {
				return truncateText(sentence, maxChars)
			}
			text = sentence

			continue
		}

		if utf8.RuneCountInString(text)+1+utf8.RuneCountInString(sentence) > maxChars {
			return text
		}
		text += " " + sentence
	}
}

// truncateText cuts s to at most maxChars runes, preferring a word boundary.
func truncateText(s string, maxChars int) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= maxChars {
		return s
	}

	runes := []rune(s)[:maxChars]
	cut := string(runes)
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}

	return strings.TrimRight(cut, " ,;:")
}
