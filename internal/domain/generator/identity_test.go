package generator

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	domainerrors "rentgen/internal/domain/errors"
	"rentgen/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userIDPattern = regexp.MustCompile(`^U\d{9}$`)

func TestUsers_CountAndIDs(t *testing.T) {
	for _, n := range []int{0, 1, 3, 250} {
		users, err := Users(newTestProvider(1), n)
		require.NoError(t, err)
		require.Len(t, users, n)

		seen := make(map[string]struct{}, n)
		for i, u := range users {
			assert.Regexp(t, userIDPattern, u.ID)
			assert.Equal(t, fmt.Sprintf("U%09d", i), u.ID)
			_, dup := seen[u.ID]
			assert.False(t, dup, "duplicate id %s", u.ID)
			seen[u.ID] = struct{}{}
		}
	}
}

func TestUsers_Fields(t *testing.T) {
	users, err := Users(newTestProvider(2), 200)
	require.NoError(t, err)

	for _, u := range users {
		assert.Len(t, u.Password, passwordLength)
		assert.NotEmpty(t, u.Name)
		assert.NotEmpty(t, u.Phone)
		assert.Contains(t, u.Email, "@")

		age := ageAt(u.Birth, referenceTime)
		assert.GreaterOrEqual(t, age, minAge, "birth %s", u.Birth)
		assert.LessOrEqual(t, age, maxAge, "birth %s", u.Birth)
		assert.Zero(t, u.Birth.Hour())
	}
}

func TestUsers_NegativeCount(t *testing.T) {
	_, err := Users(newTestProvider(1), -1)
	assert.True(t, errors.Is(err, domainerrors.ErrNegativeCount))
}

func ageAt(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}

	return age
}
