package checkoutservice

import (
	"testing"

	"github.com/soulcross/soulcross/internal/domain"
	"github.com/stretchr/testify/assert"
)

func keyFixture() domain.ReadingInput {
	return domain.ReadingInput{
		PersonA: domain.PersonInput{
			Name:       "Alice",
			Birthday:   "1990-01-01",
			Birthtime:  "08:30",
			Gender:     "female",
			Birthplace: "Prague",
		},
		PersonB: domain.PersonInput{
			Name:             "Bob",
			Birthday:         "1991-02-02",
			BirthtimeUnknown: true,
			Gender:           "male",
			Birthplace:       "Oslo",
		},
	}
}

func TestBuildIdempotencyKey(t *testing.T) {
	base := BuildIdempotencyKey(keyFixture(), 999, "usd")
	assert.Len(t, base, 64)

	t.Run("Deterministic across calls", func(t *testing.T) {
		assert.Equal(t, base, BuildIdempotencyKey(keyFixture(), 999, "usd"))
	})

	t.Run("Name and birthplace casing is ignored", func(t *testing.T) {
		input := keyFixture()
		input.PersonA.Name = "ALICE"
		input.PersonB.Birthplace = "OSLO"
		assert.Equal(t, base, BuildIdempotencyKey(input, 999, "usd"))
	})

	t.Run("Changed birthday produces a new key", func(t *testing.T) {
		input := keyFixture()
		input.PersonA.Birthday = "1990-01-02"
		assert.NotEqual(t, base, BuildIdempotencyKey(input, 999, "usd"))
	})

	t.Run("Changed birthtime flag produces a new key", func(t *testing.T) {
		input := keyFixture()
		input.PersonB.BirthtimeUnknown = false
		assert.NotEqual(t, base, BuildIdempotencyKey(input, 999, "usd"))
	})

	t.Run("Changed amount produces a new key", func(t *testing.T) {
		assert.NotEqual(t, base, BuildIdempotencyKey(keyFixture(), 1299, "usd"))
	})

	t.Run("Changed currency produces a new key", func(t *testing.T) {
		assert.NotEqual(t, base, BuildIdempotencyKey(keyFixture(), 999, "eur"))
	})

	t.Run("Swapped persons produce a new key", func(t *testing.T) {
		input := keyFixture()
		input.PersonA, input.PersonB = input.PersonB, input.PersonA
		assert.NotEqual(t, base, BuildIdempotencyKey(input, 999, "usd"))
	})
}

func TestReadingIdempotencyKey(t *testing.T) {
	base := readingIdempotencyKey("reading-1", 999, "usd")
	assert.Len(t, base, 64)
	assert.Equal(t, base, readingIdempotencyKey("reading-1", 999, "usd"))
	assert.NotEqual(t, base, readingIdempotencyKey("reading-2", 999, "usd"))
	assert.NotEqual(t, base, readingIdempotencyKey("reading-1", 1299, "usd"))

	// The two derivation paths never collide on shape alone.
	input := keyFixture()
	assert.NotEqual(t, BuildIdempotencyKey(input, 999, "usd"), readingIdempotencyKey("reading-1", 999, "usd"))
}
