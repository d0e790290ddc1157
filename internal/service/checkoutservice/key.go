package checkoutservice

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/soulcross/soulcross/internal/domain"
)

type keyPerson struct {
	Name             string `json:"name"`
	Birthday         string `json:"birthday"`
	Birthtime        string `json:"birthtime"`
	BirthtimeUnknown bool   `json:"birthtimeUnknown"`
	Gender           string `json:"gender"`
	Birthplace       string `json:"birthplace"`
}

type keyInput struct {
	PersonA keyPerson `json:"personA"`
	PersonB keyPerson `json:"personB"`
}

func normalizePerson(p domain.PersonInput) keyPerson {
	return keyPerson{
		Name:             strings.ToLower(p.Name),
		Birthday:         p.Birthday,
		Birthtime:        p.Birthtime,
		BirthtimeUnknown: p.BirthtimeUnknown,
		Gender:           p.Gender,
		Birthplace:       strings.ToLower(p.Birthplace),
	}
}

// BuildIdempotencyKey derives the checkout dedup key from the normalized
// person inputs plus price. Identical logical submissions hash to the same
// key; any changed field, amount, or currency produces a different one.
func BuildIdempotencyKey(input domain.ReadingInput, amountCents int64, currency string) string {
	normalized, _ := json.Marshal(keyInput{
		PersonA: normalizePerson(input.PersonA),
		PersonB: normalizePerson(input.PersonB),
	})
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%d|%s", normalized, amountCents, currency)))
	return hex.EncodeToString(sum[:])
}

// readingIdempotencyKey covers the checkout-from-existing-reading path,
// where the reading id already pins the person inputs.
func readingIdempotencyKey(readingID string, amountCents int64, currency string) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%d|%s", readingID, amountCents, currency)))
	return hex.EncodeToString(sum[:])
}
