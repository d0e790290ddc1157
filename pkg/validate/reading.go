package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/soulcross/soulcross/internal/domain"
)

var ErrMissingFields = errors.New("missing required fields")

func sanitizePerson(p domain.PersonInput) domain.PersonInput {
	gender := p.Gender
	if gender != "female" && gender != "other" {
		gender = "male"
	}
	return domain.PersonInput{
		Name:             strings.TrimSpace(p.Name),
		Birthday:         strings.TrimSpace(p.Birthday),
		Birthtime:        strings.TrimSpace(p.Birthtime),
		BirthtimeUnknown: p.BirthtimeUnknown,
		Gender:           gender,
		Birthplace:       strings.TrimSpace(p.Birthplace),
	}
}

// ReadingInput sanitizes raw person inputs and requires name and birthday
// for both persons. The returned error names every missing field.
func ReadingInput(raw domain.ReadingInput) (domain.ReadingInput, error) {
	input := domain.ReadingInput{
		PersonA: sanitizePerson(raw.PersonA),
		PersonB: sanitizePerson(raw.PersonB),
	}

	var missing []string
	if input.PersonA.Name == "" {
		missing = append(missing, "personA.name")
	}
	if input.PersonA.Birthday == "" {
		missing = append(missing, "personA.birthday")
	}
	if input.PersonB.Name == "" {
		missing = append(missing, "personB.name")
	}
	if input.PersonB.Birthday == "" {
		missing = append(missing, "personB.birthday")
	}
	if len(missing) > 0 {
		return domain.ReadingInput{}, fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(missing, ", "))
	}

	return input, nil
}
