package generator

import (
	"fmt"

	"github.com/soulcross/soulcross/internal/domain"
)

// Generator produces reading content deterministically from the input. It is
// a pure template expansion: the same input always yields the same content.
type Generator struct{}

func New() *Generator {
	return &Generator{}
}

func names(input domain.ReadingInput) (string, string) {
	a := input.PersonA.Name
	if a == "" {
		a = "Person A"
	}
	b := input.PersonB.Name
	if b == "" {
		b = "Person B"
	}
	return a, b
}

func (g *Generator) Preview(input domain.ReadingInput) *domain.PreviewResult {
	a, b := names(input)

	return &domain.PreviewResult{
		Title: fmt.Sprintf("%s & %s: Relationship Preview", a, b),
		Summary: fmt.Sprintf(
			"%s and %s show a strong pull between emotional expression and practical stability. "+
				"The connection has real momentum, but timing and communication style need alignment.", a, b),
		Highlights: []string{
			"Natural attraction forms quickly when both feel heard.",
			"Most friction comes from different pace, not lack of care.",
		},
		UpgradeHint: "Unlock the full reading to see detailed strengths, tension triggers, and a practical plan.",
	}
}

func (g *Generator) Full(input domain.ReadingInput) *domain.FullResult {
	a, b := names(input)

	return &domain.FullResult{
		Title: fmt.Sprintf("%s & %s: Full Relationship Reading", a, b),
		Overview: fmt.Sprintf(
			"%s tends to process feelings through reflection, while %s often seeks quick clarity. "+
				"This pairing can be deeply supportive when both sides define expectations early.", a, b),
		Strengths: []string{
			"Strong potential for mutual growth through honest feedback.",
			"Complementary emotional and practical instincts.",
			"High resilience when conflicts are addressed early.",
		},
		Tensions: []string{
			"Misread silence as rejection during stress cycles.",
			"Different conflict styles can escalate small issues.",
			"Overgiving without boundaries leads to burnout.",
		},
		Guidance: []string{
			"Set a weekly 20-minute check-in with one clear agenda.",
			"Name the issue before discussing solutions.",
			"Use time-boxed pauses during heated conversations.",
			"Define one non-negotiable and one compromise from each side.",
			"Track wins to prevent a negativity-only pattern.",
		},
		FinalMessage: "This relationship works best when clarity is treated as care, not criticism. Progress comes from consistency.",
	}
}
