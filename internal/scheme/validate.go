package scheme

import (
	"fmt"
	"net/url"

	"github.com/hay-kot/criterio"
)

const (
	expectedTiers = 3
	expectedSteps = 8
)

// Validate checks the structural invariants of the shipped content.
// It returns criterio.FieldErrors naming every offending field.
func Validate() error {
	return criterio.ValidateStruct(
		validateTiers(tiers),
		validateSteps(steps),
		criterio.Run("apply.url", ApplyURL, isAbsoluteHTTPS),
	)
}

func validateTiers(ts []AssistanceTier) error {
	var errs criterio.FieldErrorsBuilder
	if len(ts) != expectedTiers {
		errs = errs.Append("tiers", fmt.Errorf("expected %d tiers, got %d", expectedTiers, len(ts)))
	}
	for i, t := range ts {
		field := fmt.Sprintf("tiers[%d]", i)
		if t.Name == "" {
			errs = errs.Append(field+".name", fmt.Errorf("name is required"))
		}
		if len(t.Eligibility) == 0 {
			errs = errs.Append(field+".eligibility", fmt.Errorf("at least one condition is required"))
		}
		if t.Category != DisplayCategory(i) {
			errs = errs.Append(field+".category", fmt.Errorf("expected %s, got %s", DisplayCategory(i), t.Category))
		}
	}
	return errs.ToError()
}

func validateSteps(ss []ProcedureStep) error {
	var errs criterio.FieldErrorsBuilder
	if len(ss) != expectedSteps {
		errs = errs.Append("steps", fmt.Errorf("expected %d steps, got %d", expectedSteps, len(ss)))
	}
	for i, s := range ss {
		field := fmt.Sprintf("steps[%d]", i)
		if s.Position != i+1 {
			errs = errs.Append(field+".position", fmt.Errorf("expected %d, got %d", i+1, s.Position))
		}
		if s.Title == "" {
			errs = errs.Append(field+".title", fmt.Errorf("title is required"))
		}
	}
	return errs.ToError()
}

func isAbsoluteHTTPS(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "https" || u.Host == "" {
		return fmt.Errorf("must be an absolute https url: %q", raw)
	}
	return nil
}
