package common

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/andrescamacho/craftsolver-go/internal/domain/crafting"
	"github.com/andrescamacho/craftsolver-go/internal/domain/shared"
)

var validate = validator.New()

// ValidateStruct runs the struct's validate tags and reports the first
// violation as a *shared.ValidationError.
func ValidateStruct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		e := fieldErrs[0]
		return shared.NewValidationError(e.Namespace(), fmt.Sprintf("failed %s=%s (value: %v)", e.Tag(), e.Param(), e.Value()))
	}
	return err
}

// ValidateStatus checks the status fields and that its remaining resources fit
// inside the recipe and attribute maxima.
func ValidateStatus(s crafting.Status) error {
	if err := ValidateStruct(s); err != nil {
		return err
	}
	if s.Durability > s.Recipe.Durability {
		return shared.NewValidationError("Status.Durability",
			fmt.Sprintf("%d exceeds recipe durability %d", s.Durability, s.Recipe.Durability))
	}
	if s.CraftPoints > s.Attributes.CraftPoints {
		return shared.NewValidationError("Status.CraftPoints",
			fmt.Sprintf("%d exceeds attribute craft points %d", s.CraftPoints, s.Attributes.CraftPoints))
	}
	return nil
}

// ValidateActions rejects values outside the action enumeration.
func ValidateActions(field string, actions []crafting.Action) error {
	for i, a := range actions {
		if !a.Valid() {
			return shared.NewValidationError(fmt.Sprintf("%s[%d]", field, i), fmt.Sprintf("unknown action %d", int(a)))
		}
	}
	return nil
}

// ValidateTableActions additionally rejects openers. Tables are filled past
// the first step, so an opener in a subset would never be chosen.
func ValidateTableActions(field string, actions []crafting.Action) error {
	if err := ValidateActions(field, actions); err != nil {
		return err
	}
	for i, a := range actions {
		if a.IsOpener() {
			return shared.NewValidationError(fmt.Sprintf("%s[%d]", field, i),
				fmt.Sprintf("%s is only usable on the first step and cannot be planned by the solver", a))
		}
	}
	return nil
}
