package crafting

import "fmt"

// CastActionReason explains why an action cannot be used in a status
type CastActionReason string

const (
	ReasonCraftFinished        CastActionReason = "craft_finished"
	ReasonLevelTooLow          CastActionReason = "level_too_low"
	ReasonCraftPointsNotEnough CastActionReason = "craft_points_not_enough"
	ReasonOnlyFirstStep        CastActionReason = "only_first_step"
	ReasonRequireInnerQuiet    CastActionReason = "require_inner_quiet"
	ReasonRequireInnerQuiet10  CastActionReason = "require_inner_quiet_10"
	ReasonWasteNotActive       CastActionReason = "waste_not_active"
)

// CastActionError is returned by IsActionAllowed for an illegal action
type CastActionError struct {
	Action Action
	Reason CastActionReason
}

func (e *CastActionError) Error() string {
	return fmt.Sprintf("cannot use %s: %s", e.Action, e.Reason)
}

// ErrUnknownAction indicates an action name that is not part of the ruleset
type ErrUnknownAction struct {
	Name       string
	Suggestion string
}

func (e *ErrUnknownAction) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown action: %q (did you mean %q?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("unknown action: %q", e.Name)
}

// ErrUnknownRecipeLevel indicates a recipe level missing from the level table
type ErrUnknownRecipeLevel struct {
	Level int
}

func (e *ErrUnknownRecipeLevel) Error() string {
	return fmt.Sprintf("unknown recipe level: %d", e.Level)
}
