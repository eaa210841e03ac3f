package statemachine

import (
	"errors"

	"food-ordering-api/models"
)

// Rule defines a status a given role is allowed to set on an order.
type Rule struct {
	Role   models.UserRole
	Target models.OrderStatus
}

// rules is the authoritative definition: owners drive the kitchen half of
// the lifecycle, drivers the delivery half, customers none of it. The
// machine gates only the target status per role; it does not require the
// order to be in the immediately preceding state.
var rules = []Rule{
	{Role: models.RoleOwner, Target: models.StatusCooking},
	{Role: models.RoleOwner, Target: models.StatusCooked},
	{Role: models.RoleDelivery, Target: models.StatusPickedUp},
	{Role: models.RoleDelivery, Target: models.StatusDelivered},
}

type ruleKey struct {
	Role   models.UserRole
	Target models.OrderStatus
}

// Build a lookup map for O(1) validation
var ruleMap = func() map[ruleKey]bool {
	m := make(map[ruleKey]bool)
	for _, r := range rules {
		m[ruleKey{r.Role, r.Target}] = true
	}
	return m
}()

// AllowedTargets returns every status the role may set.
func AllowedTargets(role models.UserRole) []models.OrderStatus {
	var targets []models.OrderStatus
	for _, r := range rules {
		if r.Role == role {
			targets = append(targets, r.Target)
		}
	}
	return targets
}

// CanSet checks whether the role may move an order to the target status.
func CanSet(role models.UserRole, target models.OrderStatus) error {
	if ruleMap[ruleKey{Role: role, Target: target}] {
		return nil
	}
	return errors.New(
		"role '" + string(role) + "' may not set status '" + string(target) +
			"'. Allowed: " + describeAllowed(role),
	)
}

func describeAllowed(role models.UserRole) string {
	targets := AllowedTargets(role)
	if len(targets) == 0 {
		return "none"
	}
	result := ""
	for i, s := range targets {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// AllRules returns the full rule set for documentation endpoints.
func AllRules() []Rule {
	return rules
}
