package statemachine

import (
	"testing"

	"food-ordering-api/models"
)

func TestCanSet(t *testing.T) {
	allStatuses := []models.OrderStatus{
		models.StatusPending,
		models.StatusCooking,
		models.StatusCooked,
		models.StatusPickedUp,
		models.StatusDelivered,
	}

	allowed := map[models.UserRole]map[models.OrderStatus]bool{
		models.RoleOwner: {
			models.StatusCooking: true,
			models.StatusCooked:  true,
		},
		models.RoleDelivery: {
			models.StatusPickedUp:  true,
			models.StatusDelivered: true,
		},
		models.RoleClient: {},
	}

	for role, targets := range allowed {
		for _, status := range allStatuses {
			err := CanSet(role, status)
			if targets[status] && err != nil {
				t.Errorf("%s → %s: unexpected error %v", role, status, err)
			}
			if !targets[status] && err == nil {
				t.Errorf("%s → %s: expected denial", role, status)
			}
		}
	}
}

func TestAllowedTargets(t *testing.T) {
	if got := AllowedTargets(models.RoleClient); len(got) != 0 {
		t.Errorf("client targets = %v, want none", got)
	}
	if got := AllowedTargets(models.RoleOwner); len(got) != 2 {
		t.Errorf("owner targets = %v, want 2", got)
	}
	if got := AllowedTargets(models.RoleDelivery); len(got) != 2 {
		t.Errorf("delivery targets = %v, want 2", got)
	}
}
