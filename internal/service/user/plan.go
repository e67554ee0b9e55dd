package user

import (
	"user-management-api/internal/validation"
)

type PlanKind int

const (
	PlanRejected PlanKind = iota
	PlanBulkReassign
	PlanSingleFieldUpdate
	PlanHistoryReassign
)

func (k PlanKind) String() string {
	switch k {
	case PlanBulkReassign:
		return "bulk_reassign"
	case PlanSingleFieldUpdate:
		return "single_field_update"
	case PlanHistoryReassign:
		return "history_reassign"
	default:
		return "rejected"
	}
}

// UpdatePlan is the decision taken for an update request before any store access.
type UpdatePlan struct {
	Kind    PlanKind
	UserIDs []string
	Payload validation.UpdatePayload
}

// NewUpdatePlan picks the update strategy. Only a manager_id-only payload may
// target more than one user; a single user with a manager_id change keeps
// history; anything else is an in-place update of one row.
func NewUpdatePlan(userIDs []string, payload validation.UpdatePayload) UpdatePlan {
	plan := UpdatePlan{UserIDs: userIDs, Payload: payload}

	switch {
	case len(userIDs) > 1 && payload.OnlyManagerID():
		plan.Kind = PlanBulkReassign
	case len(userIDs) > 1:
		plan.Kind = PlanRejected
	case payload.ManagerID != nil:
		plan.Kind = PlanHistoryReassign
	default:
		plan.Kind = PlanSingleFieldUpdate
	}

	return plan
}
