package authz

import (
	"toolhub/internal/apperr"
	"toolhub/internal/model"
)

// Action names a privileged operation.
type Action string

const (
	// ActionListUsers lists every account.
	ActionListUsers Action = "users:list"
	// ActionDeleteUser deletes another account.
	ActionDeleteUser Action = "users:delete"
	// ActionToggleAdmin flips another account's admin flag.
	ActionToggleAdmin Action = "users:toggle-admin"
)

// Policy decides whether a caller may perform a privileged action. All role
// checks live here instead of being scattered across handlers.
type Policy struct {
	// adminToggleOpen relaxes ActionToggleAdmin to any authenticated caller.
	adminToggleOpen bool
}

// NewPolicy creates a policy. adminToggleOpen mirrors the ADMIN_TOGGLE_OPEN
// config flag.
func NewPolicy(adminToggleOpen bool) *Policy {
	return &Policy{adminToggleOpen: adminToggleOpen}
}

// Allow returns nil when the caller may perform the action, a Forbidden error
// otherwise. A nil caller is always denied.
func (p *Policy) Allow(caller *model.User, action Action) error {
	if caller == nil {
		return apperr.Forbidden("You are not authorized to perform this action")
	}

	switch action {
	case ActionListUsers:
		if caller.IsAdmin || caller.IsSuperAdmin {
			return nil
		}
		return apperr.Forbidden("You are not authorized to list users")
	case ActionDeleteUser:
		if caller.IsSuperAdmin {
			return nil
		}
		return apperr.Forbidden("You are not authorized to delete this user")
	case ActionToggleAdmin:
		if p.adminToggleOpen || caller.IsSuperAdmin {
			return nil
		}
		return apperr.Forbidden("You are not authorized to change admin status")
	default:
		return apperr.Forbidden("You are not authorized to perform this action")
	}
}
