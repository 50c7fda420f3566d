package util

import (
	"manhaj_backend/internal/model"
)

// ToggleRole applies one click in an allowed-roles selector and returns the
// resulting set. The sentinel "all" is mutually exclusive with any specific
// role: toggling "all" yields exactly ["all"], selecting a specific role
// clears "all", and deselecting the last specific role reverts to ["all"].
func ToggleRole(current []string, role string) []string {
	if role == model.RoleAll {
		return []string{model.RoleAll}
	}

	out := make([]string, 0, len(current)+1)
	removed := false
	for _, r := range current {
		if r == model.RoleAll {
			continue
		}
		if r == role {
			removed = true
			continue
		}
		out = append(out, r)
	}
	if !removed {
		out = append(out, role)
	}
	if len(out) == 0 {
		return []string{model.RoleAll}
	}
	return out
}

// NormalizeRoles enforces the allowed-roles invariants on a persisted set:
// never empty, deduplicated, and "all" never coexists with a specific role.
func NormalizeRoles(roles []string) []string {
	seen := make(map[string]bool, len(roles))
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		if r == "" || r == model.RoleAll || seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	if len(out) == 0 {
		return []string{model.RoleAll}
	}
	return out
}

// RolesAllow reports whether a user role may view an item with the given
// allowed-roles set.
func RolesAllow(allowed []string, role model.UserRole) bool {
	for _, r := range allowed {
		if r == model.RoleAll || r == string(role) {
			return true
		}
	}
	return false
}
