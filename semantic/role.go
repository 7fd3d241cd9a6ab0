package semantic

// Role is a semantic slot a command argument fills, independent of surface
// wording. The enum is closed: parser and renderer switch over it
// exhaustively.
type Role string

const (
	RoleAction      Role = "action"
	RoleAgent       Role = "agent"
	RolePatient     Role = "patient"
	RoleInstrument  Role = "instrument"
	RoleDestination Role = "destination"
	RoleSource      Role = "source"
	RoleTheme       Role = "theme"
	RoleTrigger     Role = "trigger"
	RoleCondition   Role = "condition"
	RoleDuration    Role = "duration"
	RoleValue       Role = "value"
	RoleAttribute   Role = "attribute"
)

// roleOrder fixes the canonical ordering used for template keys and
// default rendering.
var roleOrder = []Role{
	RoleAgent, RolePatient, RoleValue, RoleDestination, RoleSource,
	RoleInstrument, RoleAttribute, RoleTheme, RoleDuration, RoleTrigger,
	RoleCondition,
}

var roleSet = func() map[Role]struct{} {
	m := make(map[Role]struct{}, len(roleOrder)+1)
	m[RoleAction] = struct{}{}

	for _, r := range roleOrder {
		m[r] = struct{}{}
	}

	return m
}()

// ArgumentRoles returns every role other than action, in canonical order.
func ArgumentRoles() []Role {
	result := make([]Role, len(roleOrder))
	copy(result, roleOrder)

	return result
}

// IsValidRole reports whether r belongs to the closed role enum.
func IsValidRole(r Role) bool {
	_, ok := roleSet[r]
	return ok
}
