package semantic

import (
	"strings"

	lingua "github.com/hyperfixi/lingua"
)

// Metadata carries parse diagnostics alongside a node
type Metadata struct {
	SourceText    string
	TokenCount    int // non-whitespace tokens in the source
	IgnoredTokens int // tokens bound to no role and not the action
}

// ExtractionRate is the fraction of tokens consumed by the action or a
// role binding. Languages whose rate stays suspiciously low have marker
// tables worth auditing.
func (m Metadata) ExtractionRate() float64 {
	if m.TokenCount == 0 {
		return 0
	}

	return float64(m.TokenCount-m.IgnoredTokens) / float64(m.TokenCount)
}

// Node is the language-neutral representation of one command sentence.
// It is immutable once constructed; renderers never mutate it.
type Node struct {
	action lingua.Action
	roles  map[Role]Value
	meta   Metadata
}

// NewNode builds a node. The role map is copied; action must be one of the
// canonical action ids and each role appears at most once by construction.
func NewNode(action lingua.Action, roles map[Role]Value, meta Metadata) *Node {
	copied := make(map[Role]Value, len(roles))
	for role, value := range roles {
		copied[role] = value
	}

	return &Node{action: action, roles: copied, meta: meta}
}

// Action returns the canonical action id
func (n *Node) Action() lingua.Action {
	return n.action
}

// Role returns the value bound to a role, if present
func (n *Node) Role(role Role) (Value, bool) {
	value, ok := n.roles[role]
	return value, ok
}

// Roles returns the roles present on this node in canonical order
func (n *Node) Roles() []Role {
	result := make([]Role, 0, len(n.roles))

	for _, role := range roleOrder {
		if _, ok := n.roles[role]; ok {
			result = append(result, role)
		}
	}

	return result
}

// RoleCount returns the number of bound argument roles
func (n *Node) RoleCount() int {
	return len(n.roles)
}

// RoleKey returns the canonical key for the node's role set, used to pick
// a grammar template ("patient+destination").
func (n *Node) RoleKey() string {
	roles := n.Roles()
	parts := make([]string, len(roles))

	for i, role := range roles {
		parts[i] = string(role)
	}

	return strings.Join(parts, "+")
}

// Meta returns the parse diagnostics
func (n *Node) Meta() Metadata {
	return n.meta
}
