package semantic

import lingua "github.com/hyperfixi/lingua"

// Binding is one argument of a converted statement
type Binding struct {
	Value      string
	IsSelector bool
}

// Statement is the shape the main DSL parser produces for a command. The
// command executors consume it without knowing whether it came from direct
// parsing or from the semantic bridge.
type Statement struct {
	Type   string
	Action lingua.Action
	Roles  map[Role]Binding
}

// Statement converts the node into the executor-facing statement shape.
func (n *Node) Statement() Statement {
	roles := make(map[Role]Binding, len(n.roles))

	for role, value := range n.roles {
		binding := Binding{Value: value.Surface()}

		switch v := value.(type) {
		case Selector:
			binding.IsSelector = true
		case PropertyPath:
			if _, ok := v.Object.(Selector); ok {
				binding.IsSelector = true
			}
		case Reference, Literal:
		}

		roles[role] = binding
	}

	return Statement{
		Type:   "command",
		Action: n.action,
		Roles:  roles,
	}
}
