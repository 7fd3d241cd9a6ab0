package lingua

// Action is a canonical action identifier shared by the lexicon tables and
// the command executors. It names what a command does, never how a surface
// language spells it.
type Action string

const (
	ActionToggle      Action = "toggle"
	ActionAdd         Action = "add"
	ActionRemove      Action = "remove"
	ActionRemoveClass Action = "removeClass"
	ActionShow        Action = "show"
	ActionHide        Action = "hide"
	ActionSet         Action = "set"
	ActionGet         Action = "get"
	ActionPut         Action = "put"
	ActionAppend      Action = "append"
	ActionTake        Action = "take"
	ActionIncrement   Action = "increment"
	ActionDecrement   Action = "decrement"
	ActionLog         Action = "log"
	ActionSend        Action = "send"
	ActionTrigger     Action = "trigger"
	ActionWait        Action = "wait"
	ActionTransition  Action = "transition"
	ActionGo          Action = "go"
	ActionCall        Action = "call"
	ActionFocus       Action = "focus"
	ActionBlur        Action = "blur"
	ActionReturn      Action = "return"
)

// actionOrder is the closed command vocabulary in a stable order.
var actionOrder = []Action{
	ActionToggle, ActionAdd, ActionRemove, ActionRemoveClass,
	ActionShow, ActionHide, ActionSet, ActionGet, ActionPut,
	ActionAppend, ActionTake, ActionIncrement, ActionDecrement,
	ActionLog, ActionSend, ActionTrigger, ActionWait, ActionTransition,
	ActionGo, ActionCall, ActionFocus, ActionBlur, ActionReturn,
}

var actionSet = func() map[Action]struct{} {
	m := make(map[Action]struct{}, len(actionOrder))
	for _, a := range actionOrder {
		m[a] = struct{}{}
	}

	return m
}()

// Actions returns the canonical command vocabulary in a stable order.
func Actions() []Action {
	result := make([]Action, len(actionOrder))
	copy(result, actionOrder)

	return result
}

// IsValidAction reports whether a is part of the canonical vocabulary.
func IsValidAction(a Action) bool {
	_, ok := actionSet[a]
	return ok
}
