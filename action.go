package plaintext

import "fmt"

// ActionKind identifies how a node's subtree contributes to the
// extracted plaintext.
type ActionKind int

// ActionKind constants, one per Action constructor.
const (
	ActionEnter ActionKind = iota
	ActionNormalize
	ActionNormalizeFunc
	ActionSkip
)

// Action is the decision of how a node's subtree contributes to the
// extracted plaintext. Actions are immutable values; the zero value is
// Enter.
type Action struct {
	kind  ActionKind
	token string
	fn    ReplacementFunc
}

// Enter returns the action that recurses into the node's subtree.
// This is the default when no rule matches.
func Enter() Action {
	return Action{kind: ActionEnter}
}

// Normalize returns the action that replaces the entire subtree's
// contribution with the fixed token.
func Normalize(token string) Action {
	return Action{kind: ActionNormalize, token: token}
}

// NormalizeFunc returns the action that replaces the subtree's
// contribution with the result of fn, invoked with the node at
// traversal time rather than at configuration time.
func NormalizeFunc(fn ReplacementFunc) Action {
	return Action{kind: ActionNormalizeFunc, fn: fn}
}

// Skip returns the action that contributes nothing to the output.
func Skip() Action {
	return Action{kind: ActionSkip}
}

// Kind returns the action's kind.
func (a Action) Kind() ActionKind {
	return a.kind
}

// Replacement returns the token that substitutes the node's subtree:
// the fixed token for Normalize, the callback result for
// NormalizeFunc. For Enter and Skip it returns the empty string.
func (a Action) Replacement(n Node) string {
	switch a.kind {
	case ActionNormalize:
		return a.token
	case ActionNormalizeFunc:
		return a.fn(n)
	default:
		return ""
	}
}

// String returns a debug representation of the action. Replacement
// functions are opaque and rendered without their identity.
func (a Action) String() string {
	switch a.kind {
	case ActionEnter:
		return "Enter"
	case ActionNormalize:
		return fmt.Sprintf("Normalize(%q)", a.token)
	case ActionNormalizeFunc:
		return "NormalizeFunc"
	case ActionSkip:
		return "Skip"
	default:
		return fmt.Sprintf("ActionKind(%d)", int(a.kind))
	}
}
