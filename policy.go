package plaintext

// Policy maps tag names and class names to actions. The two tables are
// deliberately separate: tag-name rules strictly dominate class rules,
// and that precedence is part of the contract, not an implementation
// detail.
//
// A Policy is immutable once constructed and may be shared read-only
// by any number of concurrent extraction runs.
type Policy struct {
	// TagRules maps a tag name (e.g. "math") to its action.
	TagRules map[string]Action

	// ClassRules maps a class name (e.g. "ltx_note_mark") to its
	// action. Consulted only when TagRules has no entry for the tag.
	ClassRules map[string]Action
}

// Resolve returns the action for a node with the given tag name and
// class names. Resolution order:
//
//  1. Exact match in TagRules wins outright; ClassRules is never
//     consulted for a tag that has a name rule.
//  2. Otherwise the first class name, in the order supplied by the
//     caller, that has an entry in ClassRules wins. The table defines
//     no canonical priority among classes.
//  3. With no match, the default is Enter.
//
// Absence of a match is not a failure; Resolve always returns an
// action.
func (p Policy) Resolve(tagName string, classNames []string) Action {
	if action, ok := p.TagRules[tagName]; ok {
		return action
	}
	for _, class := range classNames {
		if action, ok := p.ClassRules[class]; ok {
			return action
		}
	}
	return Enter()
}

// ResolveNode resolves the action for n using its tag name and class
// names in document order.
func (p Policy) ResolveNode(n Node) Action {
	return p.Resolve(n.TagName(), n.ClassNames())
}
