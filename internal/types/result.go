package types

// ResultGroup bundles the catalog products matched for one slot of the
// queried switch.  Group order follows first-seen slot order in the
// SwitchBays relation; product order follows Products relation order.
type ResultGroup struct {
	Slot     Slot      `json:"slot" yaml:"slot"`
	Products []Product `json:"products" yaml:"products"`
}

// SearchKind enumerates the outcomes a search can be in from the
// presentation layer's point of view.  "Never searched" and "searched with
// zero matches" are distinct, legitimate states and render differently.
type SearchKind string

const (
	SearchKindIdle   SearchKind = "idle"
	SearchKindEmpty  SearchKind = "empty"
	SearchKindGroups SearchKind = "groups"
	SearchKindFailed SearchKind = "failed"
)

// SearchState is the full outcome handed to a renderer.
type SearchState struct {
	Kind SearchKind `json:"kind" yaml:"kind"`

	// Term is the query as searched (trimmed).  Empty for Idle.
	Term string `json:"term,omitempty" yaml:"term,omitempty"`

	// Groups holds the per-slot matches.  Non-empty only for Kind groups.
	Groups []ResultGroup `json:"groups,omitempty" yaml:"groups,omitempty"`

	// Message is the user-readable failure notice.  Set only for Kind failed.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// IdleSearch is the state before any query has been issued.
func IdleSearch() SearchState {
	return SearchState{Kind: SearchKindIdle}
}

// EmptySearch records a successful query that matched nothing.
func EmptySearch(term string) SearchState {
	return SearchState{Kind: SearchKindEmpty, Term: term}
}

// GroupsSearch records a successful query with at least one match.
func GroupsSearch(term string, groups []ResultGroup) SearchState {
	return SearchState{Kind: SearchKindGroups, Term: term, Groups: groups}
}

// FailedSearch records a query that could not be answered.
func FailedSearch(term string, message string) SearchState {
	return SearchState{Kind: SearchKindFailed, Term: term, Message: message}
}
