package model

// DecisionKind enumerates the replies a decision source can give.
type DecisionKind string

// Available DecisionKind values.
const (
	DecisionAccept       DecisionKind = "accept"
	DecisionReject       DecisionKind = "reject"
	DecisionAcceptCustom DecisionKind = "custom"
	DecisionToggleDocs   DecisionKind = "docs"
	DecisionStop         DecisionKind = "stop"
)

// Decision is the outcome of one query. Name is only set for
// DecisionAcceptCustom.
type Decision struct {
	Kind DecisionKind
	Name string
}

// Mode selects where decisions come from.
type Mode string

// Available Mode values.
const (
	ModeInteractive   Mode = "interactive"
	ModeAcceptAll     Mode = "yes-to-all"
	ModeDefaultPolicy Mode = "yes-no-default"
)

// Query is everything a decision source gets to see for one occurrence.
type Query struct {
	Occurrence Occurrence
	// Affected lists every module the rename would modify.
	Affected []Path
	Warnings []Warning
	Diff     string
	Docs     bool
}

// Suggested returns the reply an empty answer stands for: accept when the
// rename raised no warning, reject otherwise.
func (q Query) Suggested() DecisionKind {
	if len(q.Warnings) == 0 {
		return DecisionAccept
	}

	return DecisionReject
}
