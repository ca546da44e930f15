package organizer

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/AlienHub/file-organizer/internal/actions"
	"github.com/AlienHub/file-organizer/internal/rules"
)

// Kind identifies the category of a planned operation.
type Kind string

const (
	KindMove      Kind = "move"
	KindRename    Kind = "rename"
	KindTag       Kind = "tag"
	KindDuplicate Kind = "duplicate"
)

// MoveDetails carries everything the executor needs to perform a move
// without re-consulting the rule. Destination is already
// home-expanded.
type MoveDetails struct {
	Destination     string
	CreateIfMissing bool
	Tag             *rules.TagAction
}

// DuplicateDetails carries a duplicate group and its resolution
// policy.
type DuplicateDetails struct {
	Group         []string
	Keep          string
	TagDuplicates bool
	Label         string
}

// Operation is a planned, not-yet-applied file mutation. The planner
// produces operations; the executor is the only writer of the
// execution-state fields afterwards. Exactly one of the detail
// pointers matching Kind is set.
type Operation struct {
	RuleName string
	Kind     Kind
	Source   string

	Move      *MoveDetails
	Rename    *rules.RenameAction
	Tag       *rules.TagAction
	Duplicate *DuplicateDetails

	Executed  bool
	Succeeded bool
	Err       string
}

// Describe renders a one-line preview of the operation.
func (o *Operation) Describe() string {
	name := filepath.Base(o.Source)
	switch o.Kind {
	case KindMove:
		return fmt.Sprintf("%s -> %s", name, o.Move.Destination)
	case KindRename:
		return fmt.Sprintf("%s -> %s", name, actions.NewName(name, *o.Rename))
	case KindTag:
		return fmt.Sprintf("%s [color=%s label=%s]", name, o.Tag.Color, o.Tag.Label)
	case KindDuplicate:
		return fmt.Sprintf("%d duplicates of %s (keep %s)", len(o.Duplicate.Group), name, o.Duplicate.Keep)
	default:
		return name
	}
}

// Result pairs one executed operation with its completion time.
type Result struct {
	Operation *Operation
	Timestamp time.Time
}

// Summary counts planned operations per kind.
type Summary struct {
	Total     int
	Move      int
	Rename    int
	Tag       int
	Duplicate int
}

// Summarize tallies a planned operation list.
func Summarize(ops []*Operation) Summary {
	s := Summary{Total: len(ops)}
	for _, op := range ops {
		switch op.Kind {
		case KindMove:
			s.Move++
		case KindRename:
			s.Rename++
		case KindTag:
			s.Tag++
		case KindDuplicate:
			s.Duplicate++
		}
	}
	return s
}
