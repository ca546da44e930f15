package organizer

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/AlienHub/file-organizer/internal/actions"
	"github.com/AlienHub/file-organizer/internal/rules"
)

// Mover relocates a file and returns its final path.
type Mover interface {
	Move(source, destination string) (string, error)
}

// Renamer applies a rename action to a file in place.
type Renamer interface {
	Rename(path string, action rules.RenameAction) (string, error)
}

// Resolver disposes of the non-kept members of a duplicate group.
type Resolver interface {
	Resolve(group []string, keep string, tagDuplicates bool, label string)
}

// Recorder persists operation results. A nil Recorder disables
// journaling.
type Recorder interface {
	Record(res Result) error
}

// Executor applies planned operations through its collaborators. A
// failure in one operation is captured into that operation's state
// and never stops the rest of the batch.
type Executor struct {
	fs       afero.Fs
	logger   zerolog.Logger
	dryRun   bool
	mover    Mover
	renamer  Renamer
	tagger   actions.Tagger
	resolver Resolver
	recorder Recorder
	now      func() time.Time
}

// NewExecutor creates an Executor. dryRun makes Execute a no-op.
func NewExecutor(fs afero.Fs, logger zerolog.Logger, dryRun bool, mover Mover, renamer Renamer, tagger actions.Tagger, resolver Resolver, recorder Recorder) *Executor {
	return &Executor{
		fs:       fs,
		logger:   logger,
		dryRun:   dryRun,
		mover:    mover,
		renamer:  renamer,
		tagger:   tagger,
		resolver: resolver,
		recorder: recorder,
		now:      time.Now,
	}
}

// Execute applies the planned operations and returns one result per
// executed operation. In dry-run mode nothing is executed and the
// result list is empty; the plan itself is the preview.
func (e *Executor) Execute(ops []*Operation) []Result {
	if e.dryRun {
		e.logger.Info().Msg("dry run mode - no operations will be executed")
		return nil
	}

	var results []Result
	for _, op := range ops {
		err := e.execute(op)

		op.Executed = true
		if err != nil {
			op.Succeeded = false
			op.Err = err.Error()
			e.logger.Error().Str("rule", op.RuleName).Str("kind", string(op.Kind)).
				Str("source", op.Source).Err(err).Msg("operation failed")
		} else {
			op.Succeeded = true
			e.logger.Info().Str("rule", op.RuleName).Str("kind", string(op.Kind)).
				Str("source", op.Source).Msg("operation succeeded")
		}

		res := Result{Operation: op, Timestamp: e.now()}
		results = append(results, res)

		if e.recorder != nil {
			if err := e.recorder.Record(res); err != nil {
				// Journaling is best effort; a write failure is not
				// an execution failure.
				e.logger.Warn().Err(err).Msg("failed to record operation result")
			}
		}
	}

	return results
}

func (e *Executor) execute(op *Operation) error {
	switch op.Kind {
	case KindMove:
		return e.executeMove(op)
	case KindRename:
		_, err := e.renamer.Rename(op.Source, *op.Rename)
		return err
	case KindTag:
		return e.tagger.AddTag(op.Source, op.Tag.Color, op.Tag.Label)
	case KindDuplicate:
		d := op.Duplicate
		e.resolver.Resolve(d.Group, d.Keep, d.TagDuplicates, d.Label)
		return nil
	default:
		return fmt.Errorf("unsupported operation kind: %s", op.Kind)
	}
}

func (e *Executor) executeMove(op *Operation) error {
	details := op.Move

	if details.CreateIfMissing {
		if err := e.fs.MkdirAll(details.Destination, 0o755); err != nil {
			return fmt.Errorf("failed to create destination directory: %w", err)
		}
	}

	finalPath, err := e.mover.Move(op.Source, details.Destination)
	if err != nil {
		return err
	}

	// The tag is a dependent sub-step: its failure is reported but
	// does not undo or fail the completed move.
	if details.Tag != nil {
		if err := e.tagger.AddTag(finalPath, details.Tag.Color, details.Tag.Label); err != nil {
			e.logger.Warn().Str("path", finalPath).Err(err).Msg("failed to tag moved file")
		}
	}

	return nil
}
