package organizer

import (
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/AlienHub/file-organizer/internal/rules"
	"github.com/AlienHub/file-organizer/internal/utils"
)

// FileLister enumerates regular files under a path.
type FileLister interface {
	ListFiles(path string) []string
}

// Grouper finds duplicate groups among a file list.
type Grouper interface {
	FindDuplicates(files []string, checkBy string) [][]string
}

// Planner walks rule sets against scanned files and produces an
// ordered list of pending operations. Planning never mutates the
// filesystem; identical rules over an identical filesystem state plan
// identically.
type Planner struct {
	fs      afero.Fs
	logger  zerolog.Logger
	lister  FileLister
	grouper Grouper

	// Rename and tag rules ignore their condition's path and scan
	// these directories instead; duplicate rules use the narrower
	// duplicateScanPaths set. Move rules scan their own path scope.
	defaultScanPaths   []string
	duplicateScanPaths []string
}

// NewPlanner creates a Planner.
func NewPlanner(fs afero.Fs, logger zerolog.Logger, lister FileLister, grouper Grouper, defaultScanPaths, duplicateScanPaths []string) *Planner {
	return &Planner{
		fs:                 fs,
		logger:             logger,
		lister:             lister,
		grouper:            grouper,
		defaultScanPaths:   defaultScanPaths,
		duplicateScanPaths: duplicateScanPaths,
	}
}

// Plan builds the pending operation list in fixed category order:
// move, rename, tag, duplicate. Within a category rules apply in file
// order; within a rule, files in scan order. The same order drives
// preview and execution.
func (p *Planner) Plan(set *rules.RuleSet) []*Operation {
	var ops []*Operation

	for i := range set.Move {
		ops = append(ops, p.planMove(&set.Move[i])...)
	}
	for i := range set.Rename {
		ops = append(ops, p.planRename(&set.Rename[i])...)
	}
	for i := range set.Tag {
		ops = append(ops, p.planTag(&set.Tag[i])...)
	}
	for i := range set.Duplicate {
		ops = append(ops, p.planDuplicate(&set.Duplicate[i])...)
	}

	return ops
}

// planMove scans only the rule's declared path scope. A move rule
// without a path has no source scope and plans nothing.
func (p *Planner) planMove(rule *rules.MoveRule) []*Operation {
	if rule.Condition.Path == "" {
		p.logger.Info().Str("rule", rule.Name).Msg("move rule has no path scope, skipping")
		return nil
	}

	var ops []*Operation
	for _, path := range p.lister.ListFiles(rule.Condition.Path) {
		if !rule.Condition.Matches(p.fs, path) {
			continue
		}
		ops = append(ops, &Operation{
			RuleName: rule.Name,
			Kind:     KindMove,
			Source:   path,
			Move: &MoveDetails{
				Destination:     utils.ExpandUser(rule.Action.Destination),
				CreateIfMissing: rule.Action.CreateIfMissing,
				Tag:             rule.Action.Tag,
			},
		})
	}
	return ops
}

// planRename scans the fixed default directories and filters by the
// condition, regardless of the condition's path field.
func (p *Planner) planRename(rule *rules.RenameRule) []*Operation {
	var ops []*Operation
	for _, scanPath := range p.defaultScanPaths {
		for _, path := range p.lister.ListFiles(scanPath) {
			if !rule.Condition.Matches(p.fs, path) {
				continue
			}
			action := rule.Action
			ops = append(ops, &Operation{
				RuleName: rule.Name,
				Kind:     KindRename,
				Source:   path,
				Rename:   &action,
			})
		}
	}
	return ops
}

func (p *Planner) planTag(rule *rules.TagRule) []*Operation {
	var ops []*Operation
	for _, scanPath := range p.defaultScanPaths {
		for _, path := range p.lister.ListFiles(scanPath) {
			if !rule.Condition.Matches(p.fs, path) {
				continue
			}
			action := rule.Action
			ops = append(ops, &Operation{
				RuleName: rule.Name,
				Kind:     KindTag,
				Source:   path,
				Tag:      &action,
			})
		}
	}
	return ops
}

// planDuplicate concatenates the duplicate scan set and hands the
// whole list to the grouper. One operation is planned per group, with
// the group's first member as the nominal source.
func (p *Planner) planDuplicate(rule *rules.DuplicateRule) []*Operation {
	var all []string
	for _, scanPath := range p.duplicateScanPaths {
		all = append(all, p.lister.ListFiles(scanPath)...)
	}

	var ops []*Operation
	for _, group := range p.grouper.FindDuplicates(all, rule.CheckBy) {
		ops = append(ops, &Operation{
			RuleName: rule.Name,
			Kind:     KindDuplicate,
			Source:   group[0],
			Duplicate: &DuplicateDetails{
				Group:         group,
				Keep:          rule.Action.Keep,
				TagDuplicates: rule.Action.TagDuplicates,
				Label:         rule.Action.DuplicateLabel,
			},
		})
	}
	return ops
}
