package rules

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

func newTestParser(t *testing.T, files map[string]string) *Parser {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, content := range files {
		assert.NoError(t, afero.WriteFile(fs, "/rules/"+name, []byte(content), 0o644))
	}
	return NewParser(fs, "/rules", zerolog.Nop())
}

func TestParser_MissingFilesYieldEmptySet(t *testing.T) {
	parser := newTestParser(t, nil)

	set, err := parser.LoadAll()
	assert.NoError(t, err)
	assert.True(t, set.Empty())
	assert.Equal(t, 0, set.Count())
}

func TestParser_LoadMoveRules(t *testing.T) {
	parser := newTestParser(t, map[string]string{
		MoveRulesFile: `
rules:
  - name: "PDFs"
    condition:
      path: "~/Downloads"
      extension: ["pdf"]
    action:
      move: "~/Documents/PDFs"
      create_if_missing: true
      tag:
        color: "blue"
        label: "archived"
  - name: "Disabled one"
    enabled: false
    condition:
      path: "~/Desktop"
    action:
      move: "~/Documents"
`,
	})

	move, err := parser.LoadMoveRules()
	assert.NoError(t, err)
	assert.Len(t, move, 1, "disabled rules are filtered at load")

	rule := move[0]
	assert.Equal(t, "PDFs", rule.Name)
	assert.True(t, rule.Enabled)
	assert.Equal(t, "~/Downloads", rule.Condition.Path)
	assert.Equal(t, "~/Documents/PDFs", rule.Action.Destination)
	assert.True(t, rule.Action.CreateIfMissing)
	assert.Equal(t, "blue", rule.Action.Tag.Color)
	assert.Equal(t, "archived", rule.Action.Tag.Label)
}

func TestParser_EnabledDefaultsTrue(t *testing.T) {
	parser := newTestParser(t, map[string]string{
		TagRulesFile: `
rules:
  - name: "Big files"
    condition:
      size_gt: "100MB"
    action:
      color: "red"
      label: "large"
`,
	})

	tags, err := parser.LoadTagRules()
	assert.NoError(t, err)
	assert.Len(t, tags, 1)
	assert.True(t, tags[0].Enabled)
	assert.Equal(t, ByteSize(100*1024*1024), tags[0].Condition.SizeGT)
}

func TestParser_MalformedEntrySkipped(t *testing.T) {
	parser := newTestParser(t, map[string]string{
		RenameRulesFile: `
rules:
  - "not a mapping at all"
  - name: "Good one"
    condition:
      pattern: "\\(\\d+\\)"
    action:
      replace: ""
      prefix: "IMG"
`,
	})

	rename, err := parser.LoadRenameRules()
	assert.NoError(t, err, "a malformed entry never fails the load")
	assert.Len(t, rename, 1)
	assert.Equal(t, "Good one", rename[0].Name)
	assert.Equal(t, DefaultSeparator, rename[0].Action.Separator)
}

func TestParser_DuplicateRuleDefaults(t *testing.T) {
	parser := newTestParser(t, map[string]string{
		DuplicateRulesFile: `
rules:
  - name: "Dedup"
    action: {}
  - name: "By name"
    check_by: "name"
    action:
      keep: "oldest"
      tag_duplicates: true
      duplicate_label: "dup"
`,
	})

	duplicate, err := parser.LoadDuplicateRules()
	assert.NoError(t, err)
	assert.Len(t, duplicate, 2)

	assert.Equal(t, CheckByContent, duplicate[0].CheckBy)
	assert.Equal(t, KeepNewest, duplicate[0].Action.Keep)
	assert.Equal(t, DefaultDuplicateLabel, duplicate[0].Action.DuplicateLabel)
	assert.False(t, duplicate[0].Action.TagDuplicates)

	assert.Equal(t, CheckByName, duplicate[1].CheckBy)
	assert.Equal(t, KeepOldest, duplicate[1].Action.Keep)
	assert.True(t, duplicate[1].Action.TagDuplicates)
}

func TestParser_UnparseableFileErrors(t *testing.T) {
	parser := newTestParser(t, map[string]string{
		MoveRulesFile: "rules: [:::",
	})

	_, err := parser.LoadMoveRules()
	assert.Error(t, err)
}

func TestParser_DeclaredOrderPreserved(t *testing.T) {
	parser := newTestParser(t, map[string]string{
		MoveRulesFile: `
rules:
  - name: "first"
    condition: {path: "/a"}
    action: {move: "/x"}
  - name: "second"
    condition: {path: "/b"}
    action: {move: "/y"}
  - name: "third"
    condition: {path: "/c"}
    action: {move: "/z"}
`,
	})

	move, err := parser.LoadMoveRules()
	assert.NoError(t, err)
	assert.Len(t, move, 3)
	assert.Equal(t, []string{"first", "second", "third"},
		[]string{move[0].Name, move[1].Name, move[2].Name})
}
