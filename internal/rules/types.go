package rules

// Keep policies for duplicate resolution.
const (
	KeepNewest = "newest"
	KeepOldest = "oldest"
	KeepFirst  = "first"
)

// Duplicate grouping modes.
const (
	CheckByContent = "content"
	CheckByName    = "name"
)

// Defaults applied while parsing rule files.
const (
	DefaultRuleName       = "Unnamed Rule"
	DefaultSeparator      = "-"
	DefaultDuplicateLabel = "duplicate"
)

// MoveAction relocates a matched file, optionally tagging it afterwards.
type MoveAction struct {
	Destination     string     `yaml:"move"`
	CreateIfMissing bool       `yaml:"create_if_missing"`
	Tag             *TagAction `yaml:"tag,omitempty"`
}

// RenameAction rewrites a matched file's name in place. Replace is the
// substitution for parenthesized or bracketed numeric suffixes; Prefix
// and Suffix are joined to the stem with Separator.
type RenameAction struct {
	Replace   string `yaml:"replace"`
	Prefix    string `yaml:"prefix"`
	Suffix    string `yaml:"suffix"`
	Separator string `yaml:"separator"`
}

// TagAction applies a Finder tag.
type TagAction struct {
	Color string `yaml:"color"`
	Label string `yaml:"label"`
}

// DuplicateAction describes how a duplicate group is resolved.
type DuplicateAction struct {
	Keep           string `yaml:"keep"`
	TagDuplicates  bool   `yaml:"tag_duplicates"`
	DuplicateLabel string `yaml:"duplicate_label"`
}

// Each rule category carries exactly its own action shape, so a move
// rule cannot smuggle rename fields past the type checker.

// MoveRule moves files matching its condition.
type MoveRule struct {
	Name      string     `yaml:"name"`
	Condition Condition  `yaml:"condition"`
	Action    MoveAction `yaml:"action"`
	Enabled   bool       `yaml:"enabled"`
}

// RenameRule renames files matching its condition.
type RenameRule struct {
	Name      string       `yaml:"name"`
	Condition Condition    `yaml:"condition"`
	Action    RenameAction `yaml:"action"`
	Enabled   bool         `yaml:"enabled"`
}

// TagRule tags files matching its condition.
type TagRule struct {
	Name      string    `yaml:"name"`
	Condition Condition `yaml:"condition"`
	Action    TagAction `yaml:"action"`
	Enabled   bool      `yaml:"enabled"`
}

// DuplicateRule drives duplicate detection over the duplicate scan set.
type DuplicateRule struct {
	Name    string          `yaml:"name"`
	CheckBy string          `yaml:"check_by"`
	Action  DuplicateAction `yaml:"action"`
	Enabled bool            `yaml:"enabled"`
}

// RuleSet holds the four independent rule collections, already
// filtered to enabled entries, in declared file order.
type RuleSet struct {
	Move      []MoveRule
	Rename    []RenameRule
	Tag       []TagRule
	Duplicate []DuplicateRule
}

// Empty reports whether no rules of any category were loaded.
func (s *RuleSet) Empty() bool {
	return len(s.Move) == 0 && len(s.Rename) == 0 && len(s.Tag) == 0 && len(s.Duplicate) == 0
}

// Count returns the total number of loaded rules.
func (s *RuleSet) Count() int {
	return len(s.Move) + len(s.Rename) + len(s.Tag) + len(s.Duplicate)
}
