package rules

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Rule file names, one per category.
const (
	MoveRulesFile      = "move.yaml"
	RenameRulesFile    = "rename.yaml"
	TagRulesFile       = "tag.yaml"
	DuplicateRulesFile = "duplicate.yaml"
)

// Parser loads YAML rule files from a rules directory. Malformed
// entries are skipped with a diagnostic; a missing file yields an
// empty collection. Disabled rules are filtered out at load time.
type Parser struct {
	fs       afero.Fs
	rulesDir string
	logger   zerolog.Logger
}

// NewParser creates a rule parser rooted at rulesDir.
func NewParser(fs afero.Fs, rulesDir string, logger zerolog.Logger) *Parser {
	return &Parser{fs: fs, rulesDir: rulesDir, logger: logger}
}

// LoadAll loads all four rule collections.
func (p *Parser) LoadAll() (*RuleSet, error) {
	move, err := p.LoadMoveRules()
	if err != nil {
		return nil, err
	}
	rename, err := p.LoadRenameRules()
	if err != nil {
		return nil, err
	}
	tag, err := p.LoadTagRules()
	if err != nil {
		return nil, err
	}
	duplicate, err := p.LoadDuplicateRules()
	if err != nil {
		return nil, err
	}
	return &RuleSet{Move: move, Rename: rename, Tag: tag, Duplicate: duplicate}, nil
}

// LoadMoveRules loads rules from move.yaml.
func (p *Parser) LoadMoveRules() ([]MoveRule, error) {
	nodes, err := p.loadRuleNodes(MoveRulesFile)
	if err != nil {
		return nil, err
	}

	var out []MoveRule
	for i := range nodes {
		rule := MoveRule{Name: DefaultRuleName, Enabled: true}
		if err := nodes[i].Decode(&rule); err != nil {
			p.warnSkipped(MoveRulesFile, i, err)
			continue
		}
		if rule.Enabled {
			out = append(out, rule)
		}
	}
	return out, nil
}

// LoadRenameRules loads rules from rename.yaml.
func (p *Parser) LoadRenameRules() ([]RenameRule, error) {
	nodes, err := p.loadRuleNodes(RenameRulesFile)
	if err != nil {
		return nil, err
	}

	var out []RenameRule
	for i := range nodes {
		rule := RenameRule{
			Name:    DefaultRuleName,
			Enabled: true,
			Action:  RenameAction{Separator: DefaultSeparator},
		}
		if err := nodes[i].Decode(&rule); err != nil {
			p.warnSkipped(RenameRulesFile, i, err)
			continue
		}
		if rule.Action.Separator == "" {
			rule.Action.Separator = DefaultSeparator
		}
		if rule.Enabled {
			out = append(out, rule)
		}
	}
	return out, nil
}

// LoadTagRules loads rules from tag.yaml.
func (p *Parser) LoadTagRules() ([]TagRule, error) {
	nodes, err := p.loadRuleNodes(TagRulesFile)
	if err != nil {
		return nil, err
	}

	var out []TagRule
	for i := range nodes {
		rule := TagRule{Name: DefaultRuleName, Enabled: true}
		if err := nodes[i].Decode(&rule); err != nil {
			p.warnSkipped(TagRulesFile, i, err)
			continue
		}
		if rule.Enabled {
			out = append(out, rule)
		}
	}
	return out, nil
}

// LoadDuplicateRules loads rules from duplicate.yaml.
func (p *Parser) LoadDuplicateRules() ([]DuplicateRule, error) {
	nodes, err := p.loadRuleNodes(DuplicateRulesFile)
	if err != nil {
		return nil, err
	}

	var out []DuplicateRule
	for i := range nodes {
		rule := DuplicateRule{
			Name:    DefaultRuleName,
			Enabled: true,
			CheckBy: CheckByContent,
			Action: DuplicateAction{
				Keep:           KeepNewest,
				DuplicateLabel: DefaultDuplicateLabel,
			},
		}
		if err := nodes[i].Decode(&rule); err != nil {
			p.warnSkipped(DuplicateRulesFile, i, err)
			continue
		}
		if rule.Enabled {
			out = append(out, rule)
		}
	}
	return out, nil
}

// ruleFile is the on-disk shape shared by all four rule files. Each
// entry is kept as a raw node so one malformed entry cannot poison
// the rest of the file.
type ruleFile struct {
	Rules []yaml.Node `yaml:"rules"`
}

func (p *Parser) loadRuleNodes(filename string) ([]yaml.Node, error) {
	path := filepath.Join(p.rulesDir, filename)

	exists, err := afero.Exists(p.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to check rule file %s: %w", path, err)
	}
	if !exists {
		return nil, nil
	}

	data, err := afero.ReadFile(p.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rule file %s: %w", path, err)
	}

	var file ruleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse rule file %s: %w", path, err)
	}

	return file.Rules, nil
}

func (p *Parser) warnSkipped(filename string, index int, err error) {
	p.logger.Warn().
		Str("file", filename).
		Int("entry", index).
		Err(err).
		Msg("skipping malformed rule entry")
}
