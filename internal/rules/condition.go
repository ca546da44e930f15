package rules

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/AlienHub/file-organizer/internal/utils"
)

// Condition is a predicate over a file's path, name, extension and
// size. Every field is optional; unset fields are vacuously true, so a
// condition with nothing set matches every file.
type Condition struct {
	Path        string   `yaml:"path,omitempty"`
	Extensions  []string `yaml:"extension,omitempty"`
	Pattern     string   `yaml:"pattern,omitempty"`
	NamePattern string   `yaml:"name_pattern,omitempty"`
	SizeGT      ByteSize `yaml:"size_gt,omitempty"`
	SizeLT      ByteSize `yaml:"size_lt,omitempty"`
}

// Matches evaluates the condition against a file path, short-circuit
// AND over all set fields. Size bounds require a stat; a failed stat
// fails the condition closed.
func (c *Condition) Matches(fs afero.Fs, path string) bool {
	if c.Path != "" {
		// Textual prefix match after home expansion, not
		// path-segment aware: /tmp/ab matches prefix /tmp/a.
		prefix := utils.ExpandUser(c.Path)
		if !strings.HasPrefix(path, prefix) {
			return false
		}
	}

	name := filepath.Base(path)

	if len(c.Extensions) > 0 {
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
		found := false
		for _, e := range c.Extensions {
			if ext == strings.ToLower(strings.TrimPrefix(e, ".")) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if c.NamePattern != "" && !regexSearch(c.NamePattern, name) {
		return false
	}

	if c.Pattern != "" && !regexSearch(c.Pattern, name) {
		return false
	}

	if c.SizeGT > 0 || c.SizeLT > 0 {
		info, err := fs.Stat(path)
		if err != nil {
			return false
		}
		size := ByteSize(info.Size())
		if c.SizeGT > 0 && size <= c.SizeGT {
			return false
		}
		if c.SizeLT > 0 && size >= c.SizeLT {
			return false
		}
	}

	return true
}

// IsZero reports whether no field of the condition is set.
func (c *Condition) IsZero() bool {
	return c.Path == "" && len(c.Extensions) == 0 && c.Pattern == "" &&
		c.NamePattern == "" && c.SizeGT == 0 && c.SizeLT == 0
}

// regexSearch performs an unanchored substring search. An invalid
// pattern fails closed.
func regexSearch(pattern, s string) bool {
	matched, err := regexp.MatchString(pattern, s)
	if err != nil {
		return false
	}
	return matched
}

// ByteSize is a size bound in bytes. In YAML it accepts either a raw
// integer or a human-readable string like "100MB".
type ByteSize int64

// UnmarshalYAML decodes integer or string size values. An unparseable
// string degrades to 0, which disables the bound rather than erroring.
func (b *ByteSize) UnmarshalYAML(value *yaml.Node) error {
	var raw int64
	if err := value.Decode(&raw); err == nil {
		*b = ByteSize(raw)
		return nil
	}
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	*b = ByteSize(ParseSize(s))
	return nil
}

var sizeUnits = []struct {
	suffix     string
	multiplier int64
}{
	{"TB", 1 << 40},
	{"GB", 1 << 30},
	{"MB", 1 << 20},
	{"KB", 1 << 10},
	{"B", 1},
}

// ParseSize parses a size string like "100MB" into bytes using binary
// multipliers. A bare integer is taken as raw bytes. Anything else
// returns 0, silently widening the bound.
func ParseSize(s string) int64 {
	s = strings.ToUpper(strings.TrimSpace(s))

	for _, unit := range sizeUnits {
		if !strings.HasSuffix(s, unit.suffix) {
			continue
		}
		num := strings.TrimSpace(strings.TrimSuffix(s, unit.suffix))
		value, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return 0
		}
		return int64(value * float64(unit.multiplier))
	}

	value, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return value
}
