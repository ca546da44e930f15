package actions

import (
	"encoding/xml"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrTagsUnsupported is returned by the fallback tagger on platforms
// without Finder tags. Callers treat it as a per-operation failure and
// keep going.
var ErrTagsUnsupported = errors.New("finder tags are not supported on this platform")

// finderTagsAttr is the extended attribute Finder stores user tags in.
const finderTagsAttr = "com.apple.metadata:_kMDItemUserTags"

// TagColors maps accepted color names to their Finder label index.
var TagColors = map[string]int{
	"gray":   1,
	"red":    2,
	"orange": 3,
	"yellow": 4,
	"green":  5,
	"blue":   6,
	"purple": 7,
}

// Tagger abstracts platform tagging so the pipeline never branches on
// the OS. Exactly one implementation is selected at startup.
type Tagger interface {
	AddTag(path, color, label string) error
	RemoveTag(path string) error
	GetTags(path string) ([]string, error)
}

// NewTagger selects the tagging backend for the given GOOS.
func NewTagger(goos string) Tagger {
	if goos == "darwin" {
		return NewFinderTagger()
	}
	return UnsupportedTagger{}
}

// UnsupportedTagger is the no-op backend for non-macOS platforms.
type UnsupportedTagger struct{}

func (UnsupportedTagger) AddTag(path, color, label string) error { return ErrTagsUnsupported }
func (UnsupportedTagger) RemoveTag(path string) error            { return ErrTagsUnsupported }
func (UnsupportedTagger) GetTags(path string) ([]string, error)  { return nil, ErrTagsUnsupported }

// FinderTagger writes Finder tags through xattr, falling back to an
// AppleScript label when the xattr write fails.
type FinderTagger struct {
	run       func(name string, args ...string) error
	runOutput func(name string, args ...string) ([]byte, error)
}

// NewFinderTagger creates the macOS tagging backend.
func NewFinderTagger() *FinderTagger {
	return &FinderTagger{
		run: func(name string, args ...string) error {
			return exec.Command(name, args...).Run()
		},
		runOutput: func(name string, args ...string) ([]byte, error) {
			return exec.Command(name, args...).Output()
		},
	}
}

// AddTag applies a color and/or label tag to a file.
func (t *FinderTagger) AddTag(path, color, label string) error {
	var tags []string
	if _, ok := TagColors[strings.ToLower(color)]; ok {
		tags = append(tags, strings.ToLower(color))
	}
	if label != "" {
		tags = append(tags, label)
	}
	if len(tags) == 0 {
		return fmt.Errorf("no usable tag in color=%q label=%q", color, label)
	}

	if err := t.run("xattr", "-w", finderTagsAttr, tagsPlist(tags), path); err != nil {
		return t.setLabelIndex(path, tags)
	}
	return nil
}

// RemoveTag clears all Finder tags from a file.
func (t *FinderTagger) RemoveTag(path string) error {
	return t.run("xattr", "-d", finderTagsAttr, path)
}

// GetTags reads the Finder tags of a file. A file without the
// attribute has no tags.
func (t *FinderTagger) GetTags(path string) ([]string, error) {
	out, err := t.runOutput("xattr", "-p", finderTagsAttr, path)
	if err != nil {
		return nil, nil
	}
	return parseTagsPlist(out), nil
}

// setLabelIndex is the AppleScript fallback: it can only set the color
// label, not arbitrary text tags.
func (t *FinderTagger) setLabelIndex(path string, tags []string) error {
	index := 0
	for _, tag := range tags {
		if i, ok := TagColors[strings.ToLower(tag)]; ok {
			index = i
			break
		}
	}

	script := fmt.Sprintf(`tell application "Finder"
	set theFile to POSIX file %q as alias
	set label index of theFile to %d
end tell`, path, index)

	return t.run("osascript", "-e", script)
}

type plistArray struct {
	XMLName xml.Name `xml:"plist"`
	Strings []string `xml:"array>string"`
}

// tagsPlist renders the tag list as an XML property list, the format
// Finder accepts for the user-tags attribute.
func tagsPlist(tags []string) string {
	var b strings.Builder
	b.WriteString(xml.Header)
	b.WriteString(`<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">`)
	b.WriteString(`<plist version="1.0"><array>`)
	for _, tag := range tags {
		b.WriteString("<string>")
		if err := xml.EscapeText(&b, []byte(tag)); err != nil {
			continue
		}
		b.WriteString("</string>")
	}
	b.WriteString("</array></plist>")
	return b.String()
}

func parseTagsPlist(data []byte) []string {
	var parsed plistArray
	if err := xml.Unmarshal(data, &parsed); err != nil {
		return nil
	}
	return parsed.Strings
}
