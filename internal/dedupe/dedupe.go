package dedupe

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/AlienHub/file-organizer/internal/actions"
	"github.com/AlienHub/file-organizer/internal/rules"
)

// hashChunkSize bounds memory while hashing arbitrarily large files.
const hashChunkSize = 8 * 1024

// Deduplicator finds groups of duplicate files and resolves them
// according to a keep policy.
type Deduplicator struct {
	fs     afero.Fs
	logger zerolog.Logger
	tagger actions.Tagger
	trash  Trasher
}

// New creates a Deduplicator. The tagger handles tag-instead-of-delete
// resolution; the trasher disposes of non-kept files otherwise.
func New(fs afero.Fs, logger zerolog.Logger, tagger actions.Tagger, trash Trasher) *Deduplicator {
	return &Deduplicator{fs: fs, logger: logger, tagger: tagger, trash: trash}
}

// FindDuplicates groups files sharing a fingerprint. checkBy "name"
// groups by exact filename; anything else groups by content hash.
// Only groups with two or more members are returned, in first-seen
// key order with members in input order.
func (d *Deduplicator) FindDuplicates(files []string, checkBy string) [][]string {
	if checkBy == rules.CheckByName {
		return d.findByName(files)
	}
	return d.findByContent(files)
}

func (d *Deduplicator) findByName(files []string) [][]string {
	groups := make(map[string][]string)
	var order []string

	for _, path := range files {
		name := filepath.Base(path)
		if _, seen := groups[name]; !seen {
			order = append(order, name)
		}
		groups[name] = append(groups[name], path)
	}

	return collectGroups(groups, order)
}

func (d *Deduplicator) findByContent(files []string) [][]string {
	groups := make(map[string][]string)
	var order []string

	for _, path := range files {
		info, err := d.fs.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}

		digest, err := d.hashFile(path)
		if err != nil {
			// Unreadable files drop out of the candidate pool;
			// they never fail the whole pass.
			d.logger.Debug().Str("path", path).Err(err).Msg("skipping unreadable file")
			continue
		}

		if _, seen := groups[digest]; !seen {
			order = append(order, digest)
		}
		groups[digest] = append(groups[digest], path)
	}

	return collectGroups(groups, order)
}

func collectGroups(groups map[string][]string, order []string) [][]string {
	var out [][]string
	for _, key := range order {
		if members := groups[key]; len(members) > 1 {
			out = append(out, members)
		}
	}
	return out
}

// hashFile streams a file through SHA-256 in fixed-size chunks.
func (d *Deduplicator) hashFile(path string) (string, error) {
	file, err := d.fs.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	hasher := sha256.New()
	buf := make([]byte, hashChunkSize)
	if _, err := io.CopyBuffer(hasher, file, buf); err != nil {
		return "", err
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// Resolve keeps one member of a duplicate group and disposes of the
// rest: tagged with the label when tagDuplicates is set, trashed
// otherwise. A failure on one file never stops the others. Groups
// with fewer than two members are left alone, so resolving an
// already-resolved group is a no-op.
func (d *Deduplicator) Resolve(group []string, keep string, tagDuplicates bool, label string) {
	if len(group) < 2 {
		return
	}

	keepFile := d.selectKeep(group, keep)

	for _, path := range group {
		if path == keepFile {
			continue
		}

		if tagDuplicates {
			if err := d.tagger.AddTag(path, "", label); err != nil {
				d.logger.Warn().Str("path", path).Err(err).Msg("failed to tag duplicate")
			}
			continue
		}

		if err := d.trash.Remove(path); err != nil {
			d.logger.Warn().Str("path", path).Err(err).Msg("failed to dispose of duplicate")
		}
	}
}

// selectKeep picks the surviving file. "newest" and "oldest" compare
// modification times; any other policy keeps the first element in
// input order. A file whose stat fails gets the zero time.
func (d *Deduplicator) selectKeep(group []string, keep string) string {
	switch keep {
	case rules.KeepNewest:
		return d.pickByMtime(group, func(candidate, best time.Time) bool {
			return candidate.After(best)
		})
	case rules.KeepOldest:
		return d.pickByMtime(group, func(candidate, best time.Time) bool {
			return candidate.Before(best)
		})
	default:
		return group[0]
	}
}

func (d *Deduplicator) pickByMtime(group []string, better func(candidate, best time.Time) bool) string {
	best := group[0]
	bestTime := d.mtime(group[0])

	for _, path := range group[1:] {
		if t := d.mtime(path); better(t, bestTime) {
			best = path
			bestTime = t
		}
	}
	return best
}

func (d *Deduplicator) mtime(path string) time.Time {
	info, err := d.fs.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}
