package insights

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/AlienHub/file-organizer/internal/utils"
)

// largeFileThreshold marks files worth calling out individually.
const largeFileThreshold = 50 * 1024 * 1024

// FileInfo is one file in a report.
type FileInfo struct {
	Name string
	Size int64
}

// ExtCount is one extension bucket in the histogram.
type ExtCount struct {
	Ext   string
	Count int
}

// FolderInfo is one immediate subfolder and its direct file count.
type FolderInfo struct {
	Name  string
	Count int
}

// Report aggregates a single directory level for rule authoring. It is
// read-only; nothing here feeds back into planning.
type Report struct {
	Path         string
	TotalFiles   int
	TotalFolders int
	TotalSize    int64
	ByExtension  []ExtCount // descending by count, top 15
	TopFiles     []FileInfo // descending by size, top 20
	LargeFiles   []FileInfo // above largeFileThreshold, top 10
	Folders      []FolderInfo
}

// Analyze profiles the immediate children of a directory. Unreadable
// entries are skipped.
func Analyze(fs afero.Fs, path string) (*Report, error) {
	root := utils.ExpandUser(path)

	entries, err := afero.ReadDir(fs, root)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", root, err)
	}

	report := &Report{Path: root}
	extCounts := make(map[string]int)
	var files []FileInfo

	for _, entry := range entries {
		if entry.IsDir() {
			count := 0
			if children, err := afero.ReadDir(fs, filepath.Join(root, entry.Name())); err == nil {
				for _, child := range children {
					if !child.IsDir() {
						count++
					}
				}
			}
			report.Folders = append(report.Folders, FolderInfo{Name: entry.Name(), Count: count})
			continue
		}

		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(entry.Name()), "."))
		extCounts[ext]++
		files = append(files, FileInfo{Name: entry.Name(), Size: entry.Size()})
		report.TotalSize += entry.Size()
	}

	report.TotalFiles = len(files)
	report.TotalFolders = len(report.Folders)

	for ext, count := range extCounts {
		report.ByExtension = append(report.ByExtension, ExtCount{Ext: ext, Count: count})
	}
	sort.Slice(report.ByExtension, func(i, j int) bool {
		if report.ByExtension[i].Count != report.ByExtension[j].Count {
			return report.ByExtension[i].Count > report.ByExtension[j].Count
		}
		return report.ByExtension[i].Ext < report.ByExtension[j].Ext
	})
	if len(report.ByExtension) > 15 {
		report.ByExtension = report.ByExtension[:15]
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Size > files[j].Size })
	report.TopFiles = files
	if len(report.TopFiles) > 20 {
		report.TopFiles = report.TopFiles[:20]
	}
	for _, f := range files {
		if f.Size > largeFileThreshold {
			report.LargeFiles = append(report.LargeFiles, f)
			if len(report.LargeFiles) == 10 {
				break
			}
		}
	}

	sort.Slice(report.Folders, func(i, j int) bool {
		if report.Folders[i].Count != report.Folders[j].Count {
			return report.Folders[i].Count > report.Folders[j].Count
		}
		return report.Folders[i].Name < report.Folders[j].Name
	})

	return report, nil
}

// Render formats the report for a human reader.
func (r *Report) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Directory: %s\n", r.Path)
	fmt.Fprintf(&b, "Files: %d  Folders: %d  Total size: %s\n", r.TotalFiles, r.TotalFolders, FormatSize(r.TotalSize))

	if len(r.ByExtension) > 0 {
		b.WriteString("\nBy extension:\n")
		for _, e := range r.ByExtension {
			fmt.Fprintf(&b, "  .%s: %d\n", e.Ext, e.Count)
		}
	}

	if len(r.Folders) > 0 {
		b.WriteString("\nSubfolders:\n")
		for _, f := range r.Folders {
			fmt.Fprintf(&b, "  %s: %d files\n", f.Name, f.Count)
		}
	}

	if len(r.LargeFiles) > 0 {
		b.WriteString("\nLarge files (>50MB):\n")
		for _, f := range r.LargeFiles {
			fmt.Fprintf(&b, "  %s (%s)\n", f.Name, FormatSize(f.Size))
		}
	}

	return b.String()
}

// Prompt renders the report as an analysis prompt asking an AI
// provider for YAML rule suggestions.
func (r *Report) Prompt() string {
	var b strings.Builder
	b.WriteString("You are a file organization expert. Analyze the following directory profile and suggest file organization rules.\n\n")
	fmt.Fprintf(&b, "Directory: %s\n", r.Path)
	fmt.Fprintf(&b, "Total files: %d, total folders: %d, total size: %s\n\n", r.TotalFiles, r.TotalFolders, FormatSize(r.TotalSize))

	b.WriteString("Files by extension:\n")
	for _, e := range r.ByExtension {
		fmt.Fprintf(&b, "- .%s: %d\n", e.Ext, e.Count)
	}

	if len(r.TopFiles) > 0 {
		b.WriteString("\nLargest files:\n")
		limit := len(r.TopFiles)
		if limit > 10 {
			limit = 10
		}
		for _, f := range r.TopFiles[:limit] {
			fmt.Fprintf(&b, "- %s (%s)\n", f.Name, FormatSize(f.Size))
		}
	}

	b.WriteString(`
Suggest organization rules as YAML in this shape, and nothing else:

rules:
  - name: "Spreadsheets"
    condition:
      path: "~/Downloads"
      extension: ["xlsx", "xls"]
    action:
      move: "~/Documents/Spreadsheets"
      create_if_missing: true
`)
	return b.String()
}

// FormatSize renders a byte count with binary units.
func FormatSize(size int64) string {
	value := float64(size)
	for _, unit := range []string{"B", "KB", "MB", "GB", "TB"} {
		if value < 1024 {
			return fmt.Sprintf("%.1f %s", value, unit)
		}
		value /= 1024
	}
	return fmt.Sprintf("%.1f PB", value)
}
