package fs

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// DefaultTextExtensions is the built-in set of extensions treated as text when
// the user does not supply an explicit list.
var DefaultTextExtensions = []string{
	"txt", "md", "rs", "py", "js", "ts", "html", "css", "json", "yaml", "yml",
	"toml", "ini", "sh", "bash", "cpp", "c", "h", "java", "go", "rb", "php", "sql",
}

// IndexOptions controls which files the indexer reports.
type IndexOptions struct {
	// Extensions overrides DefaultTextExtensions when non-empty.
	Extensions []string
}

// CollectTextFiles walks root and returns the ordered list of candidate text
// files. Hidden files (dot-prefixed names) are excluded; directories are
// descended but never reported. Unreadable subtrees are skipped silently so a
// permission error somewhere under root cannot abort indexing.
func CollectTextFiles(root string, opts IndexOptions) ([]string, error) {
	extensions := opts.Extensions
	if len(extensions) == 0 {
		extensions = DefaultTextExtensions
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if isHiddenName(d.Name()) {
			return nil
		}
		if hasTextExtension(path, extensions) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func isHiddenName(name string) bool {
	return strings.HasPrefix(name, ".")
}

func hasTextExtension(path string, extensions []string) bool {
	ext := filepath.Ext(path)
	if ext == "" {
		return false
	}
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	for _, candidate := range extensions {
		if strings.ToLower(candidate) == ext {
			return true
		}
	}
	return false
}
