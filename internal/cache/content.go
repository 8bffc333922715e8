package cache

import (
	"errors"
	"os"

	lru "github.com/hashicorp/golang-lru/v2"

	fsutil "github.com/grepscope/grepscope/internal/fs"
)

// DefaultCapacity bounds how many file contents stay resident between scans.
const DefaultCapacity = 100

// ErrBinaryContent marks files whose bytes fail text sniffing. Callers treat it
// like any other read failure: skip the file for this scan, retry next scan.
var ErrBinaryContent = errors.New("content is not text")

// ContentCache is a bounded LRU store mapping file path to decoded file text.
// It is owned by the single-threaded session loop, so no locking is layered on
// top of what the LRU implementation already does.
type ContentCache struct {
	entries  *lru.Cache[string, string]
	readFile func(string) ([]byte, error)
}

// New creates a ContentCache holding at most capacity entries.
func New(capacity int) (*ContentCache, error) {
	entries, err := lru.New[string, string](capacity)
	if err != nil {
		return nil, err
	}
	return &ContentCache{
		entries:  entries,
		readFile: os.ReadFile,
	}, nil
}

// GetOrLoad returns the cached text for path, reading and decoding it on a
// miss. A hit promotes the entry to most recently used without touching disk.
// Read or decode failures leave the cache unchanged.
func (c *ContentCache) GetOrLoad(path string) (string, error) {
	if text, ok := c.entries.Get(path); ok {
		return text, nil
	}

	data, err := c.readFile(path)
	if err != nil {
		return "", err
	}
	if !fsutil.IsTextContent(data) {
		return "", ErrBinaryContent
	}

	text := fsutil.NormalizeTextContent(data)
	c.entries.Add(path, text)
	return text, nil
}

// Contains reports whether path is resident without affecting recency.
func (c *ContentCache) Contains(path string) bool {
	return c.entries.Contains(path)
}

// Len returns the number of resident entries.
func (c *ContentCache) Len() int {
	return c.entries.Len()
}
