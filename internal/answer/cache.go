package answer

import (
	"github.com/studybuddy/platform/internal/storage"
)

// Cache maps question text to a generated answer, backed by a JSON file
// that is rewritten in full after every insertion. Entries are keyed by
// question text alone, so an identical question asked under two subjects
// shares one cached answer. There is no eviction and no expiry.
type Cache struct {
	path    string
	entries map[string]string
}

// NewCache loads the cache file at path; a missing file starts empty.
func NewCache(path string) (*Cache, error) {
	c := &Cache{
		path:    path,
		entries: map[string]string{},
	}
	if _, err := storage.LoadJSON(path, &c.entries); err != nil {
		return nil, err
	}
	if c.entries == nil {
		c.entries = map[string]string{}
	}
	return c, nil
}

// Get returns the cached answer for a question.
func (c *Cache) Get(question string) (string, bool) {
	ans, ok := c.entries[question]
	return ans, ok
}

// Put stores question→answer and persists the full cache immediately.
func (c *Cache) Put(question, ans string) error {
	c.entries[question] = ans
	return storage.SaveJSON(c.path, c.entries)
}

// Len returns the number of cached answers.
func (c *Cache) Len() int {
	return len(c.entries)
}
