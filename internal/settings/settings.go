// Package settings persists tunable runtime parameters in an INI-style file
// and keeps the in-memory view synchronized with external edits to that file.
package settings

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
)

// defaultCategory receives keys that appear before any [section] header.
const defaultCategory = "Default"

// Store is a category-scoped string key-value store backed by a single file.
// It is not safe for concurrent use; a single owner drives Load, Save and the
// accessors from one goroutine.
type Store struct {
	path    string
	data    map[string]map[string]string
	modTime time.Time
}

// New returns an empty store with no backing file.
func New() *Store {
	return &Store{data: map[string]map[string]string{}}
}

// Path returns the file the store reads from and writes to.
func (s *Store) Path() string { return s.path }

// Load reads and parses the file at path, replacing the in-memory state
// wholesale. The path is remembered for later Save and ReloadIfChanged calls.
// On failure the previous state is left untouched.
func (s *Store) Load(path string) error {
	s.path = path
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read settings: %w", err)
	}
	s.data = parse(string(raw))
	if fi, err := os.Stat(path); err == nil {
		s.modTime = fi.ModTime()
	}
	return nil
}

// ReloadIfChanged re-reads the file if its modification time differs from the
// one recorded by the last Load or Save. It reports whether a reload happened.
// A missing file, an unset path, or a read failure leaves memory untouched and
// reports false. The mtime stat is the only filesystem cost on the common
// unchanged path, so this is cheap enough to call from a frame loop.
func (s *Store) ReloadIfChanged() bool {
	if s.path == "" {
		return false
	}
	fi, err := os.Stat(s.path)
	if err != nil {
		return false
	}
	if fi.ModTime().Equal(s.modTime) {
		return false
	}
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return false
	}
	s.data = parse(string(raw))
	s.modTime = fi.ModTime()
	return true
}

// Save writes every category and key back to the store's file. Categories and
// keys are emitted in sorted order so repeated saves of the same state produce
// identical files. On success the recorded modification time is refreshed so
// the store's own write does not trigger a spurious ReloadIfChanged.
func (s *Store) Save() error {
	if s.path == "" {
		return fmt.Errorf("save settings: no path set")
	}

	var b strings.Builder
	cats := make([]string, 0, len(s.data))
	for cat := range s.data {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	for _, cat := range cats {
		fmt.Fprintf(&b, "[%s]\n", cat)
		keys := make([]string, 0, len(s.data[cat]))
		for k := range s.data[cat] {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "%s=%s\n", k, s.data[cat][k])
		}
		b.WriteString("\n")
	}

	if err := os.WriteFile(s.path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	if fi, err := os.Stat(s.path); err == nil {
		s.modTime = fi.ModTime()
	}
	return nil
}

// parse interprets INI-style text into a fresh category map. It never fails:
// comments (';' or '#' to end of line) are stripped, blank lines are skipped,
// [section] lines switch the current category, key=value lines are split at
// the first '=', and anything else is silently ignored.
func parse(text string) map[string]map[string]string {
	data := map[string]map[string]string{}
	current := defaultCategory

	for _, line := range strings.Split(text, "\n") {
		if i := strings.IndexByte(line, ';'); i >= 0 {
			line = line[:i]
		}
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			current = strings.TrimSpace(line[1 : len(line)-1])
			continue
		}

		key, val, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		val = strings.TrimSpace(val)
		if data[current] == nil {
			data[current] = map[string]string{}
		}
		data[current][key] = val
	}
	return data
}

// GetString returns the stored value for (cat, key), or def if absent.
func (s *Store) GetString(cat, key, def string) string {
	if kv, ok := s.data[cat]; ok {
		if v, ok := kv[key]; ok {
			return v
		}
	}
	return def
}

// GetDouble returns the stored value parsed as a float64, or def if the key
// is absent or the value does not parse.
func (s *Store) GetDouble(cat, key string, def float64) float64 {
	kv, ok := s.data[cat]
	if !ok {
		return def
	}
	raw, ok := kv[key]
	if !ok {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return v
}

// GetInt returns the stored value parsed as an int, or def if the key is
// absent or the value does not parse.
func (s *Store) GetInt(cat, key string, def int) int {
	kv, ok := s.data[cat]
	if !ok {
		return def
	}
	raw, ok := kv[key]
	if !ok {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

// GetBool returns the stored value interpreted as a boolean. Accepted forms,
// case-insensitively: 1/true/on/yes and 0/false/off/no. Anything else,
// including an absent key, yields def.
func (s *Store) GetBool(cat, key string, def bool) bool {
	kv, ok := s.data[cat]
	if !ok {
		return def
	}
	raw, ok := kv[key]
	if !ok {
		return def
	}
	switch strings.ToLower(raw) {
	case "1", "true", "on", "yes":
		return true
	case "0", "false", "off", "no":
		return false
	}
	return def
}

// SetString stores v under (cat, key), creating the category if needed.
func (s *Store) SetString(cat, key, v string) {
	if s.data == nil {
		s.data = map[string]map[string]string{}
	}
	if s.data[cat] == nil {
		s.data[cat] = map[string]string{}
	}
	s.data[cat][key] = v
}

// SetDouble stores v in its shortest decimal form.
func (s *Store) SetDouble(cat, key string, v float64) {
	s.SetString(cat, key, strconv.FormatFloat(v, 'g', -1, 64))
}

// SetInt stores v in decimal form.
func (s *Store) SetInt(cat, key string, v int) {
	s.SetString(cat, key, strconv.Itoa(v))
}

// SetBool stores v as "1" or "0".
func (s *Store) SetBool(cat, key string, v bool) {
	if v {
		s.SetString(cat, key, "1")
	} else {
		s.SetString(cat, key, "0")
	}
}
