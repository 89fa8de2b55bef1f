// Package vorbis provides Vorbis comment field utilities.
//
// A Vorbis comment list is an ordered sequence of UTF-8 "KEY=VALUE"
// strings. Field names are case-insensitive ASCII; a key may appear any
// number of times. The helpers here never reorder unrelated entries.
package vorbis

import (
	"fmt"
	"strings"
)

// Split parses a single Vorbis comment in "KEY=VALUE" format.
//
// The value may itself contain '='; only the first one separates the key.
// Returns an error if the comment has no separator or an invalid key.
func Split(comment string) (key, value string, err error) {
	eq := strings.IndexByte(comment, '=')
	if eq == -1 {
		return "", "", fmt.Errorf("missing '=' in comment: %s", comment)
	}

	key = comment[:eq]
	if !ValidKey(key) {
		return "", "", fmt.Errorf("invalid field name %q", key)
	}
	return key, comment[eq+1:], nil
}

// Join formats a key and value as a comment.
func Join(key, value string) string {
	return key + "=" + value
}

// ValidKey reports whether key is a legal field name: non-empty, printable
// ASCII 0x20 through 0x7D, excluding '='.
func ValidKey(key string) bool {
	if key == "" {
		return false
	}
	for i := 0; i < len(key); i++ {
		c := key[i]
		if c < 0x20 || c > 0x7D || c == '=' {
			return false
		}
	}
	return true
}

// matches reports whether comment carries the field key.
func matches(comment, key string) bool {
	if len(comment) <= len(key) || comment[len(key)] != '=' {
		return false
	}
	return strings.EqualFold(comment[:len(key)], key)
}

// Get returns every value of key, in order.
func Get(comments []string, key string) []string {
	var values []string
	for _, c := range comments {
		if matches(c, key) {
			values = append(values, c[len(key)+1:])
		}
	}
	return values
}

// First returns the first value of key, or "" when absent.
func First(comments []string, key string) string {
	for _, c := range comments {
		if matches(c, key) {
			return c[len(key)+1:]
		}
	}
	return ""
}

// Add appends key=value.
func Add(comments []string, key, value string) ([]string, error) {
	if !ValidKey(key) {
		return comments, fmt.Errorf("invalid field name %q", key)
	}
	return append(comments, Join(key, value)), nil
}

// Set replaces every value of key with values.
//
// The new entries take the position of the first existing entry for key;
// when key is absent they are appended. Setting no values removes key.
func Set(comments []string, key string, values ...string) ([]string, error) {
	if !ValidKey(key) {
		return comments, fmt.Errorf("invalid field name %q", key)
	}

	out := make([]string, 0, len(comments)+len(values))
	inserted := false
	for _, c := range comments {
		if !matches(c, key) {
			out = append(out, c)
			continue
		}
		if !inserted {
			for _, v := range values {
				out = append(out, Join(key, v))
			}
			inserted = true
		}
	}
	if !inserted {
		for _, v := range values {
			out = append(out, Join(key, v))
		}
	}
	return out, nil
}

// Remove deletes every entry for key and reports how many were removed.
func Remove(comments []string, key string) ([]string, int) {
	out := comments[:0:0]
	removed := 0
	for _, c := range comments {
		if matches(c, key) {
			removed++
			continue
		}
		out = append(out, c)
	}
	return out, removed
}

// Keys returns the distinct field names in first-seen order, upper-cased.
func Keys(comments []string) []string {
	seen := make(map[string]bool)
	var keys []string
	for _, c := range comments {
		key, _, err := Split(c)
		if err != nil {
			continue
		}
		key = strings.ToUpper(key)
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}
	return keys
}
