package admin

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	whitespacePattern = regexp.MustCompile(`\s+`)
	unsafePattern     = regexp.MustCompile(`[^a-zA-Z0-9._-]`)
)

// SanitizeFilename makes a user-supplied filename safe for a storage key:
// whitespace runs become hyphens and anything outside letters, digits, dot,
// underscore and hyphen is stripped.
func SanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	name = whitespacePattern.ReplaceAllString(name, "-")
	return unsafePattern.ReplaceAllString(name, "")
}

// ObjectKey builds the storage key for an uploaded asset. Keys are
// namespaced by record id and prefixed with the upload timestamp so that a
// replacement never reuses a key: a new path means a new public URL, which
// keeps long-lived caches correct without invalidation.
func ObjectKey(category, recordID string, at time.Time, filename string) string {
	return fmt.Sprintf("%s/%s/%d-%s", category, recordID, at.UnixMilli(), SanitizeFilename(filename))
}
