package entry

import (
	"path/filepath"
	"strings"
	"time"
)

// Filename grammar:
//
//	root  = token Ext
//	reply = token ReplyMarker token Ext
//
// The parent of a reply is everything before the first ReplyMarker, with the
// reply's extension put back.
const (
	// Ext is the extension every journal file carries.
	Ext = ".txt"
	// ReplyMarker separates the parent token from the reply token.
	ReplyMarker = "--reply-"
)

// RootName names a new root entry created at t.
func RootName(t time.Time) string {
	return EncodeToken(t) + Ext
}

// IsEntryFile reports whether name follows the journal naming convention.
func IsEntryFile(name string) bool {
	return strings.HasSuffix(name, Ext) && len(name) > len(Ext) && !strings.HasPrefix(name, ".")
}

// Base strips the journal extension.
func Base(name string) string {
	return strings.TrimSuffix(name, Ext)
}

// IsReply reports whether name carries the reply marker.
func IsReply(name string) bool {
	return markerIndex(name) >= 0
}

// ParentOf returns the name of the entry a reply belongs to. The second
// result is false for names that are not replies.
func ParentOf(name string) (string, bool) {
	i := markerIndex(name)
	if i < 0 {
		return "", false
	}
	return name[:i] + filepath.Ext(name), true
}

// ReplyName names a reply to parent created at t. A reply name passed as
// parent anchors to its root, so replies never nest more than one level.
func ReplyName(parent string, t time.Time) string {
	ext := filepath.Ext(parent)
	base := strings.TrimSuffix(parent, ext)
	if i := markerIndex(base); i >= 0 {
		base = base[:i]
	}
	return base + ReplyMarker + EncodeToken(t) + ext
}

// RootOf returns the root entry name for name: itself for roots, the parent
// for replies.
func RootOf(name string) string {
	if parent, ok := ParentOf(name); ok {
		return parent
	}
	return name
}

// ValidateName rejects names that would escape the journal directory.
func ValidateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return &ValidationError{Field: "name", Reason: "required"}
	case strings.ContainsAny(name, `/\`), name == ".", name == "..":
		return &ValidationError{Field: "name", Reason: "must be a plain file name"}
	}
	return nil
}

func markerIndex(name string) int {
	return strings.Index(name, ReplyMarker)
}
