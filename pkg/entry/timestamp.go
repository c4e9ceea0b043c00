package entry

import (
	"regexp"
	"time"
)

const (
	// TokenLayout is the fixed YYMMDD-HHMMSS layout embedded in every filename.
	TokenLayout = "060102-150405"
	// TokenLen is the width of an encoded token.
	TokenLen = len(TokenLayout)
)

var tokenPattern = regexp.MustCompile(`^\d{6}-\d{6}$`)

// EncodeToken renders t as a token in t's own location. Tokens sort
// lexicographically in chronological order within a century and have a
// resolution of one second.
func EncodeToken(t time.Time) string {
	return t.Format(TokenLayout)
}

// DecodeToken parses a token in the local time zone.
func DecodeToken(token string) (time.Time, error) {
	return DecodeTokenIn(token, time.Local)
}

// DecodeTokenIn parses a token in loc.
func DecodeTokenIn(token string, loc *time.Location) (time.Time, error) {
	if !tokenPattern.MatchString(token) {
		return time.Time{}, &ParseError{Token: token}
	}
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(TokenLayout, token, loc)
	if err != nil {
		return time.Time{}, &ParseError{Token: token, Err: err}
	}
	return t, nil
}

// CreatedFromName recovers the creation instant encoded in a filename: the
// reply token for replies, the root token otherwise.
func CreatedFromName(name string, loc *time.Location) (time.Time, bool) {
	base := Base(name)
	if i := markerIndex(base); i >= 0 {
		base = base[i+len(ReplyMarker):]
	}
	t, err := DecodeTokenIn(base, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// SameDay reports whether a and b fall on the same calendar day in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	if loc == nil {
		loc = time.Local
	}
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}
