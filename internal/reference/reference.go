package reference

import (
	"regexp"
)

// Ref is a YouTube video id. The zero value means "no video".
type Ref string

// None is the absent reference.
const None Ref = ""

var idRegexp = regexp.MustCompile("^[a-zA-Z0-9_-]{11}$")

// Checked in order, first capture wins.
var matchers = []*regexp.Regexp{
	regexp.MustCompile(`youtu\.be/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/watch\?v=([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/embed/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/shorts/([a-zA-Z0-9_-]{11})`),
}

// Resolve extracts the video id from a short, watch, embed or shorts link.
// Anything else, including a bare id, resolves to None.
func Resolve(rawURL string) Ref {
	if rawURL == "" {
		return None
	}

	for _, m := range matchers {
		if match := m.FindStringSubmatch(rawURL); match != nil {
			return Ref(match[1])
		}
	}

	return None
}

func (r Ref) IsNone() bool {
	return r == None
}

// Valid reports whether r has the shape of a platform video id.
func (r Ref) Valid() bool {
	return idRegexp.MatchString(string(r))
}

func (r Ref) String() string {
	return string(r)
}
