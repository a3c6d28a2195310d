package cookie

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// SameSite controls the SameSite cookie attribute.
type SameSite int

const (
	// SameSiteUnset omits the SameSite attribute.
	SameSiteUnset SameSite = iota
	SameSiteLax
	SameSiteStrict
	// SameSiteNone requires Secure; Serialize forces the Secure flag on.
	SameSiteNone
)

func (s SameSite) String() string {
	switch s {
	case SameSiteLax:
		return "Lax"
	case SameSiteStrict:
		return "Strict"
	case SameSiteNone:
		return "None"
	default:
		return ""
	}
}

// Item is a single inbound cookie parsed from a Cookie request header.
type Item struct {
	Name  string
	Value string
}

// Spec describes one outbound cookie. MaxAge follows the net/http
// convention: >0 emits Max-Age=<seconds>, <0 emits Max-Age=0, 0 omits the
// attribute entirely.
type Spec struct {
	Name     string
	Value    string
	MaxAge   int
	Expires  time.Time
	Path     string
	Domain   string
	Secure   bool
	HttpOnly bool
	SameSite SameSite
}

// New creates a cookie spec with the given name and value, applying any
// options on top of zero defaults.
func New(name, value string, opts ...Option) Spec {
	s := Spec{Name: name, Value: value}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Delete creates a spec that expires the named cookie immediately: empty
// value and Max-Age=0.
func Delete(name string, opts ...Option) Spec {
	s := Spec{Name: name, MaxAge: -1}
	for _, opt := range opts {
		opt(&s)
	}
	s.Value = ""
	return s
}

// Serialize renders the spec as a single Set-Cookie header value.
// Attributes are emitted in a fixed order: Max-Age, Expires, Path, Domain,
// Secure, HttpOnly, SameSite. SameSite=None implies Secure.
func (s Spec) Serialize() string {
	var b strings.Builder
	b.WriteString(s.Name)
	b.WriteByte('=')
	b.WriteString(s.Value)

	if s.MaxAge > 0 {
		b.WriteString("; Max-Age=")
		b.WriteString(strconv.Itoa(s.MaxAge))
	} else if s.MaxAge < 0 {
		b.WriteString("; Max-Age=0")
	}
	if !s.Expires.IsZero() {
		b.WriteString("; Expires=")
		b.WriteString(s.Expires.UTC().Format(http.TimeFormat))
	}
	if s.Path != "" {
		b.WriteString("; Path=")
		b.WriteString(s.Path)
	}
	if s.Domain != "" {
		b.WriteString("; Domain=")
		b.WriteString(s.Domain)
	}

	secure := s.Secure || s.SameSite == SameSiteNone
	if secure {
		b.WriteString("; Secure")
	}
	if s.HttpOnly {
		b.WriteString("; HttpOnly")
	}
	if v := s.SameSite.String(); v != "" {
		b.WriteString("; SameSite=")
		b.WriteString(v)
	}

	return b.String()
}

// ParseHeader splits a Cookie request header into named items. Pieces
// without an equals sign are ignored; a later item with the same name
// overrides an earlier one.
func ParseHeader(value string) map[string]Item {
	items := make(map[string]Item)
	for _, piece := range strings.Split(value, ";") {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		name, val, ok := strings.Cut(piece, "=")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		items[name] = Item{Name: name, Value: strings.TrimSpace(val)}
	}
	return items
}
