package router

import (
	"strings"

	"github.com/aerohttp/aero/core/handler"
)

// WildcardMethod matches any HTTP method during lookup. A wildcard-method
// route ranks below an exact-method route of the same kind (literal or
// templated), but a wildcard-method literal outranks every templated route;
// see Store.Find.
const WildcardMethod = "*"

type routeKey struct {
	method string
	path   string
}

type templatedRoute struct {
	pattern *Pattern
	handler handler.HandlerFunc
}

// Route describes a single registered route for introspection.
type Route struct {
	Method  string
	Pattern string
}

// Store is the dual-index route registry. Literal paths live in a
// method-keyed map with O(1) lookup; templated paths live in
// insertion-ordered lists scanned per lookup. A separate registry of all
// mappings backs introspection and duplicate detection.
type Store struct {
	literal   map[string]map[string]handler.HandlerFunc
	templated map[string][]templatedRoute
	mappings  map[routeKey]handler.HandlerFunc
	order     []routeKey
}

// NewStore creates an empty route store.
func NewStore() *Store {
	return &Store{
		literal:   make(map[string]map[string]handler.HandlerFunc),
		templated: make(map[string][]templatedRoute),
		mappings:  make(map[routeKey]handler.HandlerFunc),
	}
}

// Register classifies the path and inserts the handler into the matching
// index. Methods are normalised to uppercase; the sentinel "*" registers a
// wildcard-method route. Registering the same method and path twice
// overrides the earlier handler in place. Returns whether the earlier
// handler was overridden and any pattern compile error.
func (s *Store) Register(method, path string, h handler.HandlerFunc) (overrode bool, err error) {
	if method == "" {
		return false, ErrInvalidMethod
	}
	method = normalizeMethod(method)

	pattern, err := Compile(path)
	if err != nil {
		return false, err
	}

	key := routeKey{method: method, path: path}
	_, overrode = s.mappings[key]
	s.mappings[key] = h
	if !overrode {
		s.order = append(s.order, key)
	}

	if pattern.IsLiteral() {
		if s.literal[method] == nil {
			s.literal[method] = make(map[string]handler.HandlerFunc)
		}
		s.literal[method][path] = h
		return overrode, nil
	}

	if overrode {
		for i, tr := range s.templated[method] {
			if tr.pattern.String() == path {
				s.templated[method][i].handler = h
				return true, nil
			}
		}
	}
	s.templated[method] = append(s.templated[method], templatedRoute{pattern: pattern, handler: h})
	return overrode, nil
}

// Find looks up the handler for a method and path. Precedence: exact-method
// literal, wildcard-method literal, exact-method templated in insertion
// order, wildcard-method templated in insertion order.
func (s *Store) Find(method, path string) (handler.HandlerFunc, map[string]string, bool) {
	method = normalizeMethod(method)

	if h, ok := s.literal[method][path]; ok {
		return h, map[string]string{}, true
	}
	if h, ok := s.literal[WildcardMethod][path]; ok {
		return h, map[string]string{}, true
	}
	for _, tr := range s.templated[method] {
		if params, ok := tr.pattern.Match(path); ok {
			return tr.handler, params, true
		}
	}
	for _, tr := range s.templated[WildcardMethod] {
		if params, ok := tr.pattern.Match(path); ok {
			return tr.handler, params, true
		}
	}
	return nil, nil, false
}

// Merge inserts every mapping of other into s, preserving other's
// templated insertion order after s's existing entries. Merging an empty
// store is a no-op.
func (s *Store) Merge(other *Store) {
	for _, key := range other.order {
		// Register re-derives the index placement, keeping the literal and
		// templated invariants intact for overridden entries.
		_, _ = s.Register(key.method, key.path, other.mappings[key])
	}
}

// Routes enumerates every registered mapping in registration order.
func (s *Store) Routes() []Route {
	routes := make([]Route, 0, len(s.order))
	for _, key := range s.order {
		routes = append(routes, Route{Method: key.method, Pattern: key.path})
	}
	return routes
}

// Len returns the number of distinct (method, path) mappings.
func (s *Store) Len() int {
	return len(s.order)
}

func normalizeMethod(method string) string {
	if method == WildcardMethod {
		return method
	}
	return strings.ToUpper(method)
}
