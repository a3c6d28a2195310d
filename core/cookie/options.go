package cookie

import "time"

// Option is a functional option for configuring a cookie spec.
type Option func(*Spec)

// WithMaxAge sets the cookie max-age in seconds.
// Negative values expire the cookie immediately (Max-Age=0).
func WithMaxAge(seconds int) Option {
	return func(s *Spec) {
		s.MaxAge = seconds
	}
}

// WithExpires sets an absolute expiry time.
func WithExpires(t time.Time) Option {
	return func(s *Spec) {
		s.Expires = t
	}
}

// WithPath sets the cookie path attribute.
func WithPath(path string) Option {
	return func(s *Spec) {
		s.Path = path
	}
}

// WithDomain sets the cookie domain attribute.
func WithDomain(domain string) Option {
	return func(s *Spec) {
		s.Domain = domain
	}
}

// WithSecure sets the secure flag, ensuring the cookie is only sent over HTTPS.
func WithSecure(secure bool) Option {
	return func(s *Spec) {
		s.Secure = secure
	}
}

// WithHTTPOnly prevents JavaScript access to the cookie.
func WithHTTPOnly(httpOnly bool) Option {
	return func(s *Spec) {
		s.HttpOnly = httpOnly
	}
}

// WithSameSite sets the SameSite attribute for CSRF protection.
func WithSameSite(sameSite SameSite) Option {
	return func(s *Spec) {
		s.SameSite = sameSite
	}
}
