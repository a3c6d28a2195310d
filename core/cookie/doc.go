// Package cookie implements the HTTP cookie codec: parsing of inbound
// Cookie request headers into named items and serialisation of outbound
// cookie specs into Set-Cookie header values with a fixed attribute order.
//
// Outbound cookies are built with functional options:
//
//	spec := cookie.New("session", token,
//		cookie.WithPath("/"),
//		cookie.WithMaxAge(3600),
//		cookie.WithHTTPOnly(true),
//		cookie.WithSameSite(cookie.SameSiteLax))
//
// Delete produces the conventional expiry spec (empty value, Max-Age=0):
//
//	ctx.SetCookie(cookie.Delete("session", cookie.WithPath("/")))
package cookie
