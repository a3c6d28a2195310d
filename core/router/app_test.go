package router_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerohttp/aero/core/binder"
	"github.com/aerohttp/aero/core/cookie"
	"github.com/aerohttp/aero/core/handler"
	"github.com/aerohttp/aero/core/response"
	"github.com/aerohttp/aero/core/router"
	"github.com/aerohttp/aero/core/transport"
	"github.com/aerohttp/aero/core/ws"
)

func dispatch(t *testing.T, app *router.App, method, url string) *transport.Result {
	t.Helper()
	return app.Dispatch(t.Context(), &transport.Request{
		Method: method,
		URL:    url,
		Header: transport.NewHeader(),
	})
}

func TestAppDispatch(t *testing.T) {
	t.Parallel()

	t.Run("static route", func(t *testing.T) {
		t.Parallel()

		app := router.New()
		app.Get("/hello", func(ctx *handler.Context) (handler.Responder, error) {
			return response.Text("hi"), nil
		})

		res := dispatch(t, app, http.MethodGet, "/hello")
		assert.Equal(t, http.StatusOK, res.Status)
		assert.Equal(t, "text/plain; charset=utf-8", res.Header.Get("Content-Type"))
		assert.Equal(t, "hi", string(res.Body))
	})

	t.Run("param extraction", func(t *testing.T) {
		t.Parallel()

		app := router.New()
		app.Get("/users/:id/posts/:pid", func(ctx *handler.Context) (handler.Responder, error) {
			return response.JSON(map[string]string{
				"id":  ctx.Param("id"),
				"pid": ctx.Param("pid"),
			}), nil
		})

		res := dispatch(t, app, http.MethodGet, "/users/42/posts/7")
		assert.Equal(t, http.StatusOK, res.Status)
		assert.Equal(t, "application/json; charset=utf-8", res.Header.Get("Content-Type"))
		assert.JSONEq(t, `{"id":"42","pid":"7"}`, string(res.Body))
	})

	t.Run("double wildcard tail", func(t *testing.T) {
		t.Parallel()

		app := router.New()
		app.Get("/files/**", func(ctx *handler.Context) (handler.Responder, error) {
			return response.Text(ctx.Param(router.WildcardKey)), nil
		})

		res := dispatch(t, app, http.MethodGet, "/files/a/b/c.txt")
		assert.Equal(t, http.StatusOK, res.Status)
		assert.Equal(t, "a/b/c.txt", string(res.Body))
	})

	t.Run("query string is stripped before matching", func(t *testing.T) {
		t.Parallel()

		app := router.New()
		app.Get("/search", func(ctx *handler.Context) (handler.Responder, error) {
			return response.Text("found"), nil
		})

		res := dispatch(t, app, http.MethodGet, "/search?q=go")
		assert.Equal(t, http.StatusOK, res.Status)
	})

	t.Run("miss yields 404", func(t *testing.T) {
		t.Parallel()

		app := router.New()
		res := dispatch(t, app, http.MethodGet, "/nope")
		assert.Equal(t, http.StatusNotFound, res.Status)
		assert.Equal(t, "Not Found", string(res.Body))
	})

	t.Run("all matches any method below exact routes", func(t *testing.T) {
		t.Parallel()

		app := router.New()
		app.All("/thing", func(ctx *handler.Context) (handler.Responder, error) {
			return response.Text("any"), nil
		})
		app.Get("/thing", func(ctx *handler.Context) (handler.Responder, error) {
			return response.Text("get"), nil
		})

		assert.Equal(t, "get", string(dispatch(t, app, http.MethodGet, "/thing").Body))
		assert.Equal(t, "any", string(dispatch(t, app, http.MethodDelete, "/thing").Body))
	})

	t.Run("handler error yields 500", func(t *testing.T) {
		t.Parallel()

		app := router.New()
		app.Get("/boom", func(ctx *handler.Context) (handler.Responder, error) {
			return nil, fmt.Errorf("kaput")
		})

		res := dispatch(t, app, http.MethodGet, "/boom")
		assert.Equal(t, http.StatusInternalServerError, res.Status)
		assert.Equal(t, "Internal Server Error", string(res.Body))
	})

	t.Run("body decode error yields 400", func(t *testing.T) {
		t.Parallel()

		app := router.New()
		app.Post("/ingest", func(ctx *handler.Context) (handler.Responder, error) {
			var payload struct {
				Name string `json:"name"`
			}
			if err := binder.JSON(ctx, &payload); err != nil {
				return nil, err
			}
			return response.Empty(), nil
		})

		res := app.Dispatch(t.Context(), &transport.Request{
			Method: http.MethodPost,
			URL:    "/ingest",
			Header: transport.NewHeader(),
			Body:   []byte("{not json"),
		})
		assert.Equal(t, http.StatusBadRequest, res.Status)
		assert.Equal(t, "Invalid body", string(res.Body))
	})

	t.Run("panic yields 500", func(t *testing.T) {
		t.Parallel()

		app := router.New()
		app.Get("/panic", func(ctx *handler.Context) (handler.Responder, error) {
			panic("surprise")
		})

		res := dispatch(t, app, http.MethodGet, "/panic")
		assert.Equal(t, http.StatusInternalServerError, res.Status)
	})

	t.Run("nil responder yields 500", func(t *testing.T) {
		t.Parallel()

		app := router.New()
		app.Get("/nil", func(ctx *handler.Context) (handler.Responder, error) {
			return nil, nil
		})

		res := dispatch(t, app, http.MethodGet, "/nil")
		assert.Equal(t, http.StatusInternalServerError, res.Status)
	})

	t.Run("cookies emitted as set-cookie headers", func(t *testing.T) {
		t.Parallel()

		app := router.New()
		app.Get("/login", func(ctx *handler.Context) (handler.Responder, error) {
			ctx.SetCookie(cookie.New("session", "tok", cookie.WithPath("/")))
			ctx.SetCookie(cookie.New("theme", "dark"))
			return response.Empty(), nil
		})

		res := dispatch(t, app, http.MethodGet, "/login")
		values := res.Header.Values("Set-Cookie")
		require.Len(t, values, 2)
		assert.Equal(t, "session=tok; Path=/", values[0])
		assert.Equal(t, "theme=dark", values[1])
	})

	t.Run("invalid route pattern panics at registration", func(t *testing.T) {
		t.Parallel()

		app := router.New()
		assert.Panics(t, func() {
			app.Get("/files/**/meta", func(ctx *handler.Context) (handler.Responder, error) {
				return response.Empty(), nil
			})
		})
	})
}

func TestAppMiddleware(t *testing.T) {
	t.Parallel()

	tracer := func(name string, trace *[]string) handler.Middleware {
		return func(ctx *handler.Context, next handler.Next) (handler.Responder, error) {
			*trace = append(*trace, name+"-pre")
			r, err := next()
			*trace = append(*trace, name+"-post")
			return r, err
		}
	}

	t.Run("onion order around the handler", func(t *testing.T) {
		t.Parallel()

		var trace []string
		app := router.New()
		app.Use(tracer("m1", &trace))
		app.Group("/api", func(g *router.App) {
			g.Use(tracer("m2", &trace))
			g.Get("/x", func(ctx *handler.Context) (handler.Responder, error) {
				trace = append(trace, "handler")
				return response.Empty(), nil
			})
		})

		res := dispatch(t, app, http.MethodGet, "/api/x")
		assert.Equal(t, http.StatusOK, res.Status)
		assert.Equal(t, []string{"m1-pre", "m2-pre", "handler", "m2-post", "m1-post"}, trace)
	})

	t.Run("onion order around a 404", func(t *testing.T) {
		t.Parallel()

		var trace []string
		app := router.New()
		app.Use(tracer("m1", &trace))
		app.Group("/api", func(g *router.App) {
			g.Use(tracer("m2", &trace))
			g.Get("/x", func(ctx *handler.Context) (handler.Responder, error) {
				return response.Empty(), nil
			})
		})

		res := dispatch(t, app, http.MethodGet, "/api/y")
		assert.Equal(t, http.StatusNotFound, res.Status)
		assert.Equal(t, []string{"m1-pre", "m2-pre", "m2-post", "m1-post"}, trace)
	})

	t.Run("base path scoping skips foreign prefixes", func(t *testing.T) {
		t.Parallel()

		var trace []string
		app := router.New()
		app.UseAt("/admin", tracer("admin", &trace))
		app.Get("/public", func(ctx *handler.Context) (handler.Responder, error) {
			return response.Empty(), nil
		})

		dispatch(t, app, http.MethodGet, "/public")
		assert.Empty(t, trace)
	})

	t.Run("short-circuiting middleware skips the handler", func(t *testing.T) {
		t.Parallel()

		app := router.New()
		app.Use(func(ctx *handler.Context, next handler.Next) (handler.Responder, error) {
			return response.TextWithStatus("blocked", http.StatusForbidden), nil
		})
		app.Get("/secret", func(ctx *handler.Context) (handler.Responder, error) {
			t.Fatal("handler must not run")
			return nil, nil
		})

		res := dispatch(t, app, http.MethodGet, "/secret")
		assert.Equal(t, http.StatusForbidden, res.Status)
		assert.Equal(t, "blocked", string(res.Body))
	})

	t.Run("middleware error yields 500", func(t *testing.T) {
		t.Parallel()

		app := router.New()
		app.Use(func(ctx *handler.Context, next handler.Next) (handler.Responder, error) {
			return nil, fmt.Errorf("auth backend down")
		})
		app.Get("/x", func(ctx *handler.Context) (handler.Responder, error) {
			return response.Empty(), nil
		})

		res := dispatch(t, app, http.MethodGet, "/x")
		assert.Equal(t, http.StatusInternalServerError, res.Status)
	})
}

func TestAppGroup(t *testing.T) {
	t.Parallel()

	t.Run("nested groups compose prefixes", func(t *testing.T) {
		t.Parallel()

		app := router.New()
		app.Group("/api", func(g *router.App) {
			g.Group("/v1", func(v *router.App) {
				v.Get("/ping", func(ctx *handler.Context) (handler.Responder, error) {
					return response.Text("pong"), nil
				})
			})
		})

		res := dispatch(t, app, http.MethodGet, "/api/v1/ping")
		assert.Equal(t, "pong", string(res.Body))
	})

	t.Run("same prefix is additive", func(t *testing.T) {
		t.Parallel()

		app := router.New()
		app.Group("/api", func(g *router.App) {
			g.Get("/a", func(ctx *handler.Context) (handler.Responder, error) {
				return response.Text("a"), nil
			})
		})
		app.Group("/api", func(g *router.App) {
			g.Get("/b", func(ctx *handler.Context) (handler.Responder, error) {
				return response.Text("b"), nil
			})
		})

		assert.Equal(t, "a", string(dispatch(t, app, http.MethodGet, "/api/a").Body))
		assert.Equal(t, "b", string(dispatch(t, app, http.MethodGet, "/api/b").Body))
	})

	t.Run("empty group is a no-op", func(t *testing.T) {
		t.Parallel()

		app := router.New()
		app.Group("/api", nil)
		assert.Empty(t, app.Routes())
	})

	t.Run("websocket routes merge with the prefix", func(t *testing.T) {
		t.Parallel()

		app := router.New()
		app.Group("/live", func(g *router.App) {
			g.WS("/chat", ws.HandlerFuncs{})
		})

		_, ok := app.WSHandler("/live/chat")
		assert.True(t, ok)
		_, ok = app.WSHandler("/chat")
		assert.False(t, ok)
	})
}

func TestAppIntrospection(t *testing.T) {
	t.Parallel()

	app := router.New(router.WithBasePath("/svc"))
	app.Get("/a", func(ctx *handler.Context) (handler.Responder, error) { return response.Empty(), nil })
	app.Post("/b", func(ctx *handler.Context) (handler.Responder, error) { return response.Empty(), nil })

	routes := app.Routes()
	require.Len(t, routes, 2)
	assert.Equal(t, router.Route{Method: "GET", Pattern: "/svc/a"}, routes[0])
	assert.Equal(t, router.Route{Method: "POST", Pattern: "/svc/b"}, routes[1])
	assert.NotNil(t, app.Hub())
}
