package router

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/averen/relay/dispatch"
)

func okEndpoint() dispatch.Endpoint {
	return dispatch.EndpointFunc(func(context.Context, dispatch.Request, dispatch.Params) (dispatch.Reply, error) {
		return dispatch.ForStatus(http.StatusOK), nil
	})
}

func TestRouterMatch(t *testing.T) {
	t.Run("resolves a matching rule with params", func(t *testing.T) {
		rt := NewRouter()
		rt.Handle("/widgets/{id:int}", okEndpoint()).Methods(http.MethodGet).Name("widget-get")

		match, err := rt.Match(dispatch.Request{Method: http.MethodGet, URI: "/widgets/42"})
		require.NoError(t, err)
		require.NotNil(t, match)
		assert.Equal(t, "42", match.Params.Get("id"))
		assert.Equal(t, "widget-get", match.Route)
		assert.NotNil(t, match.Endpoint)
	})

	t.Run("unnamed rule is identified by its template", func(t *testing.T) {
		rt := NewRouter()
		rt.Handle("/widgets", okEndpoint()).Methods(http.MethodGet)

		match, err := rt.Match(dispatch.Request{Method: http.MethodGet, URI: "/widgets"})
		require.NoError(t, err)
		require.NotNil(t, match)
		assert.Equal(t, "/widgets", match.Route)
	})

	t.Run("returns no match for wrong method", func(t *testing.T) {
		rt := NewRouter()
		rt.Handle("/widgets", okEndpoint()).Methods(http.MethodGet)

		match, err := rt.Match(dispatch.Request{Method: http.MethodPut, URI: "/widgets"})
		require.NoError(t, err)
		assert.Nil(t, match)
	})

	t.Run("returns no match for unknown path", func(t *testing.T) {
		rt := NewRouter()
		rt.Handle("/widgets", okEndpoint()).Methods(http.MethodGet)

		match, err := rt.Match(dispatch.Request{Method: http.MethodGet, URI: "/gadgets"})
		require.NoError(t, err)
		assert.Nil(t, match)
	})

	t.Run("fails with ErrInvalidTarget for unparsable target", func(t *testing.T) {
		rt := NewRouter()
		rt.Handle("/widgets", okEndpoint())

		match, err := rt.Match(dispatch.Request{Method: http.MethodGet, URI: "http://%zz"})
		assert.Nil(t, match)
		assert.ErrorIs(t, err, dispatch.ErrInvalidTarget)
	})

	t.Run("rule without methods matches any method", func(t *testing.T) {
		rt := NewRouter()
		rt.Handle("/anything", okEndpoint())

		for _, method := range []string{http.MethodGet, http.MethodPut, "PURGE"} {
			match, err := rt.Match(dispatch.Request{Method: method, URI: "/anything"})
			require.NoError(t, err)
			assert.NotNil(t, match, method)
		}
	})

	t.Run("method tokens are case-sensitive", func(t *testing.T) {
		rt := NewRouter()
		rt.Handle("/widgets", okEndpoint()).Methods("GET")

		match, err := rt.Match(dispatch.Request{Method: "get", URI: "/widgets"})
		require.NoError(t, err)
		assert.Nil(t, match)
	})

	t.Run("query string does not affect matching", func(t *testing.T) {
		rt := NewRouter()
		rt.Handle("/widgets", okEndpoint()).Methods(http.MethodGet)

		match, err := rt.Match(dispatch.Request{Method: http.MethodGet, URI: "/widgets?page=2"})
		require.NoError(t, err)
		assert.NotNil(t, match)
	})

	t.Run("dot segments are removed before matching", func(t *testing.T) {
		rt := NewRouter()
		rt.Handle("/widgets/1", okEndpoint()).Methods(http.MethodGet)

		match, err := rt.Match(dispatch.Request{Method: http.MethodGet, URI: "/widgets/../widgets/1"})
		require.NoError(t, err)
		assert.NotNil(t, match)
	})

	t.Run("absolute-form target matches by path", func(t *testing.T) {
		rt := NewRouter()
		rt.Handle("/widgets", okEndpoint()).Methods(http.MethodGet)

		match, err := rt.Match(dispatch.Request{Method: http.MethodGet, URI: "http://example.com/widgets"})
		require.NoError(t, err)
		assert.NotNil(t, match)
	})

	t.Run("rule with a build error never matches", func(t *testing.T) {
		rt := NewRouter()
		rule := rt.Handle("/widgets/{id}/{id}", okEndpoint())
		assert.Error(t, rule.GetError())

		match, err := rt.Match(dispatch.Request{Method: http.MethodGet, URI: "/widgets/1/1"})
		require.NoError(t, err)
		assert.Nil(t, match)
	})

	t.Run("first registered rule wins", func(t *testing.T) {
		rt := NewRouter()
		rt.Handle("/widgets/{id}", okEndpoint()).Methods(http.MethodGet).Name("first")
		rt.Handle("/widgets/{id:int}", okEndpoint()).Methods(http.MethodGet).Name("second")

		match, err := rt.Match(dispatch.Request{Method: http.MethodGet, URI: "/widgets/42"})
		require.NoError(t, err)
		require.NotNil(t, match)
		assert.Equal(t, "first", match.Route)
	})
}

func TestMethodsForValidRules(t *testing.T) {
	t.Run("reports union of method sets for a path", func(t *testing.T) {
		rt := NewRouter()
		rt.Handle("/widgets/{id}", okEndpoint()).Methods(http.MethodGet)
		rt.Handle("/widgets/{id}", okEndpoint()).Methods(http.MethodDelete)

		methods := rt.MethodsForValidRules(dispatch.Request{Method: http.MethodPut, URI: "/widgets/1"})
		assert.Equal(t, []string{http.MethodGet, http.MethodDelete}, methods)
	})

	t.Run("deduplicates method tokens", func(t *testing.T) {
		rt := NewRouter()
		rt.Handle("/widgets", okEndpoint()).Methods(http.MethodGet, http.MethodPost)
		rt.Handle("/widgets", okEndpoint()).Methods(http.MethodGet)

		methods := rt.MethodsForValidRules(dispatch.Request{Method: http.MethodPut, URI: "/widgets"})
		assert.Equal(t, []string{http.MethodGet, http.MethodPost}, methods)
	})

	t.Run("empty for unknown path", func(t *testing.T) {
		rt := NewRouter()
		rt.Handle("/widgets", okEndpoint()).Methods(http.MethodGet)

		assert.Empty(t, rt.MethodsForValidRules(dispatch.Request{Method: http.MethodGet, URI: "/unknown"}))
	})

	t.Run("empty for unparsable target", func(t *testing.T) {
		rt := NewRouter()
		rt.Handle("/widgets", okEndpoint()).Methods(http.MethodGet)

		assert.Empty(t, rt.MethodsForValidRules(dispatch.Request{Method: http.MethodGet, URI: "http://%zz"}))
	})

	t.Run("preserves the registered case of tokens", func(t *testing.T) {
		rt := NewRouter()
		rt.Handle("/widgets", okEndpoint()).Methods("Purge")

		methods := rt.MethodsForValidRules(dispatch.Request{Method: http.MethodGet, URI: "/widgets"})
		assert.Equal(t, []string{"Purge"}, methods)
	})
}

func TestRuleBuilder(t *testing.T) {
	t.Run("Get returns named rule", func(t *testing.T) {
		rt := NewRouter()
		rule := rt.Handle("/widgets", okEndpoint()).Name("widgets")
		assert.Same(t, rule, rt.Get("widgets"))
		assert.Nil(t, rt.Get("missing"))
	})

	t.Run("naming twice is an error", func(t *testing.T) {
		rt := NewRouter()
		rule := rt.Handle("/widgets", okEndpoint()).Name("a").Name("b")
		assert.ErrorContains(t, rule.GetError(), "already has name")
	})

	t.Run("empty method token is an error", func(t *testing.T) {
		rt := NewRouter()
		rule := rt.Handle("/widgets", okEndpoint()).Methods("")
		assert.ErrorContains(t, rule.GetError(), "empty method token")
	})

	t.Run("GetPathTemplate returns the template", func(t *testing.T) {
		rt := NewRouter()
		rule := rt.Handle("/widgets/{id}", okEndpoint())
		tpl, err := rule.GetPathTemplate()
		require.NoError(t, err)
		assert.Equal(t, "/widgets/{id}", tpl)
	})

	t.Run("Rules returns registration order", func(t *testing.T) {
		rt := NewRouter()
		first := rt.Handle("/a", okEndpoint())
		second := rt.Handle("/b", okEndpoint())
		require.Len(t, rt.Rules(), 2)
		assert.Same(t, first, rt.Rules()[0])
		assert.Same(t, second, rt.Rules()[1])
	})
}
