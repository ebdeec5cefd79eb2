package dispatch

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReply(t *testing.T) {
	t.Run("ForStatus carries no headers or body", func(t *testing.T) {
		rep := ForStatus(http.StatusNotFound)
		assert.Equal(t, http.StatusNotFound, rep.Status)
		assert.Nil(t, rep.Header)
		assert.Nil(t, rep.Body)
	})

	t.Run("WithHeader does not modify the receiver", func(t *testing.T) {
		base := ForStatus(http.StatusNoContent).WithHeader("Allow", "GET, OPTIONS")
		derived := base.WithHeader("Allow", "OPTIONS")

		assert.Equal(t, "GET, OPTIONS", base.Header.Get("Allow"))
		assert.Equal(t, "OPTIONS", derived.Header.Get("Allow"))
	})

	t.Run("WithHeader preserves existing fields", func(t *testing.T) {
		rep := ForStatus(http.StatusOK).
			WithHeader("Content-Type", "application/json").
			WithHeader("Allow", "GET, OPTIONS")

		assert.Equal(t, "application/json", rep.Header.Get("Content-Type"))
		assert.Equal(t, "GET, OPTIONS", rep.Header.Get("Allow"))
	})

	t.Run("WithBody sets the payload", func(t *testing.T) {
		rep := ForStatus(http.StatusOK).WithBody([]byte(`{"ok":true}`))
		assert.Equal(t, []byte(`{"ok":true}`), rep.Body)
	})
}

func TestParams(t *testing.T) {
	t.Run("Get returns captured value", func(t *testing.T) {
		p := Params{"id": "42"}
		assert.Equal(t, "42", p.Get("id"))
	})

	t.Run("Get returns empty string for missing variable", func(t *testing.T) {
		assert.Equal(t, "", Params(nil).Get("id"))
	})
}

func TestEndpointFunc(t *testing.T) {
	t.Run("forwards arguments and result", func(t *testing.T) {
		ep := EndpointFunc(func(_ context.Context, req Request, params Params) (Reply, error) {
			assert.Equal(t, http.MethodGet, req.Method)
			assert.Equal(t, "1", params.Get("id"))
			return ForStatus(http.StatusOK), nil
		})

		rep, err := ep.Invoke(context.Background(), Request{Method: http.MethodGet}, Params{"id": "1"})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rep.Status)
	})
}
