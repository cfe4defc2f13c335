package utils

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			assert.Equal(t, "application/json", r.Header.Get("Accept"))
			w.Write([]byte(`{"name":"` + r.URL.Query().Get("q") + `"}`))
		case "/missing":
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"Resource does not exist"}`))
		default:
			w.Write([]byte(`not json`))
		}
	}))
	defer server.Close()

	api := NewAPI(server.URL + "/")
	ctx := context.Background()

	t.Run("decodes body with params", func(t *testing.T) {
		var out struct {
			Name string `json:"name"`
		}
		err := api.Get(ctx, "/ok", url.Values{"q": {"frieren"}}, &out)
		require.NoError(t, err)
		assert.Equal(t, "frieren", out.Name)
	})

	t.Run("non 2xx is a StatusError", func(t *testing.T) {
		var out map[string]any
		err := api.Get(ctx, "/missing", nil, &out)

		var statusErr *StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
		assert.Contains(t, statusErr.Error(), "Resource does not exist")
	})

	t.Run("bad json", func(t *testing.T) {
		var out map[string]any
		err := api.Get(ctx, "/garbage", nil, &out)
		assert.Error(t, err)
	})
}
