package client

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"gb2gh/internal/errcodes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRESTClient(t *testing.T) {
	t.Run("sends the token on every request", func(t *testing.T) {
		var got string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r.Header.Get("Authorization")
		}))
		defer srv.Close()

		_, err := NewRESTClient(&Options{Token: "secret"}).R().Get(srv.URL)
		require.NoError(t, err)
		assert.Equal(t, "token secret", got)
	})
}

func TestCheckResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"Not Found"}`))
			return
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()
	c := NewRESTClient(&Options{Token: "secret"})

	t.Run("accepts a 2xx response", func(t *testing.T) {
		r, err := c.R().Post(srv.URL + "/ok")
		require.NoError(t, err)
		assert.NoError(t, CheckResponse(r))
	})

	t.Run("rejects a non 2xx response", func(t *testing.T) {
		r, err := c.R().Get(srv.URL + "/missing")
		require.NoError(t, err)

		err = CheckResponse(r)
		assert.ErrorIs(t, err, errcodes.ErrRequestFailed)
		assert.Contains(t, err.Error(), "404")
		assert.Contains(t, err.Error(), "Not Found")
	})
}
