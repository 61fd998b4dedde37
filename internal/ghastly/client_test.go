package ghastly

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClient(srv.URL + "/"), srv
}

func TestClient_Login(t *testing.T) {
	t.Run("200 returns token and admin flag", func(t *testing.T) {
		var gotBody map[string]string
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/users/login", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"token":"tok-123","admin":true}`))
		})
		defer srv.Close()

		result, err := client.Login(context.Background(), "jane_a", "correct horse")
		require.NoError(t, err)
		assert.Equal(t, "tok-123", result.Token)
		assert.True(t, result.Admin)
		assert.Equal(t, "jane_a", gotBody["user_name"])
		assert.Equal(t, "correct horse", gotBody["password"])
	})

	t.Run("non-200 surfaces status and body", func(t *testing.T) {
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte("bad credentials"))
		})
		defer srv.Close()

		_, err := client.Login(context.Background(), "jane_a", "wrong")
		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusUnauthorized, statusErr.Code)
		assert.Equal(t, "bad credentials", statusErr.Body)
	})

	t.Run("transport failure reports unavailable", func(t *testing.T) {
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {})
		srv.Close() // connection refused from here on

		_, err := client.Login(context.Background(), "jane_a", "correct horse")
		assert.ErrorIs(t, err, ErrUnavailable)
	})
}

func TestClient_Register(t *testing.T) {
	t.Run("201 is success", func(t *testing.T) {
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/users/register", r.URL.Path)
			w.WriteHeader(http.StatusCreated)
		})
		defer srv.Close()

		err := client.Register(context.Background(), Registration{
			Name:     "Jane Analyst",
			UserName: "jane_a",
			Email:    "jane@example.com",
			Password: "correct horse",
		})
		assert.NoError(t, err)
	})

	t.Run("400 surfaces as status error", func(t *testing.T) {
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte("email taken"))
		})
		defer srv.Close()

		err := client.Register(context.Background(), Registration{Email: "jane@example.com"})
		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusBadRequest, statusErr.Code)
	})
}

func TestClient_ListPredictions(t *testing.T) {
	t.Run("200 decodes the wrapped list", func(t *testing.T) {
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/predictions/", r.URL.Path)
			assert.Equal(t, "tok-123", r.Header.Get("x-access-token"))
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"predictions":[
				{"id":1,"odds":2.5,"comment":"home win","approved":true},
				{"id":2,"odds":1.8,"comment":"over 2.5","approved":false}
			]}`))
		})
		defer srv.Close()

		predictions, err := client.ListPredictions(context.Background(), "tok-123")
		require.NoError(t, err)
		require.Len(t, predictions, 2)
		assert.Equal(t, 1, predictions[0].ID)
		assert.Equal(t, "home win", predictions[0].Comment)
		assert.True(t, predictions[0].Approved)
		assert.Equal(t, "2.5", predictions[0].Odds.String())
	})

	t.Run("401 surfaces as status error", func(t *testing.T) {
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
		defer srv.Close()

		_, err := client.ListPredictions(context.Background(), "stale")
		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusUnauthorized, statusErr.Code)
	})
}

func TestClient_UpdatePrediction(t *testing.T) {
	t.Run("201 is success and payload carries comment and flag", func(t *testing.T) {
		var gotBody map[string]any
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/predictions/7", r.URL.Path)
			assert.Equal(t, "tok-123", r.Header.Get("x-access-token"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.WriteHeader(http.StatusCreated)
		})
		defer srv.Close()

		err := client.UpdatePrediction(context.Background(), "tok-123", "7", "looks solid", true)
		require.NoError(t, err)
		assert.Equal(t, "looks solid", gotBody["comment"])
		assert.Equal(t, true, gotBody["approved"])
	})

	t.Run("anything but 201 is a status error", func(t *testing.T) {
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		defer srv.Close()

		err := client.UpdatePrediction(context.Background(), "tok-123", "7", "", false)
		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusOK, statusErr.Code)
	})
}
