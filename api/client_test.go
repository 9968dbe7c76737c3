package api

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quill/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, slog.New(slog.NewTextHandler(testWriter{t}, nil)))
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

func TestClientDecodesResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/posts/abc", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"abc","title":"Hello","slug":"hello","status":"published"}`))
	})

	post, err := NewPostsClient(client).Get(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", post.ID)
	assert.Equal(t, "Hello", post.Title)
	assert.Equal(t, models.PostStatusPublished, post.Status)
}

func TestClientSendsBearerFromContext(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	})

	ctx := WithBearer(context.Background(), "backend-token")
	_, err := NewUsersClient(client).List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bearer backend-token", gotAuth)
}

func TestClientOmitsBearerWithoutContextToken(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	})

	_, err := NewUsersClient(client).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClientDecodesErrorEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"post not found"}`))
	})

	_, err := NewPostsClient(client).Get(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "backend returned 404")
	assert.Contains(t, err.Error(), "post not found")
}

func TestClientFallsBackToStatusText(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`not json at all`))
	})

	_, err := NewTaxonomyClient(client).CreateTag(context.Background(), &models.CreateTagRequest{Name: "Go", Slug: "go"})
	require.Error(t, err)
	assert.True(t, IsConflict(err))
	assert.Contains(t, err.Error(), http.StatusText(http.StatusConflict))
}

func TestPostsListBuildsQuery(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"posts":[],"total":0,"limit":10,"offset":20}`))
	})

	page, err := NewPostsClient(client).List(context.Background(), ListQuery{
		Status: models.PostStatusPublished,
		Search: "gardening",
		Limit:  10,
		Offset: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, page.Total)

	values, err := url.ParseQuery(gotQuery)
	require.NoError(t, err)
	assert.Equal(t, "published", values.Get("status"))
	assert.Equal(t, "gardening", values.Get("q"))
	assert.Equal(t, "10", values.Get("limit"))
	assert.Equal(t, "20", values.Get("offset"))
}

func TestDeleteSendsNoBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Empty(t, r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusNoContent)
	})

	err := NewCommentsClient(client).Delete(context.Background(), "c1")
	require.NoError(t, err)
}

func TestIsNotFoundIgnoresOtherErrors(t *testing.T) {
	assert.False(t, IsNotFound(context.Canceled))
	assert.False(t, IsConflict(&Error{Status: http.StatusNotFound}))
	assert.True(t, IsNotFound(&Error{Status: http.StatusNotFound}))
}
