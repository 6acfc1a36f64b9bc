package confluence_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meeting-minutes/pkg/confluence"
)

func TestFlexibleID(t *testing.T) {
	var got struct {
		A confluence.FlexibleID `json:"a"`
		B confluence.FlexibleID `json:"b"`
		C confluence.FlexibleID `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"98304","b":12345678901,"c":null}`), &got))

	assert.Equal(t, "98304", got.A.String())
	assert.Equal(t, "12345678901", got.B.String())
	assert.Empty(t, got.C.String())
}

func TestContentV1ParentID(t *testing.T) {
	c := confluence.ContentV1{Ancestors: []confluence.Ancestor{{ID: "1"}, {ID: "7"}}}
	assert.Equal(t, "7", c.ParentID())
	assert.Empty(t, confluence.ContentV1{}.ParentID())
}

func TestClientNotConfigured(t *testing.T) {
	c := confluence.NewClient(confluence.Config{BaseURL: "https://acme.atlassian.net"})

	_, err := c.GetSpace(context.Background(), "DEV")
	assert.ErrorIs(t, err, confluence.ErrNotConfigured)
}

func TestPageURL(t *testing.T) {
	c := confluence.NewClient(confluence.Config{BaseURL: "https://acme.atlassian.net/"})
	assert.Equal(t, "https://acme.atlassian.net/wiki/spaces/DEV/pages/1", c.PageURL("/spaces/DEV/pages/1"))
}

func TestGetSpace(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wiki/rest/api/space/DEV", r.URL.Path)
		w.Write([]byte(`{"id":98304,"key":"DEV","name":"Development"}`))
	}))
	defer ts.Close()

	space, err := newClient(ts.URL).GetSpace(context.Background(), "DEV")
	require.NoError(t, err)
	assert.Equal(t, "98304", space.ID.String())
	assert.Equal(t, "Development", space.Name)
}

func TestCreatePage(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/wiki/rest/api/content", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var req confluence.CreatePageRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "page", req.Type)
			assert.Equal(t, "Weekly sync", req.Title)
			assert.Equal(t, "DEV", req.Space.Key)
			assert.Equal(t, "storage", req.Body.Storage.Representation)
			assert.Equal(t, "<p>hi</p>", req.Body.Storage.Value)
			require.Len(t, req.Ancestors, 1)
			assert.Equal(t, "42", req.Ancestors[0].ID.String())

			w.Write([]byte(`{"id":"123","type":"page","title":"Weekly sync","_links":{"webui":"/x"}}`))
		}))
		defer ts.Close()

		req := confluence.NewCreatePageRequest("DEV", "Weekly sync", "<p>hi</p>", "42")
		created, err := newClient(ts.URL).CreatePage(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "123", created.ID.String())
		assert.Equal(t, "/x", created.Links.WebUI)
	})

	t.Run("No Parent Omits Ancestors", func(t *testing.T) {
		req := confluence.NewCreatePageRequest("DEV", "t", "c", "")
		raw, err := json.Marshal(req)
		require.NoError(t, err)
		assert.NotContains(t, string(raw), "ancestors")
	})

	t.Run("Rejected", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"message":"A page with this title already exists"}`))
		}))
		defer ts.Close()

		_, err := newClient(ts.URL).CreatePage(context.Background(), confluence.NewCreatePageRequest("DEV", "t", "c", ""))
		var pubErr *confluence.PublishError
		require.True(t, errors.As(err, &pubErr))
		assert.Equal(t, http.StatusBadRequest, pubErr.StatusCode)
		assert.Contains(t, pubErr.Body, "already exists")
	})
}

func TestWithHTTPClientTimeout(t *testing.T) {
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer ts.Close()
	defer close(release)

	c := newClient(ts.URL).WithHTTPClient(&http.Client{Timeout: 50 * time.Millisecond})
	_, err := c.GetSpace(context.Background(), "DEV")
	require.Error(t, err)

	var apiErr *confluence.APIError
	assert.False(t, errors.As(err, &apiErr), "a timeout is a transport error, not an API response")
}
