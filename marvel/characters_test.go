package marvel

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharactersGet(t *testing.T) {
	var gotPath string
	var gotQuery int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = len(r.URL.Query())
		fmt.Fprint(w, singleCharacterBody)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	character, err := client.Characters.Get(t.Context(), 1009368)
	require.NoError(t, err)

	assert.Equal(t, "/v1/public/characters/1009368", gotPath)
	// Exactly the three injected auth params, nothing else.
	assert.Equal(t, 3, gotQuery)
	assert.Equal(t, "Iron Man", character.Name)
}

func TestCharactersGetNotFoundAnnotated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"code":404,"status":"We couldn't find that character"}`)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.Characters.Get(t.Context(), 99999999)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindNotFound, apiErr.Kind)
	assert.Equal(t, "character", apiErr.ResourceType)
	assert.Equal(t, "99999999", apiErr.ResourceID)
}

func TestCharactersList(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		fmt.Fprint(w, listBody)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	resp, err := client.Characters.List(t.Context(), &CharacterFilter{
		ListOptions:    ListOptions{Limit: Int(10), Offset: Int(0)},
		NameStartsWith: "Iron",
		Comics:         []int{123, 456},
	})
	require.NoError(t, err)

	assert.Equal(t, "/v1/public/characters", gotPath)
	assert.Equal(t, []string{"10"}, gotQuery["limit"])
	assert.Equal(t, []string{"0"}, gotQuery["offset"])
	assert.Equal(t, []string{"Iron"}, gotQuery["nameStartsWith"])
	assert.Equal(t, []string{"123,456"}, gotQuery["comics"])

	assert.Equal(t, 2, resp.Data.Count)
	require.Len(t, resp.Data.Results, 2)
}

func TestCharactersListNilFilter(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, listBody)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	resp, err := client.Characters.List(t.Context(), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Data.Total)
}

func TestCharactersRelatedResources(t *testing.T) {
	comicList := `{
		"code": 200, "status": "Ok", "copyright": "c",
		"attributionText": "a", "attributionHTML": "b", "etag": "e",
		"data": {"offset": 0, "limit": 20, "total": 1, "count": 1,
			"results": [{"id": 428, "title": "Ant-Man (2003) #1"}]}
	}`

	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, comicList)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	resp, err := client.Characters.Comics(t.Context(), 1009368, &ComicFilter{
		ListOptions: ListOptions{Limit: Int(5)},
	})
	require.NoError(t, err)

	assert.Equal(t, "/v1/public/characters/1009368/comics", gotPath)
	require.Len(t, resp.Data.Results, 1)
	assert.Equal(t, "Ant-Man (2003) #1", resp.Data.Results[0].Title)
}

func TestServicePaths(t *testing.T) {
	// Every service hits its own collection under /v1/public.
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, listBody)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	ctx := t.Context()

	tests := []struct {
		name string
		call func() error
		path string
	}{
		{"comics", func() error { _, err := client.Comics.List(ctx, nil); return err }, "/v1/public/comics"},
		{"creators", func() error { _, err := client.Creators.List(ctx, nil); return err }, "/v1/public/creators"},
		{"events", func() error { _, err := client.Events.List(ctx, nil); return err }, "/v1/public/events"},
		{"series", func() error { _, err := client.Series.List(ctx, nil); return err }, "/v1/public/series"},
		{"stories", func() error { _, err := client.Stories.List(ctx, nil); return err }, "/v1/public/stories"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.call())
			assert.Equal(t, tt.path, gotPath)
		})
	}
}
