package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := New(srv.URL)
	if err != nil {
		t.Fatalf("New(%q): %v", srv.URL, err)
	}
	return client
}

func TestNewRejectsRelativeURL(t *testing.T) {
	tests := []string{"", "not-a-url", "/just/a/path", "://bad"}

	for _, tt := range tests {
		t.Run(tt, func(t *testing.T) {
			if _, err := New(tt); err == nil {
				t.Errorf("New(%q) accepted an invalid base URL", tt)
			}
		})
	}
}

func TestCallSparseQuery(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{}`))
	})

	_, err := Call[map[string]any](context.Background(), client, "/search", &CallOptions{
		Params: map[string]any{
			"q":          "x",
			"tag":        nil,
			"maxResults": nil,
			"empty":      "",
		},
	})
	if err != nil {
		t.Fatalf("Call: %v", err)
	}

	if gotQuery != "q=x" {
		t.Errorf("query = %q, want %q", gotQuery, "q=x")
	}
}

func TestCallStatusError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	})

	_, err := Call[map[string]any](context.Background(), client, "/search", nil)
	if err == nil {
		t.Fatal("expected error for HTTP 500")
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("error type = %T, want *StatusError", err)
	}
	if statusErr.StatusCode != 500 {
		t.Errorf("status = %d, want 500", statusErr.StatusCode)
	}

	msg := err.Error()
	for _, want := range []string{"/search", "500", "boom"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q missing %q", msg, want)
		}
	}
}

func TestCallStatusErrorEmptyBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := Call[map[string]any](context.Background(), client, "/content", nil)

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("error type = %T, want *StatusError", err)
	}
	if statusErr.Body == "" {
		t.Error("Body should fall back to the status line when the response body is empty")
	}
}

func TestCallEmptyBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	got, err := Call[SearchResponse](context.Background(), client, "/search", nil)
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if got.Total != 0 || got.Results != nil {
		t.Errorf("empty body should yield the zero value, got %+v", got)
	}
}

func TestCallDecodeError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	})

	_, err := Call[SearchResponse](context.Background(), client, "/search", nil)

	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("error type = %T, want *DecodeError", err)
	}
	if !strings.Contains(err.Error(), "/search") {
		t.Errorf("error %q should name the request URL", err.Error())
	}
}

func TestSearchGet(t *testing.T) {
	var gotMethod string
	var gotQuery map[string][]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotQuery = r.URL.Query()
		json.NewEncoder(w).Encode(SearchResponse{Query: "x", Total: 0})
	})

	_, err := client.Search(context.Background(), SearchRequest{
		Query: "x", Tag: "guides", MaxResults: 7,
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if gotMethod != http.MethodGet {
		t.Errorf("method = %q, want GET", gotMethod)
	}
	if got := gotQuery["q"]; len(got) != 1 || got[0] != "x" {
		t.Errorf("q = %v, want [x]", got)
	}
	if got := gotQuery["tag"]; len(got) != 1 || got[0] != "guides" {
		t.Errorf("tag = %v, want [guides]", got)
	}
	if got := gotQuery["maxResults"]; len(got) != 1 || got[0] != "7" {
		t.Errorf("maxResults = %v, want [7]", got)
	}
}

func TestSearchPost(t *testing.T) {
	var gotMethod, gotContentType string
	var gotBody SearchRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(SearchResponse{Query: "x"})
	})

	_, err := client.Search(context.Background(), SearchRequest{
		Query: "x", Tag: "guides", MaxResults: 3, Post: true,
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if gotMethod != http.MethodPost {
		t.Errorf("method = %q, want POST", gotMethod)
	}
	if gotContentType != "application/json" {
		t.Errorf("content type = %q, want application/json", gotContentType)
	}
	if gotBody.Query != "x" || gotBody.Tag != "guides" || gotBody.MaxResults != 3 {
		t.Errorf("body = %+v", gotBody)
	}
}

func TestContent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/content" {
			t.Errorf("path = %q, want /content", r.URL.Path)
		}
		if got := r.URL.Query().Get("route"); got != "/guides/http" {
			t.Errorf("route = %q, want /guides/http", got)
		}
		json.NewEncoder(w).Encode(ContentResponse{Route: "/guides/http", Content: "# HTTP"})
	})

	resp, err := client.Content(context.Background(), "/guides/http")
	if err != nil {
		t.Fatalf("Content: %v", err)
	}
	if resp.Content != "# HTTP" {
		t.Errorf("content = %q", resp.Content)
	}
}

func TestListings(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/indexes":
			json.NewEncoder(w).Encode(IndexListResponse{Indexes: []string{"guides", "api"}})
		case "/list-content":
			json.NewEncoder(w).Encode(RouteListResponse{Routes: []string{"/a", "/b"}})
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
		}
	})

	indexes, err := client.Indexes(context.Background())
	if err != nil {
		t.Fatalf("Indexes: %v", err)
	}
	if len(indexes.Indexes) != 2 {
		t.Errorf("indexes = %v", indexes.Indexes)
	}

	routes, err := client.Routes(context.Background())
	if err != nil {
		t.Fatalf("Routes: %v", err)
	}
	if len(routes.Routes) != 2 {
		t.Errorf("routes = %v", routes.Routes)
	}
}

func TestDisplayTitle(t *testing.T) {
	section := "Section"
	empty := ""
	tests := []struct {
		name   string
		result SearchResult
		want   string
	}{
		{"page title", SearchResult{PageTitle: "Page", SectionTitle: &section, SectionRoute: "/r"}, "Page"},
		{"section title", SearchResult{SectionTitle: &section, SectionRoute: "/r"}, "Section"},
		{"empty section title", SearchResult{SectionTitle: &empty, SectionRoute: "/r"}, "/r"},
		{"route only", SearchResult{SectionRoute: "/r"}, "/r"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.DisplayTitle(); got != tt.want {
				t.Errorf("DisplayTitle = %q, want %q", got, tt.want)
			}
		})
	}
}
