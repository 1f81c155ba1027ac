package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/denizaydn/linkmark-cli/internal/models"
	"github.com/denizaydn/linkmark-cli/internal/store"
)

func testClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := &Client{
		BaseURL:    srv.URL + "/v1",
		APIKey:     "test-key",
		HTTPClient: srv.Client(),
	}
	return c, srv
}

func TestSelectBookmarksSendsAuthHeader(t *testing.T) {
	userID := uuid.New()

	c, srv := testClient(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q, want bearer key", got)
		}
		if r.URL.Path != "/v1/bookmarks" {
			t.Errorf("path = %q, want /v1/bookmarks", r.URL.Path)
		}
		if got := r.URL.Query().Get("user_id"); got != userID.String() {
			t.Errorf("user_id = %q, want %q", got, userID)
		}
		json.NewEncoder(w).Encode([]models.BookmarkRow{
			{ID: uuid.New(), UserID: userID, Title: "one", URL: "https://one.example"},
		})
	})
	defer srv.Close()

	rows, err := c.SelectBookmarks(userID)
	if err != nil {
		t.Fatalf("SelectBookmarks: %v", err)
	}
	if len(rows) != 1 || rows[0].Title != "one" {
		t.Errorf("rows = %v, want the single bookmark", rows)
	}
}

func TestInsertBookmarkPostsPayload(t *testing.T) {
	userID := uuid.New()

	c, srv := testClient(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		var in store.InsertBookmark
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Fatalf("decoding payload: %v", err)
		}
		if in.Title != "Example" || in.URL != "https://example.com" || in.UserID != userID {
			t.Errorf("payload = %+v", in)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.BookmarkRow{
			ID: uuid.New(), UserID: in.UserID, Title: in.Title, URL: in.URL,
		})
	})
	defer srv.Close()

	row, err := c.InsertBookmark(store.InsertBookmark{
		UserID: userID, Title: "Example", URL: "https://example.com",
	})
	if err != nil {
		t.Fatalf("InsertBookmark: %v", err)
	}
	if row.ID == uuid.Nil {
		t.Error("returned row has no id")
	}
}

func TestErrorStatusIncludesBody(t *testing.T) {
	c, srv := testClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":"cannot read another user's bookmarks"}`))
	})
	defer srv.Close()

	_, err := c.SelectBookmarks(uuid.New())
	if err == nil {
		t.Fatal("expected an error for status 403")
	}
	if !strings.Contains(err.Error(), "403") || !strings.Contains(err.Error(), "another user") {
		t.Errorf("error = %q, want status and body included", err)
	}
}

func TestSelectTagByName(t *testing.T) {
	tagID := uuid.New()

	c, srv := testClient(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("name") {
		case "tech":
			json.NewEncoder(w).Encode([]models.Tag{{ID: tagID, Name: "tech"}})
		default:
			json.NewEncoder(w).Encode([]models.Tag{})
		}
	})
	defer srv.Close()

	tag, err := c.SelectTagByName("tech")
	if err != nil {
		t.Fatalf("SelectTagByName(tech): %v", err)
	}
	if tag == nil || tag.ID != tagID {
		t.Errorf("tag = %v, want the tech tag", tag)
	}

	tag, err = c.SelectTagByName("absent")
	if err != nil {
		t.Fatalf("SelectTagByName(absent): %v", err)
	}
	if tag != nil {
		t.Errorf("tag = %v, want nil for an absent name", tag)
	}
}

func TestAuthRequestsSkipV1Prefix(t *testing.T) {
	userID := uuid.New()

	c, srv := testClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" {
			t.Errorf("path = %q, want /auth/login at root", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("auth endpoint received Authorization header %q", got)
		}
		json.NewEncoder(w).Encode(authResponse{
			Success: true,
			Data:    authData{APIKey: "issued-key", UserID: userID},
		})
	})
	defer srv.Close()

	key, id, err := c.LoginUser("a@example.com", "secret")
	if err != nil {
		t.Fatalf("LoginUser: %v", err)
	}
	if key != "issued-key" || id != userID {
		t.Errorf("got (%q, %s), want the issued credentials", key, id)
	}
}

func TestLoginFailureSurfacesServerError(t *testing.T) {
	c, srv := testClient(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(authResponse{Success: false, Error: "invalid credentials"})
	})
	defer srv.Close()

	_, _, err := c.LoginUser("a@example.com", "wrong")
	if err == nil || !strings.Contains(err.Error(), "invalid credentials") {
		t.Errorf("err = %v, want the server's error message", err)
	}
}
