package bookmarks

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/denizaydn/linkmark-cli/internal/models"
)

func mk(title string, opts ...func(*models.Bookmark)) models.Bookmark {
	b := models.Bookmark{
		ID:        uuid.New(),
		Title:     title,
		URL:       "https://example.com/" + title,
		CreatedAt: time.Now(),
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

func withTags(tags ...string) func(*models.Bookmark) {
	return func(b *models.Bookmark) { b.Tags = tags }
}

func archived() func(*models.Bookmark) {
	return func(b *models.Bookmark) { b.IsArchived = true }
}

func pinned() func(*models.Bookmark) {
	return func(b *models.Bookmark) { b.IsPinned = true }
}

func withViews(n int) func(*models.Bookmark) {
	return func(b *models.Bookmark) { b.ViewCount = n }
}

func withCreated(t time.Time) func(*models.Bookmark) {
	return func(b *models.Bookmark) { b.CreatedAt = t }
}

func withVisited(t time.Time) func(*models.Bookmark) {
	return func(b *models.Bookmark) { b.LastVisited = &t }
}

func titles(list []models.Bookmark) []string {
	out := make([]string, len(list))
	for i, b := range list {
		out[i] = b.Title
	}
	return out
}

func equalTitles(a []models.Bookmark, want []string) bool {
	got := titles(a)
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestFilterArchivedPartition(t *testing.T) {
	list := []models.Bookmark{
		mk("active-1"),
		mk("archived-1", archived()),
		mk("active-2"),
		mk("archived-2", archived()),
	}

	got := Filter(list, "", nil, false)
	if !equalTitles(got, []string{"active-1", "active-2"}) {
		t.Errorf("Filter(active) = %v, want active bookmarks in order", titles(got))
	}

	got = Filter(list, "", nil, true)
	if !equalTitles(got, []string{"archived-1", "archived-2"}) {
		t.Errorf("Filter(archived) = %v, want archived bookmarks in order", titles(got))
	}
}

func TestFilterSearch(t *testing.T) {
	golang := mk("Go standard library")
	golang.Description = "package docs"
	golang.URL = "https://pkg.go.dev"

	news := mk("Morning paper")
	news.Description = "daily headlines"
	news.URL = "https://news.example.com"

	list := []models.Bookmark{golang, news}

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"empty search matches all", "", []string{"Go standard library", "Morning paper"}},
		{"title match, case-insensitive", "GO STANDARD", []string{"Go standard library"}},
		{"description match", "headlines", []string{"Morning paper"}},
		{"url match", "pkg.go.dev", []string{"Go standard library"}},
		{"whitespace trimmed", "  headlines  ", []string{"Morning paper"}},
		{"no match", "zebra", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(list, tt.search, nil, false)
			if !equalTitles(got, tt.want) {
				t.Errorf("Filter(%q) = %v, want %v", tt.search, titles(got), tt.want)
			}
		})
	}
}

func TestFilterTagsRequireAll(t *testing.T) {
	list := []models.Bookmark{
		mk("both", withTags("t1", "t2")),
		mk("only-t1", withTags("t1")),
		mk("only-t2", withTags("t2")),
		mk("untagged"),
	}

	got := Filter(list, "", []string{"t1", "t2"}, false)
	if !equalTitles(got, []string{"both"}) {
		t.Errorf("Filter(tags=[t1 t2]) = %v, want only the bookmark carrying both", titles(got))
	}

	got = Filter(list, "", []string{"t1"}, false)
	if !equalTitles(got, []string{"both", "only-t1"}) {
		t.Errorf("Filter(tags=[t1]) = %v, want both and only-t1", titles(got))
	}
}

func TestSortPinnedAlwaysFirst(t *testing.T) {
	now := time.Now()
	list := []models.Bookmark{
		mk("old-pinned", pinned(), withCreated(now.Add(-48*time.Hour))),
		mk("newest", withCreated(now)),
		mk("popular", withViews(100), withCreated(now.Add(-24*time.Hour))),
	}

	for _, mode := range []SortMode{SortRecent, SortVisited, SortViews} {
		got := Sort(list, mode)
		if !got[0].IsPinned {
			t.Errorf("Sort(%s): first entry %q is not pinned", mode, got[0].Title)
		}
		for i := 1; i < len(got); i++ {
			if got[i].IsPinned && !got[i-1].IsPinned {
				t.Errorf("Sort(%s): pinned entry after unpinned at index %d", mode, i)
			}
		}
	}
}

func TestSortModes(t *testing.T) {
	now := time.Now()
	list := []models.Bookmark{
		mk("b", withCreated(now.Add(-2*time.Hour)), withViews(5), withVisited(now.Add(-1*time.Minute))),
		mk("a", withCreated(now.Add(-1*time.Hour)), withViews(9)),
		mk("c", withCreated(now.Add(-3*time.Hour)), withViews(1), withVisited(now.Add(-2*time.Minute))),
	}

	tests := []struct {
		mode SortMode
		want []string
	}{
		{SortRecent, []string{"a", "b", "c"}},
		// never-visited "a" sorts as epoch, i.e. last
		{SortVisited, []string{"b", "c", "a"}},
		{SortViews, []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			got := Sort(list, tt.mode)
			if !equalTitles(got, tt.want) {
				t.Errorf("Sort(%s) = %v, want %v", tt.mode, titles(got), tt.want)
			}
		})
	}
}

func TestSortViewsMonotonic(t *testing.T) {
	list := []models.Bookmark{
		mk("p1", pinned(), withViews(2)),
		mk("p2", pinned(), withViews(7)),
		mk("u1", withViews(3)),
		mk("u2", withViews(9)),
		mk("u3", withViews(3)),
	}

	got := Sort(list, SortViews)

	// view counts must be non-increasing within each partition
	for _, wantPinned := range []bool{true, false} {
		prev := int(^uint(0) >> 1)
		for _, b := range got {
			if b.IsPinned != wantPinned {
				continue
			}
			if b.ViewCount > prev {
				t.Errorf("partition (pinned=%v) not monotonic: %v", wantPinned, titles(got))
			}
			prev = b.ViewCount
		}
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	now := time.Now()
	list := []models.Bookmark{
		mk("first", withCreated(now.Add(-1*time.Hour))),
		mk("second", withCreated(now)),
	}

	_ = Sort(list, SortRecent)
	if !equalTitles(list, []string{"first", "second"}) {
		t.Errorf("Sort mutated its input: %v", titles(list))
	}
}

func TestUniqueTags(t *testing.T) {
	list := []models.Bookmark{
		mk("one", withTags("a", "b")),
		mk("two", withTags("b", "c")),
		mk("three"),
	}

	got := UniqueTags(list)
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("UniqueTags = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("UniqueTags = %v, want %v", got, want)
		}
	}
}

func TestTagCounts(t *testing.T) {
	list := []models.Bookmark{
		mk("one", withTags("a", "b")),
		mk("two", withTags("b")),
	}

	counts := TagCounts(list)
	if counts["a"] != 1 || counts["b"] != 2 {
		t.Errorf("TagCounts = %v, want a:1 b:2", counts)
	}
}

func TestFaviconURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"valid url", "https://pkg.go.dev/net/url", "https://www.google.com/s2/favicons?domain=pkg.go.dev&sz=128"},
		{"no host", "not a url", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FaviconURL(tt.in); got != tt.want {
				t.Errorf("FaviconURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
