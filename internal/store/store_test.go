package store

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/denizaydn/linkmark-cli/internal/models"
)

// fakeRemote is an in-memory Remote that records rows the way the backend
// would, and can be told to fail specific calls.
type fakeRemote struct {
	users map[uuid.UUID][]models.BookmarkRow
	tags  map[string]models.Tag
	joins map[uuid.UUID][]uuid.UUID // bookmark -> tag ids

	failSelect     bool
	failInsert     bool
	failUpdate     bool
	failDelete     bool
	failInsertTag  map[string]bool
	failInsertJoin map[uuid.UUID]bool // keyed by tag id
	failClearJoins bool

	clearedJoins  []uuid.UUID
	insertedJoins int
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{
		users:          make(map[uuid.UUID][]models.BookmarkRow),
		tags:           make(map[string]models.Tag),
		joins:          make(map[uuid.UUID][]uuid.UUID),
		failInsertTag:  make(map[string]bool),
		failInsertJoin: make(map[uuid.UUID]bool),
	}
}

var errRemote = errors.New("remote unavailable")

func (f *fakeRemote) SelectBookmarks(userID uuid.UUID) ([]models.BookmarkRow, error) {
	if f.failSelect {
		return nil, errRemote
	}
	rows := f.users[userID]
	out := make([]models.BookmarkRow, len(rows))
	copy(out, rows)
	for i := range out {
		out[i].Tags = f.tagRows(out[i].ID)
	}
	return out, nil
}

func (f *fakeRemote) tagRows(bookmarkID uuid.UUID) []models.Tag {
	var rows []models.Tag
	for _, tagID := range f.joins[bookmarkID] {
		for _, tag := range f.tags {
			if tag.ID == tagID {
				rows = append(rows, tag)
			}
		}
	}
	return rows
}

func (f *fakeRemote) InsertBookmark(in InsertBookmark) (*models.BookmarkRow, error) {
	if f.failInsert {
		return nil, errRemote
	}
	row := models.BookmarkRow{
		ID:          uuid.New(),
		UserID:      in.UserID,
		Title:       in.Title,
		Description: in.Description,
		URL:         in.URL,
		CreatedAt:   time.Now(),
	}
	// newest first, like the backend's ordered select
	f.users[in.UserID] = append([]models.BookmarkRow{row}, f.users[in.UserID]...)
	return &row, nil
}

func (f *fakeRemote) UpdateBookmark(id uuid.UUID, fields map[string]interface{}) error {
	if f.failUpdate {
		return errRemote
	}
	return nil
}

func (f *fakeRemote) DeleteBookmark(id uuid.UUID) error {
	if f.failDelete {
		return errRemote
	}
	for userID, rows := range f.users {
		kept := rows[:0]
		for _, r := range rows {
			if r.ID != id {
				kept = append(kept, r)
			}
		}
		f.users[userID] = kept
	}
	delete(f.joins, id)
	return nil
}

func (f *fakeRemote) SelectTagByName(name string) (*models.Tag, error) {
	tag, ok := f.tags[name]
	if !ok {
		return nil, nil
	}
	return &tag, nil
}

func (f *fakeRemote) InsertTag(name string) (*models.Tag, error) {
	if f.failInsertTag[name] {
		return nil, errRemote
	}
	tag := models.Tag{ID: uuid.New(), Name: name, CreatedAt: time.Now()}
	f.tags[name] = tag
	return &tag, nil
}

func (f *fakeRemote) InsertBookmarkTag(bookmarkID, tagID uuid.UUID) error {
	if f.failInsertJoin[tagID] {
		return errRemote
	}
	f.joins[bookmarkID] = append(f.joins[bookmarkID], tagID)
	f.insertedJoins++
	return nil
}

func (f *fakeRemote) DeleteBookmarkTags(bookmarkID uuid.UUID) error {
	if f.failClearJoins {
		return errRemote
	}
	f.clearedJoins = append(f.clearedJoins, bookmarkID)
	delete(f.joins, bookmarkID)
	return nil
}

func quietStore(remote Remote) *Store {
	s := New(remote)
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	s.SetLogger(log)
	return s
}

func TestLoadFlattensTags(t *testing.T) {
	remote := newFakeRemote()
	userID := uuid.New()

	s := quietStore(remote)
	s.Add(userID, "Example", "https://example.com", "", []string{"tech", "news"})

	s.Load(userID)

	got := s.Bookmarks()
	if len(got) != 1 {
		t.Fatalf("got %d bookmarks, want 1", len(got))
	}
	if len(got[0].Tags) != 2 || got[0].Tags[0] != "tech" || got[0].Tags[1] != "news" {
		t.Errorf("tags = %v, want [tech news]", got[0].Tags)
	}
	if s.Loading() {
		t.Error("loading flag still set after Load returned")
	}
}

func TestLoadWithoutUserClearsCollection(t *testing.T) {
	remote := newFakeRemote()
	userID := uuid.New()

	s := quietStore(remote)
	s.Add(userID, "Example", "https://example.com", "", nil)
	if len(s.Bookmarks()) != 1 {
		t.Fatalf("setup: expected one cached bookmark")
	}

	s.Load(uuid.Nil)
	if len(s.Bookmarks()) != 0 {
		t.Errorf("signed-out Load left %d bookmarks in cache", len(s.Bookmarks()))
	}
}

func TestLoadFailureClearsCollection(t *testing.T) {
	remote := newFakeRemote()
	userID := uuid.New()

	s := quietStore(remote)
	s.Add(userID, "Example", "https://example.com", "", nil)

	remote.failSelect = true
	s.Load(userID)
	if len(s.Bookmarks()) != 0 {
		t.Errorf("failed Load left %d bookmarks in cache", len(s.Bookmarks()))
	}
}

func TestAddPrependsOptimistically(t *testing.T) {
	remote := newFakeRemote()
	userID := uuid.New()

	s := quietStore(remote)
	s.Add(userID, "First", "https://first.example", "", nil)
	s.Add(userID, "Example", "https://example.com", "", []string{"tech", "news"})

	got := s.Bookmarks()
	if len(got) != 2 {
		t.Fatalf("got %d bookmarks, want 2", len(got))
	}

	b := got[0]
	if b.Title != "Example" {
		t.Errorf("new bookmark not at index 0, got %q", b.Title)
	}
	if b.IsArchived || b.IsPinned || b.ViewCount != 0 {
		t.Errorf("new bookmark has non-default flags: %+v", b)
	}
	if len(b.Tags) != 2 || b.Tags[0] != "tech" || b.Tags[1] != "news" {
		t.Errorf("tags = %v, want [tech news]", b.Tags)
	}
	if remote.insertedJoins != 2 {
		t.Errorf("inserted %d join rows, want 2", remote.insertedJoins)
	}
}

func TestAddInsertFailureLeavesCacheUnchanged(t *testing.T) {
	remote := newFakeRemote()
	remote.failInsert = true

	s := quietStore(remote)
	s.Add(uuid.New(), "Example", "https://example.com", "", []string{"tech"})

	if len(s.Bookmarks()) != 0 {
		t.Errorf("failed Add cached %d bookmarks", len(s.Bookmarks()))
	}
	if remote.insertedJoins != 0 {
		t.Errorf("failed Add still attached %d tags", remote.insertedJoins)
	}
}

func TestAddTagFailureDoesNotRollBack(t *testing.T) {
	remote := newFakeRemote()
	remote.failInsertTag["bad"] = true
	userID := uuid.New()

	s := quietStore(remote)
	s.Add(userID, "Example", "https://example.com", "", []string{"good", "bad", "also-good"})

	// cache optimistically shows all three
	if got := s.Bookmarks()[0].Tags; len(got) != 3 {
		t.Errorf("cached tags = %v, want all three", got)
	}
	// remotely only the two that worked are attached
	if remote.insertedJoins != 2 {
		t.Errorf("inserted %d join rows, want 2 (bad tag skipped, later tag still attempted)", remote.insertedJoins)
	}
}

func TestAddLoadRoundTrip(t *testing.T) {
	remote := newFakeRemote()
	userID := uuid.New()

	s := quietStore(remote)
	s.Add(userID, "Example", "https://example.com", "notes on example", []string{"tech", "news"})

	before := s.Bookmarks()[0]
	s.Load(userID)
	after := s.Bookmarks()[0]

	if after.Title != before.Title || after.URL != before.URL || after.Description != before.Description {
		t.Errorf("scalars changed across reload: %+v vs %+v", before, after)
	}
	if len(after.Tags) != 2 || after.Tags[0] != "tech" || after.Tags[1] != "news" {
		t.Errorf("tags after reload = %v, want [tech news]", after.Tags)
	}
}

func TestUpdateScalarFailureLeavesCache(t *testing.T) {
	remote := newFakeRemote()
	userID := uuid.New()

	s := quietStore(remote)
	s.Add(userID, "Example", "https://example.com", "", nil)
	id := s.Bookmarks()[0].ID

	remote.failUpdate = true
	title := "Renamed"
	s.Update(id, Update{Title: &title})

	if got := s.Bookmarks()[0].Title; got != "Example" {
		t.Errorf("cache patched despite failed update: %q", got)
	}
}

func TestUpdateReplacesTags(t *testing.T) {
	remote := newFakeRemote()
	userID := uuid.New()

	s := quietStore(remote)
	s.Add(userID, "Example", "https://example.com", "", []string{"x"})
	id := s.Bookmarks()[0].ID

	tags := []string{}
	s.Update(id, Update{Tags: &tags})

	if got := s.Bookmarks()[0].Tags; len(got) != 0 {
		t.Errorf("cached tags = %v, want empty", got)
	}
	if len(remote.clearedJoins) != 1 || remote.clearedJoins[0] != id {
		t.Errorf("join rows not cleared remotely: %v", remote.clearedJoins)
	}
	if len(remote.joins[id]) != 0 {
		t.Errorf("remote joins = %v, want none", remote.joins[id])
	}
}

func TestUpdateTagReplacementFailureWindow(t *testing.T) {
	remote := newFakeRemote()
	userID := uuid.New()

	s := quietStore(remote)
	s.Add(userID, "Example", "https://example.com", "", []string{"old"})
	id := s.Bookmarks()[0].ID

	remote.failClearJoins = true
	tags := []string{"new-1", "new-2"}
	s.Update(id, Update{Tags: &tags})

	// cache already shows the new list even though the remote replacement
	// aborted; only the next Load re-converges
	if got := s.Bookmarks()[0].Tags; len(got) != 2 || got[0] != "new-1" {
		t.Errorf("cached tags = %v, want the new list", got)
	}
	if len(remote.joins[id]) != 1 {
		t.Errorf("remote joins = %v, want untouched old join", remote.joins[id])
	}

	remote.failClearJoins = false
	s.Load(userID)
	if got := s.Bookmarks()[0].Tags; len(got) != 1 || got[0] != "old" {
		t.Errorf("reload did not surface the remote state, tags = %v", got)
	}
}

func TestRemove(t *testing.T) {
	remote := newFakeRemote()
	userID := uuid.New()

	s := quietStore(remote)
	s.Add(userID, "keep", "https://keep.example", "", nil)
	s.Add(userID, "drop", "https://drop.example", "", nil)
	id := s.Bookmarks()[0].ID

	s.Remove(id)

	got := s.Bookmarks()
	if len(got) != 1 || got[0].Title != "keep" {
		t.Errorf("after Remove, cache = %v", got)
	}
}

func TestRemoveFailureKeepsEntry(t *testing.T) {
	remote := newFakeRemote()
	userID := uuid.New()

	s := quietStore(remote)
	s.Add(userID, "Example", "https://example.com", "", nil)
	id := s.Bookmarks()[0].ID

	remote.failDelete = true
	s.Remove(id)

	if len(s.Bookmarks()) != 1 {
		t.Errorf("failed Remove dropped the cached entry")
	}
}

func TestTogglePin(t *testing.T) {
	remote := newFakeRemote()
	userID := uuid.New()

	s := quietStore(remote)
	s.Add(userID, "Example", "https://example.com", "", nil)
	id := s.Bookmarks()[0].ID

	s.TogglePin(id)
	if !s.Bookmarks()[0].IsPinned {
		t.Error("bookmark not pinned after toggle")
	}

	s.TogglePin(id)
	if s.Bookmarks()[0].IsPinned {
		t.Error("bookmark still pinned after second toggle")
	}
}

func TestToggleArchiveIdempotentPair(t *testing.T) {
	remote := newFakeRemote()
	userID := uuid.New()

	s := quietStore(remote)
	s.Add(userID, "Example", "https://example.com", "", nil)
	id := s.Bookmarks()[0].ID

	s.ToggleArchive(id)
	s.ToggleArchive(id)
	if s.Bookmarks()[0].IsArchived {
		t.Error("two toggles did not return to the original archived state")
	}
}

func TestToggleUnknownIDIsNoOp(t *testing.T) {
	remote := newFakeRemote()

	s := quietStore(remote)
	s.TogglePin(uuid.New())
	s.ToggleArchive(uuid.New())
	s.RecordVisit(uuid.New())
	// nothing to assert beyond "no panic, no cache entries"
	if len(s.Bookmarks()) != 0 {
		t.Errorf("no-op toggles grew the cache: %v", s.Bookmarks())
	}
}

func TestRecordVisit(t *testing.T) {
	remote := newFakeRemote()
	userID := uuid.New()

	s := quietStore(remote)
	s.Add(userID, "Example", "https://example.com", "", nil)
	id := s.Bookmarks()[0].ID

	for i := 0; i < 3; i++ {
		s.RecordVisit(id)
	}

	before := time.Now().Add(-time.Minute)
	s.RecordVisit(id)

	b := s.Bookmarks()[0]
	if b.ViewCount != 4 {
		t.Errorf("view count = %d, want 4", b.ViewCount)
	}
	if b.LastVisited == nil || b.LastVisited.Before(before) {
		t.Errorf("last visited = %v, want a recent timestamp", b.LastVisited)
	}
}
