// Package store maintains the client-side cache of the current user's
// bookmarks and keeps it consistent with the remote store across all
// mutation operations.
//
// Mutations are optimistic: the remote call runs first and the local cache
// is patched on success, but multi-step tag fan-out is best-effort
// sequential rather than atomic. A failure partway through a tag loop
// leaves the remote state behind the local cache until the next Load.
// Remote failures are logged and never returned to callers.
package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/denizaydn/linkmark-cli/internal/models"
)

// Remote is the row-level API the store needs from the backend. Calls are
// scoped by owner or row identifier; SelectBookmarks performs the nested
// join fetch and returns rows ordered by creation time descending.
type Remote interface {
	SelectBookmarks(userID uuid.UUID) ([]models.BookmarkRow, error)
	InsertBookmark(in InsertBookmark) (*models.BookmarkRow, error)
	UpdateBookmark(id uuid.UUID, fields map[string]interface{}) error
	DeleteBookmark(id uuid.UUID) error

	// SelectTagByName returns (nil, nil) when no tag has that name.
	SelectTagByName(name string) (*models.Tag, error)
	InsertTag(name string) (*models.Tag, error)
	InsertBookmarkTag(bookmarkID, tagID uuid.UUID) error
	DeleteBookmarkTags(bookmarkID uuid.UUID) error
}

// InsertBookmark is the payload for creating a bookmark row. Tag
// associations are created separately by the store.
type InsertBookmark struct {
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	URL         string    `json:"url"`
}

// Update carries a partial set of bookmark fields. Nil means "leave
// unchanged"; a non-nil Tags replaces the whole tag set.
type Update struct {
	Title       *string
	Description *string
	URL         *string
	IsArchived  *bool
	IsPinned    *bool
	ViewCount   *int
	LastVisited *time.Time
	Tags        *[]string
}

// Store is the authoritative client-side bookmark cache. It is written
// from a single goroutine by convention; readers of Bookmarks must treat
// the returned slice as immutable.
type Store struct {
	remote    Remote
	log       *logrus.Logger
	bookmarks []models.Bookmark
	loading   bool
}

// New returns a store backed by remote. Diagnostics go to the standard
// logrus logger unless overridden with SetLogger.
func New(remote Remote) *Store {
	return &Store{
		remote: remote,
		log:    logrus.StandardLogger(),
	}
}

// SetLogger redirects the store's diagnostic output.
func (s *Store) SetLogger(log *logrus.Logger) {
	if log != nil {
		s.log = log
	}
}

// Bookmarks returns the cached collection, most recently created first.
func (s *Store) Bookmarks() []models.Bookmark {
	return s.bookmarks
}

// Loading reports whether an initial Load is still in flight; while true
// the collection is provisional.
func (s *Store) Loading() bool {
	return s.loading
}

// Load replaces the cache with the remote collection for userID. It is
// invoked whenever the authenticated identity becomes known or changes;
// uuid.Nil means signed out and clears the cache, as does any remote
// failure.
func (s *Store) Load(userID uuid.UUID) {
	s.loading = true
	defer func() { s.loading = false }()

	if userID == uuid.Nil {
		s.bookmarks = nil
		return
	}

	rows, err := s.remote.SelectBookmarks(userID)
	if err != nil {
		s.log.WithError(err).Error("loading bookmarks failed")
		s.bookmarks = nil
		return
	}

	list := make([]models.Bookmark, 0, len(rows))
	for _, r := range rows {
		list = append(list, r.Flatten())
	}
	s.bookmarks = list
}

// Add creates a bookmark for userID and prepends it to the cache. Tags are
// associated one by one after the row exists; the cached entry assumes all
// of them will succeed, and a failed tag is logged and skipped without
// rolling back the bookmark or the tags before it. Validation of title and
// URL is the caller's job.
func (s *Store) Add(userID uuid.UUID, title, url, description string, tags []string) {
	row, err := s.remote.InsertBookmark(InsertBookmark{
		UserID:      userID,
		Title:       title,
		Description: description,
		URL:         url,
	})
	if err != nil {
		s.log.WithError(err).Error("adding bookmark failed")
		return
	}

	b := row.Flatten()
	b.Tags = append([]string(nil), tags...)
	s.bookmarks = append([]models.Bookmark{b}, s.bookmarks...)

	for _, name := range tags {
		tag, err := s.ensureTag(name)
		if err != nil {
			s.log.WithError(err).WithField("tag", name).Error("resolving tag failed")
			continue
		}
		if err := s.remote.InsertBookmarkTag(row.ID, tag.ID); err != nil {
			s.log.WithError(err).WithField("tag", name).Error("attaching tag failed")
		}
	}
}

// Update sends the scalar fields in one call and, when upd.Tags is set,
// replaces the bookmark's tag set remotely (ensure rows, delete all joins,
// reinsert). The cache is patched as soon as the scalar update succeeds,
// so a failure inside the tag replacement leaves the cache ahead of the
// remote until the next Load.
func (s *Store) Update(id uuid.UUID, upd Update) {
	fields := upd.fields()
	if len(fields) > 0 {
		if err := s.remote.UpdateBookmark(id, fields); err != nil {
			s.log.WithError(err).WithField("bookmark", id).Error("updating bookmark failed")
			return
		}
	}

	s.patch(id, upd)

	if upd.Tags != nil {
		s.replaceTags(id, *upd.Tags)
	}
}

// Remove deletes the bookmark row; join rows cascade remotely. On success
// the entry is dropped from the cache.
func (s *Store) Remove(id uuid.UUID) {
	if err := s.remote.DeleteBookmark(id); err != nil {
		s.log.WithError(err).WithField("bookmark", id).Error("deleting bookmark failed")
		return
	}

	out := s.bookmarks[:0:0]
	for _, b := range s.bookmarks {
		if b.ID != id {
			out = append(out, b)
		}
	}
	s.bookmarks = out
}

// TogglePin inverts the cached pinned flag and delegates to Update.
// Unknown ids are a silent no-op.
func (s *Store) TogglePin(id uuid.UUID) {
	b := s.find(id)
	if b == nil {
		return
	}
	pinned := !b.IsPinned
	s.Update(id, Update{IsPinned: &pinned})
}

// ToggleArchive inverts the cached archived flag and delegates to Update.
// Unknown ids are a silent no-op.
func (s *Store) ToggleArchive(id uuid.UUID) {
	b := s.find(id)
	if b == nil {
		return
	}
	archived := !b.IsArchived
	s.Update(id, Update{IsArchived: &archived})
}

// RecordVisit bumps the cached view count by one and stamps the visit
// time. Unknown ids are a silent no-op.
func (s *Store) RecordVisit(id uuid.UUID) {
	b := s.find(id)
	if b == nil {
		return
	}
	count := b.ViewCount + 1
	now := time.Now()
	s.Update(id, Update{ViewCount: &count, LastVisited: &now})
}

func (s *Store) find(id uuid.UUID) *models.Bookmark {
	for i := range s.bookmarks {
		if s.bookmarks[i].ID == id {
			return &s.bookmarks[i]
		}
	}
	return nil
}

// ensureTag looks a tag up by exact name and creates it when absent.
func (s *Store) ensureTag(name string) (*models.Tag, error) {
	tag, err := s.remote.SelectTagByName(name)
	if err != nil {
		return nil, err
	}
	if tag != nil {
		return tag, nil
	}
	return s.remote.InsertTag(name)
}

// replaceTags performs the delete-then-reinsert tag replacement. Each step
// is logged on failure and aborts the remaining steps; the cache already
// shows the new list.
func (s *Store) replaceTags(id uuid.UUID, names []string) {
	tags := make([]models.Tag, 0, len(names))
	for _, name := range names {
		tag, err := s.ensureTag(name)
		if err != nil {
			s.log.WithError(err).WithField("tag", name).Error("resolving tag failed")
			return
		}
		tags = append(tags, *tag)
	}

	if err := s.remote.DeleteBookmarkTags(id); err != nil {
		s.log.WithError(err).WithField("bookmark", id).Error("clearing tags failed")
		return
	}

	for _, tag := range tags {
		if err := s.remote.InsertBookmarkTag(id, tag.ID); err != nil {
			s.log.WithError(err).WithField("tag", tag.Name).Error("attaching tag failed")
			return
		}
	}
}

func (s *Store) patch(id uuid.UUID, upd Update) {
	b := s.find(id)
	if b == nil {
		return
	}
	if upd.Title != nil {
		b.Title = *upd.Title
	}
	if upd.Description != nil {
		b.Description = *upd.Description
	}
	if upd.URL != nil {
		b.URL = *upd.URL
	}
	if upd.IsArchived != nil {
		b.IsArchived = *upd.IsArchived
	}
	if upd.IsPinned != nil {
		b.IsPinned = *upd.IsPinned
	}
	if upd.ViewCount != nil {
		b.ViewCount = *upd.ViewCount
	}
	if upd.LastVisited != nil {
		t := *upd.LastVisited
		b.LastVisited = &t
	}
	if upd.Tags != nil {
		b.Tags = append([]string(nil), (*upd.Tags)...)
	}
}

// fields builds the column map for the scalar update call. Tags are not a
// column; they travel through the join collection.
func (u Update) fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if u.Title != nil {
		fields["title"] = *u.Title
	}
	if u.Description != nil {
		fields["description"] = *u.Description
	}
	if u.URL != nil {
		fields["url"] = *u.URL
	}
	if u.IsArchived != nil {
		fields["is_archived"] = *u.IsArchived
	}
	if u.IsPinned != nil {
		fields["is_pinned"] = *u.IsPinned
	}
	if u.ViewCount != nil {
		fields["view_count"] = *u.ViewCount
	}
	if u.LastVisited != nil {
		fields["last_visited"] = u.LastVisited.UTC().Format(time.RFC3339Nano)
	}
	return fields
}
