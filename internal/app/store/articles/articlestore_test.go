package articlestore_test

import (
	"errors"
	"testing"
	"time"

	articlestore "github.com/dattali18/FSWD-Project-6-Backend/internal/app/store/articles"
	"github.com/dattali18/FSWD-Project-6-Backend/internal/domain/models"
	"github.com/dattali18/FSWD-Project-6-Backend/internal/testutil"
	"gorm.io/gorm"
)

func newTestStore(t *testing.T) (*articlestore.Store, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	mdb := testutil.SetupTestMongo(t)
	return articlestore.New(db, mdb), db
}

func TestCreate(t *testing.T) {
	store, db := newTestStore(t)
	ctx := testutil.TestContext(t)

	a, err := store.Create(ctx, "First Post", 1, "hello world", []string{"go", "testing"})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if a.ArticleID == 0 {
		t.Error("Create() did not assign a relational identifier")
	}
	if a.ID.IsZero() {
		t.Error("Create() did not assign a document identifier")
	}
	if a.CreatedDate.IsZero() || a.LastUpdated.IsZero() {
		t.Error("Create() did not set timestamps")
	}

	// The relational half carries the same identifier, title, and author.
	var rec models.ArticleRecord
	if err := db.First(&rec, a.ArticleID).Error; err != nil {
		t.Fatalf("relational row lookup failed: %v", err)
	}
	if rec.Title != "First Post" || rec.Author != 1 {
		t.Errorf("relational row: got title %q author %d", rec.Title, rec.Author)
	}

	got, err := store.GetByArticleID(ctx, a.ArticleID)
	if err != nil {
		t.Fatalf("GetByArticleID() failed: %v", err)
	}
	if got.Content != "hello world" {
		t.Errorf("content: got %q, want %q", got.Content, "hello world")
	}
	if len(got.Tags) != 2 {
		t.Errorf("tags: got %v", got.Tags)
	}
}

func TestUpdate_SyncsTitleAcrossStores(t *testing.T) {
	store, db := newTestStore(t)
	ctx := testutil.TestContext(t)

	a, err := store.Create(ctx, "Old Title", 1, "content", nil)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	newTitle := "New Title"
	updated, err := store.Update(ctx, a.ArticleID, articlestore.UpdateFields{Title: &newTitle})
	if err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	if updated.Title != newTitle {
		t.Errorf("document title: got %q, want %q", updated.Title, newTitle)
	}
	if !updated.LastUpdated.After(a.LastUpdated) && !updated.LastUpdated.Equal(a.LastUpdated) {
		t.Error("LastUpdated was not refreshed")
	}

	var rec models.ArticleRecord
	if err := db.First(&rec, a.ArticleID).Error; err != nil {
		t.Fatalf("relational row lookup failed: %v", err)
	}
	if rec.Title != newTitle {
		t.Errorf("relational title: got %q, want %q", rec.Title, newTitle)
	}
}

func TestUpdate_PartialFields(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := testutil.TestContext(t)

	a, err := store.Create(ctx, "Title", 1, "original content", []string{"go"})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	content := "revised content"
	updated, err := store.Update(ctx, a.ArticleID, articlestore.UpdateFields{Content: &content})
	if err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	if updated.Content != content {
		t.Errorf("content: got %q, want %q", updated.Content, content)
	}
	if updated.Title != "Title" {
		t.Errorf("title changed unexpectedly: got %q", updated.Title)
	}
	if len(updated.Tags) != 1 || updated.Tags[0] != "go" {
		t.Errorf("tags changed unexpectedly: got %v", updated.Tags)
	}
}

func TestUpdate_Missing(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := testutil.TestContext(t)

	title := "ghost"
	if _, err := store.Update(ctx, 9999, articlestore.UpdateFields{Title: &title}); !errors.Is(err, articlestore.ErrNotFound) {
		t.Errorf("Update() missing: got %v, want ErrNotFound", err)
	}
}

func TestDelete_RemovesBothHalves(t *testing.T) {
	store, db := newTestStore(t)
	ctx := testutil.TestContext(t)

	a, err := store.Create(ctx, "Doomed", 1, "content", nil)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	if err := store.Delete(ctx, a.ArticleID); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}

	if _, err := store.GetByArticleID(ctx, a.ArticleID); !errors.Is(err, articlestore.ErrNotFound) {
		t.Errorf("GetByArticleID() after delete: got %v, want ErrNotFound", err)
	}

	var count int64
	if err := db.Model(&models.ArticleRecord{}).Where("id = ?", a.ArticleID).Count(&count).Error; err != nil {
		t.Fatalf("relational count failed: %v", err)
	}
	if count != 0 {
		t.Error("relational row survived delete")
	}

	if err := store.Delete(ctx, a.ArticleID); !errors.Is(err, articlestore.ErrNotFound) {
		t.Errorf("Delete() twice: got %v, want ErrNotFound", err)
	}
}

func TestList_NewestFirst(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := testutil.TestContext(t)

	first, err := store.Create(ctx, "First", 1, "one", nil)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	// BSON timestamps have millisecond precision; keep the creates apart
	// so the sort order is deterministic.
	time.Sleep(5 * time.Millisecond)
	second, err := store.Create(ctx, "Second", 1, "two", nil)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	articles, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("List() count: got %d, want 2", len(articles))
	}
	if articles[0].ArticleID != second.ArticleID || articles[1].ArticleID != first.ArticleID {
		t.Errorf("List() order: got [%d, %d], want [%d, %d]",
			articles[0].ArticleID, articles[1].ArticleID, second.ArticleID, first.ArticleID)
	}
}
