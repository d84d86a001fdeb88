package likes_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	likesfeature "github.com/dattali18/FSWD-Project-6-Backend/internal/app/features/likes"
	likestore "github.com/dattali18/FSWD-Project-6-Backend/internal/app/store/likes"
	"github.com/dattali18/FSWD-Project-6-Backend/internal/app/system/jsonapi"
	"github.com/dattali18/FSWD-Project-6-Backend/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*likesfeature.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	h := likesfeature.NewHandler(likestore.New(db), jsonapi.NewErrorLogger(logger), logger)
	return h, testutil.NewFixtures(t, db)
}

func TestHandleCreate(t *testing.T) {
	h, fixtures := newTestHandler(t)
	user := fixtures.CreateUser("alice", "alice@example.com", "pass", "user")
	article := fixtures.CreateArticleRecord("First Post", user.ID)

	req := testutil.NewJSONRequest(t, "POST", "/", map[string]uint{"article_id": article.ID})
	req = testutil.WithIdentity(req, user)
	rec := httptest.NewRecorder()
	h.HandleCreate(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want %d (body %s)", rec.Code, http.StatusCreated, rec.Body.String())
	}
}

func TestHandleCreate_Duplicate(t *testing.T) {
	h, fixtures := newTestHandler(t)
	user := fixtures.CreateUser("alice", "alice@example.com", "pass", "user")
	article := fixtures.CreateArticleRecord("First Post", user.ID)
	fixtures.CreateLike(article.ID, user.ID)

	req := testutil.NewJSONRequest(t, "POST", "/", map[string]uint{"article_id": article.ID})
	req = testutil.WithIdentity(req, user)
	rec := httptest.NewRecorder()
	h.HandleCreate(rec, req)

	if rec.Code != http.StatusConflict {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusConflict)
	}
}

func TestHandleCreate_MissingArticleID(t *testing.T) {
	h, fixtures := newTestHandler(t)
	user := fixtures.CreateUser("alice", "alice@example.com", "pass", "user")

	req := testutil.NewJSONRequest(t, "POST", "/", map[string]uint{})
	req = testutil.WithIdentity(req, user)
	rec := httptest.NewRecorder()
	h.HandleCreate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleDelete(t *testing.T) {
	h, fixtures := newTestHandler(t)
	user := fixtures.CreateUser("alice", "alice@example.com", "pass", "user")
	article := fixtures.CreateArticleRecord("First Post", user.ID)
	fixtures.CreateLike(article.ID, user.ID)

	target := "/?article_id=" + strconv.Itoa(int(article.ID))
	req := httptest.NewRequest("DELETE", target, nil)
	req = testutil.WithIdentity(req, user)
	rec := httptest.NewRecorder()
	h.HandleDelete(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	// The like is gone, so a second removal reports not-liked.
	req = httptest.NewRequest("DELETE", target, nil)
	req = testutil.WithIdentity(req, user)
	rec = httptest.NewRecorder()
	h.HandleDelete(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete status: got %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestHandleListByArticle(t *testing.T) {
	h, fixtures := newTestHandler(t)
	alice := fixtures.CreateUser("alice", "alice@example.com", "pass", "user")
	bob := fixtures.CreateUser("bob", "bob@example.com", "pass", "user")
	article := fixtures.CreateArticleRecord("First Post", alice.ID)
	fixtures.CreateLike(article.ID, alice.ID)
	fixtures.CreateLike(article.ID, bob.ID)

	req := httptest.NewRequest("GET", "/article/"+strconv.Itoa(int(article.ID)), nil)
	req = testutil.WithChiURLParam(req, "article_id", strconv.Itoa(int(article.ID)))
	rec := httptest.NewRecorder()
	h.HandleListByArticle(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}

	var resp struct {
		Likes []struct {
			UserID uint `json:"user_id"`
		} `json:"likes"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if len(resp.Likes) != 2 {
		t.Errorf("likes count: got %d, want 2", len(resp.Likes))
	}
}

func TestHandleLiked(t *testing.T) {
	h, fixtures := newTestHandler(t)
	user := fixtures.CreateUser("alice", "alice@example.com", "pass", "user")
	article := fixtures.CreateArticleRecord("First Post", user.ID)
	fixtures.CreateLike(article.ID, user.ID)

	req := httptest.NewRequest("GET", "/liked?article_id="+strconv.Itoa(int(article.ID)), nil)
	req = testutil.WithIdentity(req, user)
	rec := httptest.NewRecorder()
	h.HandleLiked(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), `"liked":true`) {
		t.Errorf("body: got %s, want liked true", rec.Body.String())
	}
}
