package admin_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	adminfeature "github.com/dattali18/FSWD-Project-6-Backend/internal/app/features/admin"
	adminstore "github.com/dattali18/FSWD-Project-6-Backend/internal/app/store/admins"
	userstore "github.com/dattali18/FSWD-Project-6-Backend/internal/app/store/users"
	writerstore "github.com/dattali18/FSWD-Project-6-Backend/internal/app/store/writers"
	"github.com/dattali18/FSWD-Project-6-Backend/internal/app/system/jsonapi"
	"github.com/dattali18/FSWD-Project-6-Backend/internal/domain/models"
	"github.com/dattali18/FSWD-Project-6-Backend/internal/testutil"
	"go.uber.org/zap"
)

type testDeps struct {
	handler  *adminfeature.Handler
	admins   *adminstore.Store
	writers  *writerstore.Store
	fixtures *testutil.Fixtures
}

func newTestHandler(t *testing.T) testDeps {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	admins := adminstore.New(db)
	writers := writerstore.New(db)
	h := adminfeature.NewHandler(userstore.New(db), admins, writers, jsonapi.NewErrorLogger(logger), logger)
	return testDeps{handler: h, admins: admins, writers: writers, fixtures: testutil.NewFixtures(t, db)}
}

func TestHandleIsAdmin(t *testing.T) {
	d := newTestHandler(t)

	req := httptest.NewRequest("GET", "/is-admin", nil)
	rec := httptest.NewRecorder()
	d.handler.HandleIsAdmin(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestHandleListUsers(t *testing.T) {
	d := newTestHandler(t)
	d.fixtures.CreateUser("alice", "alice@example.com", "pass", models.RoleUser)
	d.fixtures.CreateWriter("wendy", "wendy@example.com", "pass", "bio")

	req := httptest.NewRequest("GET", "/users", nil)
	rec := httptest.NewRecorder()
	d.handler.HandleListUsers(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}

	var users []struct {
		Username string `json:"username"`
		Role     string `json:"role"`
	}
	testutil.DecodeJSON(t, rec, &users)
	if len(users) != 2 {
		t.Errorf("users count: got %d, want 2", len(users))
	}
}

func TestHandleUpdateRole_PromoteToWriter(t *testing.T) {
	d := newTestHandler(t)
	ctx := testutil.TestContext(t)
	u := d.fixtures.CreateUser("alice", "alice@example.com", "pass", models.RoleUser)

	req := testutil.NewJSONRequest(t, "POST", "/users/"+strconv.Itoa(int(u.ID)), map[string]string{
		"role": models.RoleWriter,
		"bio":  "new author",
	})
	req = testutil.WithChiURLParam(req, "id", strconv.Itoa(int(u.ID)))
	rec := httptest.NewRecorder()
	d.handler.HandleUpdateRole(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var updated struct {
		Role string `json:"role"`
	}
	testutil.DecodeJSON(t, rec, &updated)
	if updated.Role != models.RoleWriter {
		t.Errorf("role: got %q, want %q", updated.Role, models.RoleWriter)
	}

	exists, err := d.writers.Exists(ctx, u.ID)
	if err != nil {
		t.Fatalf("Exists() failed: %v", err)
	}
	if !exists {
		t.Error("writer membership row missing after promotion")
	}
}

func TestHandleUpdateRole_DemotionRevokesMembership(t *testing.T) {
	d := newTestHandler(t)
	ctx := testutil.TestContext(t)
	u := d.fixtures.CreateAdmin("root", "root@example.com", "pass")

	req := testutil.NewJSONRequest(t, "POST", "/users/"+strconv.Itoa(int(u.ID)), map[string]string{
		"role": models.RoleUser,
	})
	req = testutil.WithChiURLParam(req, "id", strconv.Itoa(int(u.ID)))
	rec := httptest.NewRecorder()
	d.handler.HandleUpdateRole(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	exists, err := d.admins.Exists(ctx, u.ID)
	if err != nil {
		t.Fatalf("Exists() failed: %v", err)
	}
	if exists {
		t.Error("admin membership row survived demotion")
	}
}

func TestHandleUpdateRole_SwapsMemberships(t *testing.T) {
	d := newTestHandler(t)
	ctx := testutil.TestContext(t)
	u := d.fixtures.CreateWriter("wendy", "wendy@example.com", "pass", "bio")

	req := testutil.NewJSONRequest(t, "POST", "/users/"+strconv.Itoa(int(u.ID)), map[string]string{
		"role": models.RoleAdmin,
	})
	req = testutil.WithChiURLParam(req, "id", strconv.Itoa(int(u.ID)))
	rec := httptest.NewRecorder()
	d.handler.HandleUpdateRole(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	adminExists, err := d.admins.Exists(ctx, u.ID)
	if err != nil {
		t.Fatalf("Exists() failed: %v", err)
	}
	writerExists, err := d.writers.Exists(ctx, u.ID)
	if err != nil {
		t.Fatalf("Exists() failed: %v", err)
	}
	if !adminExists || writerExists {
		t.Errorf("memberships after swap: admin %v writer %v, want admin only", adminExists, writerExists)
	}
}

func TestHandleUpdateRole_InvalidRole(t *testing.T) {
	d := newTestHandler(t)
	u := d.fixtures.CreateUser("alice", "alice@example.com", "pass", models.RoleUser)

	req := testutil.NewJSONRequest(t, "POST", "/users/"+strconv.Itoa(int(u.ID)), map[string]string{
		"role": "superuser",
	})
	req = testutil.WithChiURLParam(req, "id", strconv.Itoa(int(u.ID)))
	rec := httptest.NewRecorder()
	d.handler.HandleUpdateRole(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleUpdateRole_MissingUser(t *testing.T) {
	d := newTestHandler(t)

	req := testutil.NewJSONRequest(t, "POST", "/users/9999", map[string]string{
		"role": models.RoleWriter,
	})
	req = testutil.WithChiURLParam(req, "id", "9999")
	rec := httptest.NewRecorder()
	d.handler.HandleUpdateRole(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusNotFound)
	}
}
