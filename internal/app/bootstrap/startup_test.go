package bootstrap

import (
	"testing"

	adminstore "github.com/dattali18/FSWD-Project-6-Backend/internal/app/store/admins"
	userstore "github.com/dattali18/FSWD-Project-6-Backend/internal/app/store/users"
	"github.com/dattali18/FSWD-Project-6-Backend/internal/domain/models"
	"github.com/dattali18/FSWD-Project-6-Backend/internal/testutil"
	"go.uber.org/zap"
)

func TestStartup_NoBootstrapAdminConfigured(t *testing.T) {
	deps := DBDeps{SQL: testutil.SetupTestDB(t)}
	ctx := testutil.TestContext(t)

	if err := Startup(ctx, nil, AppConfig{}, deps, zap.NewNop()); err != nil {
		t.Fatalf("Startup() failed: %v", err)
	}
}

func TestStartup_CreatesBootstrapAdmin(t *testing.T) {
	deps := DBDeps{SQL: testutil.SetupTestDB(t)}
	ctx := testutil.TestContext(t)

	appCfg := AppConfig{
		BootstrapAdminUsername: "root",
		BootstrapAdminEmail:    "root@example.com",
		BootstrapAdminPassword: "s3cret-pass",
	}
	if err := Startup(ctx, nil, appCfg, deps, zap.NewNop()); err != nil {
		t.Fatalf("Startup() failed: %v", err)
	}

	users := userstore.New(deps.SQL)
	u, err := users.GetByUsername(ctx, "root")
	if err != nil {
		t.Fatalf("bootstrap admin missing: %v", err)
	}
	if u.Role != models.RoleAdmin {
		t.Errorf("role: got %q, want %q", u.Role, models.RoleAdmin)
	}

	exists, err := adminstore.New(deps.SQL).Exists(ctx, u.ID)
	if err != nil {
		t.Fatalf("Exists() failed: %v", err)
	}
	if !exists {
		t.Error("admin membership row missing for bootstrap admin")
	}
}

func TestStartup_PromotesExistingUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	deps := DBDeps{SQL: db}
	ctx := testutil.TestContext(t)
	fixtures := testutil.NewFixtures(t, db)

	existing := fixtures.CreateUser("root", "root@example.com", "pass", models.RoleUser)

	appCfg := AppConfig{
		BootstrapAdminUsername: "root",
		BootstrapAdminEmail:    "root@example.com",
		BootstrapAdminPassword: "pass",
	}
	if err := Startup(ctx, nil, appCfg, deps, zap.NewNop()); err != nil {
		t.Fatalf("Startup() failed: %v", err)
	}

	u, err := userstore.New(db).GetByID(ctx, existing.ID)
	if err != nil {
		t.Fatalf("GetByID() failed: %v", err)
	}
	if u.Role != models.RoleAdmin {
		t.Errorf("role after promotion: got %q, want %q", u.Role, models.RoleAdmin)
	}

	// Running startup again is a no-op.
	if err := Startup(ctx, nil, appCfg, deps, zap.NewNop()); err != nil {
		t.Fatalf("Startup() repeated: %v", err)
	}
}
