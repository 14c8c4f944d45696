package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MobeenM17/SuswearGProject/internal/dto"
	"github.com/MobeenM17/SuswearGProject/internal/model"
)

func TestPromoteDepromote_RoundTrip(t *testing.T) {
	env := setupTestEnv(t)
	u := env.donor(t, "Pat Volunteer", "pat@example.com")
	ctx := context.Background()

	if err := env.svc.Role.Promote(ctx, u.UserID); err != nil {
		t.Fatalf("Promote failed: %v", err)
	}
	assertRole(t, env, u.UserID, model.RoleStaff)

	st, err := env.repo.Staff.GetByUserID(ctx, u.UserID)
	if err != nil {
		t.Fatalf("staff row missing: %v", err)
	}
	if st.FullName != u.FullName || st.Email != u.Email || st.PasswordHash != u.PasswordHash {
		t.Errorf("shadow fields not carried over: %+v", st)
	}

	if err := env.svc.Role.Depromote(ctx, u.UserID); err != nil {
		t.Fatalf("Depromote failed: %v", err)
	}
	assertRole(t, env, u.UserID, model.RoleDonor)

	d, err := env.repo.Donor.GetByUserID(ctx, u.UserID)
	if err != nil {
		t.Fatalf("donor row missing: %v", err)
	}
	if d.FullName != u.FullName || d.Email != u.Email || d.PasswordHash != u.PasswordHash {
		t.Errorf("shadow fields not carried over: %+v", d)
	}

	// the returned donor can still sign in with the original password
	if _, err := env.svc.Auth.Authenticate(ctx, "pat@example.com", "abc123"); err != nil {
		t.Errorf("login after round trip failed: %v", err)
	}
}

func assertRole(t *testing.T, env *testEnv, userID int, role string) {
	t.Helper()
	u, err := env.repo.User.GetByID(context.Background(), userID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if u.Role != role {
		t.Errorf("expected role %s, got %s", role, u.Role)
	}
	donors := env.count(t, &model.Donor{}, "user_id = ?", userID)
	staff := env.count(t, &model.Staff{}, "user_id = ?", userID)
	wantDonor, wantStaff := int64(0), int64(0)
	if role == model.RoleDonor {
		wantDonor = 1
	} else {
		wantStaff = 1
	}
	if donors != wantDonor || staff != wantStaff {
		t.Errorf("expected donors=%d staff=%d, got %d/%d", wantDonor, wantStaff, donors, staff)
	}
}

func TestPromote_NotADonor(t *testing.T) {
	env := setupTestEnv(t)
	st := env.staff(t, "Staff", "staff@example.com")
	ctx := context.Background()

	if err := env.svc.Role.Promote(ctx, st.UserID); !errors.Is(err, ErrDonorNotFound) {
		t.Errorf("expected ErrDonorNotFound, got %v", err)
	}
	if err := env.svc.Role.Promote(ctx, 4242); !errors.Is(err, ErrDonorNotFound) {
		t.Errorf("expected ErrDonorNotFound, got %v", err)
	}
	assertRole(t, env, st.UserID, model.RoleStaff)
}

func TestPromote_FailureAfterRoleUpdateRollsBack(t *testing.T) {
	env := setupTestEnv(t)
	u := env.donor(t, "Pat Volunteer", "pat@example.com")
	ctx := context.Background()

	// users.role is updated first; the staff insert then has nowhere to go
	if err := env.db.Migrator().DropTable(&model.Staff{}); err != nil {
		t.Fatalf("DropTable failed: %v", err)
	}

	if err := env.svc.Role.Promote(ctx, u.UserID); err == nil {
		t.Fatal("expected Promote to fail")
	}

	got, err := env.repo.User.GetByID(ctx, u.UserID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Role != model.RoleDonor {
		t.Errorf("role update must roll back, got %s", got.Role)
	}
	if n := env.count(t, &model.Donor{}, "user_id = ?", u.UserID); n != 1 {
		t.Errorf("donor row must survive, got %d", n)
	}
}

func TestDepromote_FailureAfterDonorInsertRollsBack(t *testing.T) {
	env := setupTestEnv(t)
	u := env.donor(t, "Sam Sorter", "sam@example.com")
	ctx := context.Background()

	if err := env.svc.Role.Promote(ctx, u.UserID); err != nil {
		t.Fatalf("Promote failed: %v", err)
	}
	// donor row and role update succeed, then deleting the staff row fails
	if err := env.db.Exec("CREATE TRIGGER staff_locked BEFORE DELETE ON staff BEGIN SELECT RAISE(ABORT, 'staff locked'); END").Error; err != nil {
		t.Fatalf("create trigger: %v", err)
	}

	if err := env.svc.Role.Depromote(ctx, u.UserID); err == nil {
		t.Fatal("expected Depromote to fail")
	}
	assertRole(t, env, u.UserID, model.RoleStaff)
}

func TestDepromote_NotStaff(t *testing.T) {
	env := setupTestEnv(t)
	d := env.donor(t, "Donor", "donor@example.com")

	if err := env.svc.Role.Depromote(context.Background(), d.UserID); !errors.Is(err, ErrStaffNotFound) {
		t.Errorf("expected ErrStaffNotFound, got %v", err)
	}
	assertRole(t, env, d.UserID, model.RoleDonor)
}

func TestCreateStaff(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	req := &dto.CreateStaffRequest{FullName: "New Staff", Email: "New.Staff@Example.com", Password: "Warehouse9"}

	if _, err := env.svc.Role.CreateStaff(ctx, model.RoleStaff, req); !errors.Is(err, ErrAdminOnly) {
		t.Errorf("expected ErrAdminOnly, got %v", err)
	}

	resp, err := env.svc.Role.CreateStaff(ctx, model.RoleAdmin, req)
	if err != nil {
		t.Fatalf("CreateStaff failed: %v", err)
	}
	if resp.Email != "new.staff@example.com" {
		t.Errorf("expected normalized email, got %s", resp.Email)
	}
	assertRole(t, env, resp.ID, model.RoleStaff)

	if _, err := env.svc.Role.CreateStaff(ctx, model.RoleAdmin, req); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}

	u, err := env.svc.Auth.Authenticate(ctx, "new.staff@example.com", "Warehouse9")
	if err != nil || u.Role != model.RoleStaff {
		t.Errorf("new staff cannot sign in: %v", err)
	}
}

func TestCreateAccount_Admin(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	resp, err := env.svc.Role.CreateAccount(ctx, model.RoleAdmin, "Root", "root@example.com", "Sup3rsecret")
	if err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}
	u, _ := env.repo.User.GetByID(ctx, resp.ID)
	if u.Role != model.RoleAdmin {
		t.Errorf("expected Admin, got %s", u.Role)
	}
	if env.count(t, &model.Donor{}, "user_id = ?", resp.ID)+env.count(t, &model.Staff{}, "user_id = ?", resp.ID) != 0 {
		t.Error("admins have no shadow row")
	}

	if _, err := env.svc.Role.CreateAccount(ctx, "Owner", "x", "x@example.com", "Sup3rsecret"); !errors.Is(err, ErrInvalidRole) {
		t.Errorf("expected ErrInvalidRole, got %v", err)
	}
}

func TestListAccounts(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	env.donor(t, "Zoe", "zoe@example.com")
	env.donor(t, "Adam", "adam@example.com")
	env.staff(t, "Mia", "mia@example.com")

	donors, err := env.svc.Role.ListDonors(ctx)
	if err != nil {
		t.Fatalf("ListDonors failed: %v", err)
	}
	if len(donors) != 2 || donors[0].FullName != "Adam" || donors[1].FullName != "Zoe" {
		t.Errorf("unexpected donors %+v", donors)
	}

	staff, err := env.svc.Role.ListStaff(ctx)
	if err != nil {
		t.Fatalf("ListStaff failed: %v", err)
	}
	if len(staff) != 1 || staff[0].Email != "mia@example.com" {
		t.Errorf("unexpected staff %+v", staff)
	}
}
