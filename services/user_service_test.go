package services

import (
	"testing"

	"food-ordering-api/apperr"
	"food-ordering-api/models"
	"food-ordering-api/repository"

	"gorm.io/gorm"
)

type fakeMailer struct {
	to    []string
	codes []string
	fail  bool
}

func (f *fakeMailer) SendVerification(to, code string) error {
	f.to = append(f.to, to)
	f.codes = append(f.codes, code)
	if f.fail {
		return errTest
	}
	return nil
}

var errTest = apperr.E(apperr.Persistence, "boom")

func newUserService(db *gorm.DB, mailer *fakeMailer) *UserService {
	return NewUserService(repository.NewUserRepository(db), mailer)
}

func TestCreateAccount(t *testing.T) {
	db := newTestDB(t)
	mailer := &fakeMailer{}
	svc := newUserService(db, mailer)

	user, err := svc.CreateAccount(CreateAccountRequest{
		Email:    "client@test.com",
		Password: "secret1",
		Role:     models.RoleClient,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if user.Verified {
		t.Error("new account should start unverified")
	}
	if user.PasswordHash == "secret1" || user.PasswordHash == "" {
		t.Error("password stored unhashed")
	}
	if len(mailer.codes) != 1 || mailer.to[0] != "client@test.com" {
		t.Errorf("verification mail = %+v", mailer)
	}

	_, err = svc.CreateAccount(CreateAccountRequest{
		Email:    "client@test.com",
		Password: "secret2",
		Role:     models.RoleOwner,
	})
	if err == nil || err.Error() != "There is a user with that email already" {
		t.Errorf("duplicate email: err = %v", err)
	}

	_, err = svc.CreateAccount(CreateAccountRequest{
		Email:    "admin@test.com",
		Password: "secret1",
		Role:     models.UserRole("Admin"),
	})
	if apperr.KindOf(err) != apperr.Validation {
		t.Errorf("bad role: err = %v, want Validation", err)
	}
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db, &fakeMailer{})

	if _, err := svc.CreateAccount(CreateAccountRequest{
		Email:    "client@test.com",
		Password: "secret1",
		Role:     models.RoleClient,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Login(LoginRequest{Email: "client@test.com", Password: "secret1"}); err != nil {
		t.Errorf("login: %v", err)
	}
	if _, err := svc.Login(LoginRequest{Email: "client@test.com", Password: "wrong"}); apperr.KindOf(err) != apperr.NotAuthorized {
		t.Errorf("wrong password: err = %v", err)
	}
	if _, err := svc.Login(LoginRequest{Email: "nobody@test.com", Password: "secret1"}); apperr.KindOf(err) != apperr.NotAuthorized {
		t.Errorf("unknown email: err = %v", err)
	}
}

func TestVerifyEmail(t *testing.T) {
	db := newTestDB(t)
	mailer := &fakeMailer{}
	svc := newUserService(db, mailer)

	user, err := svc.CreateAccount(CreateAccountRequest{
		Email:    "client@test.com",
		Password: "secret1",
		Role:     models.RoleClient,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.VerifyEmail(mailer.codes[0]); err != nil {
		t.Fatalf("verify: %v", err)
	}

	reloaded, err := svc.Profile(user.ID)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if !reloaded.Verified {
		t.Error("user not marked verified")
	}

	// Code is consumed
	if err := svc.VerifyEmail(mailer.codes[0]); apperr.KindOf(err) != apperr.NotFound {
		t.Errorf("reused code: err = %v, want NotFound", err)
	}
}

func TestEditProfile(t *testing.T) {
	db := newTestDB(t)
	mailer := &fakeMailer{}
	svc := newUserService(db, mailer)

	user, err := svc.CreateAccount(CreateAccountRequest{
		Email:    "client@test.com",
		Password: "secret1",
		Role:     models.RoleClient,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.VerifyEmail(mailer.codes[0]); err != nil {
		t.Fatalf("verify: %v", err)
	}
	verified, _ := svc.Profile(user.ID)

	updated, err := svc.EditProfile(*verified, EditProfileRequest{Email: "new@test.com"})
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if updated.Email != "new@test.com" {
		t.Errorf("email = %s", updated.Email)
	}
	if updated.Verified {
		t.Error("email change must reset verified")
	}
	if len(mailer.codes) != 2 {
		t.Errorf("expected a fresh verification mail, got %d total", len(mailer.codes))
	}

	// mail failure is logged, not surfaced
	mailer.fail = true
	if _, err := svc.EditProfile(*updated, EditProfileRequest{Email: "third@test.com"}); err != nil {
		t.Errorf("edit with failing mailer: %v", err)
	}
	mailer.fail = false

	t.Run("password-only edit does not reissue verification", func(t *testing.T) {
		current, _ := svc.Profile(user.ID)
		if current.Verified {
			t.Fatal("setup: user should still be unverified")
		}
		sent := len(mailer.codes)

		after, err := svc.EditProfile(*current, EditProfileRequest{Password: "newsecret"})
		if err != nil {
			t.Fatalf("edit: %v", err)
		}
		if len(mailer.codes) != sent {
			t.Errorf("verification mails = %d, want %d", len(mailer.codes), sent)
		}
		if after.Email != current.Email {
			t.Errorf("email changed to %s", after.Email)
		}
	})
}
