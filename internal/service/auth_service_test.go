package service

import (
	"manhaj_backend/internal/config"
	"manhaj_backend/internal/model"
	"manhaj_backend/internal/repository"
	"manhaj_backend/internal/util"
	"testing"
	"time"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	db := newTestDB(t)
	cfg := &config.Config{JWT: config.JWTConfig{Secret: "test-secret", ExpireTime: time.Hour}}
	return NewAuthService(repository.NewUserRepository(db), cfg)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)

	user := &model.User{Name: "سارة", Email: "sara@example.com", Password: "password123", GradeLevel: 7}
	if err := svc.Register(user); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Role != model.Student {
		t.Fatalf("role = %s, want student default", user.Role)
	}
	if user.Password == "password123" {
		t.Fatalf("password stored in plain text")
	}

	stored, err := svc.UserRepo.FindByEmail("sara@example.com")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if stored.ID == 0 {
		t.Fatalf("user row not persisted")
	}

	token, err := svc.Login("sara@example.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatalf("login returned empty token")
	}

	if _, err := svc.Login("sara@example.com", "wrong"); err != util.ErrUnauthorized {
		t.Fatalf("wrong password: got %v, want ErrUnauthorized", err)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)

	first := &model.User{Name: "أحمد", Email: "ahmad@example.com", Password: "password123"}
	if err := svc.Register(first); err != nil {
		t.Fatalf("Register: %v", err)
	}

	dup := &model.User{Name: "أحمد الثاني", Email: "ahmad@example.com", Password: "password456"}
	if err := svc.Register(dup); err != util.ErrEmailRegistered {
		t.Fatalf("duplicate register: got %v, want ErrEmailRegistered", err)
	}
}

func TestLoginRejectsDisabledAccount(t *testing.T) {
	svc := newAuthService(t)

	user := &model.User{Name: "خالد", Email: "khaled@example.com", Password: "password123"}
	if err := svc.Register(user); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := svc.UserRepo.UpdateFields(user.ID, map[string]interface{}{"disabled": true}); err != nil {
		t.Fatalf("disable: %v", err)
	}

	if _, err := svc.Login("khaled@example.com", "password123"); err != util.ErrPermissionDenied {
		t.Fatalf("disabled login: got %v, want ErrPermissionDenied", err)
	}
}
