package services_test

import (
	"testing"

	"fouraana/internal/services"
)

func newAuth() *services.AuthService {
	svc := services.NewAuthService("admin@4aana.test", "sum@n2030")
	svc.CheckDelay = 0
	return svc
}

func TestLoginAcceptsConfiguredCredential(t *testing.T) {
	svc := newAuth()

	sid, err := svc.Login("admin@4aana.test", "sum@n2030")
	if err != nil {
		t.Fatal(err)
	}
	if sid == "" {
		t.Fatal("expected a session id")
	}
	if !svc.IsAdmin(sid) {
		t.Fatal("session should be live after login")
	}
}

func TestLoginRejectsBadCredential(t *testing.T) {
	svc := newAuth()

	cases := []struct{ email, password string }{
		{"admin@4aana.test", "wrongpass"},
		{"stranger@4aana.test", "sum@n2030"},
		{"", ""},
	}
	for _, tc := range cases {
		if _, err := svc.Login(tc.email, tc.password); err != services.ErrBadCreds {
			t.Fatalf("Login(%q, ...): want ErrBadCreds, got %v", tc.email, err)
		}
	}
}

func TestLoginEmailIsCaseInsensitive(t *testing.T) {
	svc := newAuth()

	if _, err := svc.Login("ADMIN@4aana.test", "sum@n2030"); err != nil {
		t.Fatalf("uppercase email should log in: %v", err)
	}
}

func TestLogoutKillsSession(t *testing.T) {
	svc := newAuth()

	sid, err := svc.Login("admin@4aana.test", "sum@n2030")
	if err != nil {
		t.Fatal(err)
	}
	svc.Logout(sid)
	if svc.IsAdmin(sid) {
		t.Fatal("session should be dead after logout")
	}
}

func TestIsAdminRejectsUnknownSession(t *testing.T) {
	svc := newAuth()
	if svc.IsAdmin("never-issued") {
		t.Fatal("unknown session must not be admin")
	}
	if svc.IsAdmin("") {
		t.Fatal("empty session must not be admin")
	}
}
