package entity

import (
	"encoding/json"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNormalizeRole(t *testing.T) {
	cases := map[string]Role{
		"Parent":    RoleParent,
		"  DOCTOR ": RoleDoctor,
		"admin":     RoleAdmin,
		"Nurse":     "nurse",
	}
	for in, want := range cases {
		if got := NormalizeRole(in); got != want {
			t.Errorf("NormalizeRole(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRoleChecks(t *testing.T) {
	if !RoleParent.AllowedForRegistration() || !RoleDoctor.AllowedForRegistration() {
		t.Fatal("parent and doctor must be allowed for registration")
	}
	if RoleAdmin.AllowedForRegistration() {
		t.Fatal("admin must not be allowed for registration")
	}
	if !RoleAdmin.Valid() || Role("nurse").Valid() {
		t.Fatal("role validity check broken")
	}
}

func TestUserJSONHidesPasswordHash(t *testing.T) {
	u := User{
		ID:           primitive.NewObjectID(),
		FullName:     "Jane Doe",
		Email:        "jane@x.com",
		PasswordHash: "$2a$12$notarealdigest",
		Role:         RoleParent,
		IsActive:     true,
	}
	b, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(b), "notarealdigest") || strings.Contains(string(b), "passwordHash") {
		t.Fatalf("serialized user leaks the digest: %s", b)
	}
}

func TestProfileProjection(t *testing.T) {
	u := User{
		ID:       primitive.NewObjectID(),
		FullName: "Jane Doe",
		Email:    "jane@x.com",
		Phone:    "555-0100",
		Role:     RoleDoctor,
	}
	p := u.Profile()
	if p.ID != u.ID.Hex() || p.Email != u.Email || p.Role != RoleDoctor || p.Phone != "555-0100" {
		t.Fatalf("unexpected projection: %+v", p)
	}
}
