package main

import (
	"testing"

	"slopewatch.io/slopewatch/ent/user"
)

func TestDemoUsers_OnePerRole(t *testing.T) {
	t.Parallel()

	users := demoUsers()
	if len(users) != 4 {
		t.Fatalf("demoUsers count = %d, want 4", len(users))
	}

	byRole := make(map[user.Role]demoUser, len(users))
	byID := make(map[string]demoUser, len(users))
	for _, u := range users {
		if _, exists := byRole[u.Role]; exists {
			t.Fatalf("duplicate role in demo users: %s", u.Role)
		}
		if _, exists := byID[u.ID]; exists {
			t.Fatalf("duplicate user id: %s", u.ID)
		}
		byRole[u.Role] = u
		byID[u.ID] = u
	}

	for _, role := range []user.Role{user.RoleAdmin, user.RoleOfficer, user.RoleFieldWorker, user.RoleResident} {
		if _, ok := byRole[role]; !ok {
			t.Fatalf("missing demo user for role %s", role)
		}
	}
}

func TestDemoUsers_AllHaveCredentials(t *testing.T) {
	t.Parallel()

	for _, u := range demoUsers() {
		if u.Username == "" || u.Password == "" {
			t.Fatalf("demo user %s has empty credentials", u.ID)
		}
		if u.ID == "" {
			t.Fatalf("demo user %s has empty id", u.Username)
		}
	}
}
