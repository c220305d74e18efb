package role

import "testing"

func TestRoleString(t *testing.T) {
	tests := []struct {
		role Role
		want string
	}{
		{Customer, "customer"},
		{Manager, "manager"},
		{Admin, "admin"},
		{Role(7), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.role.String(); got != tt.want {
			t.Errorf("Role(%d).String() = %q, want %q", tt.role, got, tt.want)
		}
	}
}

func TestRoleIsValid(t *testing.T) {
	if !Customer.IsValid() || !Manager.IsValid() || !Admin.IsValid() {
		t.Error("expected built-in roles to be valid")
	}
	if Role(-1).IsValid() || Role(3).IsValid() {
		t.Error("expected out-of-range roles to be invalid")
	}
}
