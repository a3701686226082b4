package domain

import "testing"

func TestParseRole(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Role
		wantErr  bool
	}{
		{name: "patient", input: "patient", expected: RolePatient},
		{name: "practitioner", input: "practitioner", expected: RolePractitioner},
		{name: "empty", input: "", wantErr: true},
		{name: "unknown", input: "admin", wantErr: true},
		{name: "case sensitive", input: "Patient", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, err := ParseRole(tt.input)
			if tt.wantErr {
				if err != ErrInvalidRole {
					t.Errorf("expected ErrInvalidRole, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if role != tt.expected {
				t.Errorf("expected role %q, got %q", tt.expected, role)
			}
		})
	}
}

func TestRole_LandingPath(t *testing.T) {
	tests := []struct {
		name     string
		role     Role
		expected string
	}{
		{name: "practitioner lands on practitioner dashboard", role: RolePractitioner, expected: PractitionerLanding},
		{name: "patient lands on patient dashboard", role: RolePatient, expected: PatientLanding},
		{name: "role-less account lands on patient dashboard", role: RoleNone, expected: PatientLanding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.role.LandingPath(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestRole_Subject(t *testing.T) {
	if got := RolePractitioner.Subject(); got != "role_practitioner" {
		t.Errorf("expected role_practitioner, got %q", got)
	}
	if got := RolePatient.Subject(); got != "role_patient" {
		t.Errorf("expected role_patient, got %q", got)
	}
}

func TestRole_In(t *testing.T) {
	tests := []struct {
		name     string
		role     Role
		allowed  []Role
		expected bool
	}{
		{name: "empty set admits patient", role: RolePatient, allowed: nil, expected: true},
		{name: "empty set admits role-less", role: RoleNone, allowed: nil, expected: true},
		{name: "member", role: RolePatient, allowed: []Role{RolePatient}, expected: true},
		{name: "non-member", role: RolePatient, allowed: []Role{RolePractitioner}, expected: false},
		{name: "role-less never matches a constraint", role: RoleNone, allowed: []Role{RolePatient, RolePractitioner}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.role.In(tt.allowed); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
