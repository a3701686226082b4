package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Manthan2549/panchveda-wellness-hub/domain"
)

func writeRules(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "routes.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write rules: %v", err)
	}
	return path
}

func TestLoadRouteRules(t *testing.T) {
	path := writeRules(t, `
routes:
  - path: /patient-dashboard
    view: patient-dashboard
    roles: [patient]
  - path: /practitioner-dashboard
    view: practitioner-dashboard
    roles: [practitioner]
  - path: /questionnaire
    view: questionnaire
    roles: []
`)

	rules, err := LoadRouteRules(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rules) != 3 {
		t.Fatalf("expected 3 rules, got %d", len(rules))
	}
	if rules[0].Roles[0] != domain.RolePatient {
		t.Errorf("expected patient role, got %q", rules[0].Roles[0])
	}
	if len(rules[2].Roles) != 0 {
		t.Errorf("expected open constraint, got %v", rules[2].Roles)
	}
}

func TestLoadRouteRules_UnknownRole(t *testing.T) {
	path := writeRules(t, `
routes:
  - path: /admin
    view: admin
    roles: [admin]
`)

	if _, err := LoadRouteRules(path); err == nil {
		t.Fatal("expected error for unknown role")
	}
}

func TestLoadRouteRules_MissingPath(t *testing.T) {
	path := writeRules(t, `
routes:
  - view: orphan
    roles: [patient]
`)

	if _, err := LoadRouteRules(path); err == nil {
		t.Fatal("expected error for missing path")
	}
}
