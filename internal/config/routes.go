package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Manthan2549/panchveda-wellness-hub/domain"
)

// RouteRule declares one guarded view: its path, the handler view name, and
// which roles may enter. An empty role list admits any signed-in visitor.
type RouteRule struct {
	Path  string        `yaml:"path"`
	View  string        `yaml:"view"`
	Roles []domain.Role `yaml:"roles"`
}

// LoadRouteRules reads the guarded-route table. Unknown role names are a
// configuration error, not a silent deny.
func LoadRouteRules(path string) ([]RouteRule, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read route rules file at %s: %w", path, err)
	}

	var file struct {
		Routes []RouteRule `yaml:"routes"`
	}
	if err := yaml.Unmarshal(bytes, &file); err != nil {
		return nil, fmt.Errorf("could not parse route rules yaml: %w", err)
	}

	for _, rule := range file.Routes {
		if rule.Path == "" {
			return nil, fmt.Errorf("route rule with view %q is missing a path", rule.View)
		}
		for _, role := range rule.Roles {
			if !role.Valid() {
				return nil, fmt.Errorf("route %s names unknown role %q", rule.Path, role)
			}
		}
	}
	return file.Routes, nil
}
