package manifest

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	idPattern     = regexp.MustCompile(`^[a-z0-9][a-z0-9-_]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return idPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Lint runs advisory sanity checks over a normalized manifest and returns
// human-readable warnings. AI documents are displayed regardless of their
// shape, so nothing here is fatal; callers log the warnings and move on.
func Lint(m Manifest) []string {
	v := validatorInstance()
	var warnings []string

	if err := v.Var(m.Project.Version, "semver"); err != nil {
		warnings = append(warnings, fmt.Sprintf("project.version %q is not a version number", m.Project.Version))
	}
	if err := v.Var(m.Project.ID, "slug"); err != nil {
		warnings = append(warnings, fmt.Sprintf("project.id %q is not a usable identifier", m.Project.ID))
	}
	if m.Project.Domain != "" {
		if err := v.Var(m.Project.Domain, "fqdn"); err != nil {
			warnings = append(warnings, fmt.Sprintf("project.domain %q is not a hostname", m.Project.Domain))
		}
	}

	for _, id := range m.Landing.Structure {
		if _, ok := m.Landing.Sections[id]; !ok {
			warnings = append(warnings, fmt.Sprintf("landing section %q has no content block", id))
		}
	}

	seen := make(map[string]struct{}, len(m.App.Dashboard.Modules))
	for _, module := range m.App.Dashboard.Modules {
		if _, dup := seen[module.ID]; dup {
			warnings = append(warnings, fmt.Sprintf("dashboard module id %q is duplicated", module.ID))
		}
		seen[module.ID] = struct{}{}
	}

	return warnings
}
