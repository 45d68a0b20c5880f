package registry

import (
	"math/rand"

	"compliance-email-datagen/internal/config"
	"compliance-email-datagen/internal/models"
)

// Registry holds the immutable reference data of the generator: the employee
// directory and the per-category template sets. It exposes lookups only;
// nothing here is mutated after construction.
type Registry struct {
	employees []models.Employee
	templates map[models.Label][]models.Template
}

// New creates a Registry over the given roster and template sets.
func New(employees []models.Employee, templates map[models.Label][]models.Template) *Registry {
	return &Registry{
		employees: employees,
		templates: templates,
	}
}

// Default returns a Registry populated with the built-in fund directory and
// message templates.
func Default() *Registry {
	return New(defaultEmployees, defaultTemplates)
}

// Employees returns the full roster.
func (r *Registry) Employees() []models.Employee {
	return r.employees
}

// EmployeesInDepartment filters the roster by department.
func (r *Registry) EmployeesInDepartment(dept string) []models.Employee {
	var result []models.Employee
	for _, e := range r.employees {
		if e.Department == dept {
			result = append(result, e)
		}
	}
	return result
}

// RandomTemplate draws a template uniformly from the category's set. A
// category without templates is a configuration error; Validate catches it
// before generation starts, so this should never fire for a validated setup.
func (r *Registry) RandomTemplate(rnd *rand.Rand, label models.Label) (models.Template, error) {
	set := r.templates[label]
	if len(set) == 0 {
		return models.Template{}, config.Errorf("no templates registered for label %s", label)
	}
	return set[rnd.Intn(len(set))], nil
}

// Validate checks the roster-dependent configuration invariants: every
// category the configuration can draw from must have at least one template,
// and both barrier departments must have at least one employee. Violations
// abort the run before any record is generated.
func (r *Registry) Validate(cfg *models.Config) error {
	for label, weight := range cfg.LabelWeights {
		if weight > 0 && len(r.templates[label]) == 0 {
			return config.Errorf("label %s has weight %v but no templates", label, weight)
		}
	}
	for label, count := range cfg.FinetuneCounts {
		if count > 0 && len(r.templates[label]) == 0 {
			return config.Errorf("label %s has finetune count %d but no templates", label, count)
		}
	}

	barrierWeight := cfg.LabelWeights[models.LabelInfoBarrierViolation]
	if barrierWeight > 0 {
		for _, dept := range cfg.BarrierDepartments {
			if len(r.EmployeesInDepartment(dept)) == 0 {
				return config.Errorf("barrier department %q has no employees", dept)
			}
		}
	}

	return nil
}
