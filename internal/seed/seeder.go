package seed

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/locvowork/employee_salary_api/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed employees.yaml
var defaultSeed []byte

// Employee is one entry of a seed document. Salary feeds the v1 store,
// Salaries the v2 store.
type Employee struct {
	Name     string             `yaml:"name"`
	Position string             `yaml:"position"`
	Salary   float64            `yaml:"salary"`
	Salaries map[string]float64 `yaml:"salaries"`
}

// Document is the top level of a seed file.
type Document struct {
	Employees []Employee `yaml:"employees"`
}

// Load reads a seed document from path, or the built-in one when path is empty.
func Load(path string) (*Document, error) {
	data := defaultSeed
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
		data = b
	}
	return Parse(data)
}

// Parse decodes a seed document. Every entry needs a name and a position.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode seed yaml: %w", err)
	}
	for i, e := range doc.Employees {
		if e.Name == "" || e.Position == "" {
			return nil, fmt.Errorf("seed employee %d: name and position are required", i+1)
		}
	}
	return &doc, nil
}

// DataSeeder fills the stores through their Create methods, so ids follow
// the normal assignment rules.
type DataSeeder struct {
	employees      domain.EmployeeRepository
	basicEmployees domain.BasicEmployeeRepository
}

// NewDataSeeder accepts nil for a store that should not be seeded.
func NewDataSeeder(employees domain.EmployeeRepository, basicEmployees domain.BasicEmployeeRepository) *DataSeeder {
	return &DataSeeder{employees: employees, basicEmployees: basicEmployees}
}

// SeedData inserts every document entry into each configured store.
func (ds *DataSeeder) SeedData(ctx context.Context, doc *Document) error {
	for _, e := range doc.Employees {
		if ds.employees != nil {
			rec := &domain.Employee{Name: e.Name, Position: e.Position, Salaries: e.Salaries}
			if err := ds.employees.Create(ctx, rec); err != nil {
				return fmt.Errorf("seed employee %q: %w", e.Name, err)
			}
		}
		if ds.basicEmployees != nil {
			rec := &domain.BasicEmployee{Name: e.Name, Position: e.Position, Salary: e.Salary}
			if err := ds.basicEmployees.Create(ctx, rec); err != nil {
				return fmt.Errorf("seed basic employee %q: %w", e.Name, err)
			}
		}
	}
	return nil
}
