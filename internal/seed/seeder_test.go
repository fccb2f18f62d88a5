package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/locvowork/employee_salary_api/internal/domain"
	"github.com/locvowork/employee_salary_api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultDocument(t *testing.T) {
	doc, err := Load("")
	require.NoError(t, err)
	require.Len(t, doc.Employees, 5)
	assert.Equal(t, "John Doe", doc.Employees[0].Name)
	assert.Equal(t, 60000.0, doc.Employees[0].Salaries["2024-11"])
}

func TestSeedData_BothStores(t *testing.T) {
	ctx := context.Background()
	doc, err := Load("")
	require.NoError(t, err)

	employees := repository.NewEmployeeRepository()
	basic := repository.NewBasicEmployeeRepository()
	require.NoError(t, NewDataSeeder(employees, basic).SeedData(ctx, doc))

	all, err := employees.List(ctx, domain.EmployeeFilter{})
	require.NoError(t, err)
	require.Len(t, all, 5)
	for i, e := range all {
		assert.Equal(t, i+1, e.ID)
		assert.NotNil(t, e.Salaries)
	}

	first, err := basic.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.BasicEmployee{ID: 1, Name: "John Doe", Position: "Developer", Salary: 60000}, *first)
}

func TestSeedData_SkipsNilStore(t *testing.T) {
	ctx := context.Background()
	doc := &Document{Employees: []Employee{{Name: "Only V2", Position: "Developer"}}}

	employees := repository.NewEmployeeRepository()
	require.NoError(t, NewDataSeeder(employees, nil).SeedData(ctx, doc))

	got, err := employees.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Only V2", got.Name)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
employees:
  - name: "Custom"
    position: "CTO"
    salaries:
      "2025-01": 1
`), 0o644))
	doc, err := Load(path)
	require.NoError(t, err)
	require.Len(t, doc.Employees, 1)
	assert.Equal(t, map[string]float64{"2025-01": 1}, doc.Employees[0].Salaries)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestParse_RequiresNameAndPosition(t *testing.T) {
	_, err := Parse([]byte(`employees: [{name: "No Position"}]`))
	assert.ErrorContains(t, err, "name and position are required")

	_, err = Parse([]byte(`employees: {`))
	assert.Error(t, err)
}
