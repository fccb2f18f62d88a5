package service

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/locvowork/employee_salary_api/internal/domain"
	"github.com/locvowork/employee_salary_api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReportService_SalaryReport(t *testing.T) {
	ctx := context.Background()
	svc := NewEmployeeService(repository.NewEmployeeRepository())
	_, err := svc.Create(ctx, domain.CreateEmployeeRequest{
		Name: strPtr("John Doe"), Position: strPtr("Developer"),
		Salaries: map[string]float64{"2024-12": 62000, "2024-11": 60000},
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, domain.CreateEmployeeRequest{
		Name: strPtr("Jane Smith"), Position: strPtr("Manager"),
		Salaries: map[string]float64{"2025-01": 81000},
	})
	require.NoError(t, err)

	reports, err := NewReportService(svc, "")
	require.NoError(t, err)

	buf := new(bytes.Buffer)
	require.NoError(t, reports.SalaryReport(ctx, buf))

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Salaries")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Employee Salaries", rows[0][0])
	assert.Equal(t, []string{"ID", "Name", "Position", "2024-11", "2024-12", "2025-01"}, rows[1])
	assert.Equal(t, []string{"1", "John Doe", "Developer", "60000", "62000"}, rows[2])
	assert.Equal(t, []string{"2", "Jane Smith", "Manager", "", "", "81000"}, rows[3])
}

func TestReportService_EmptyStore(t *testing.T) {
	reports, err := NewReportService(NewEmployeeService(repository.NewEmployeeRepository()), "")
	require.NoError(t, err)

	buf := new(bytes.Buffer)
	require.NoError(t, reports.SalaryReport(context.Background(), buf))

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Salaries")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"ID", "Name", "Position"}, rows[1])
}

func TestNewReportService_LayoutFile(t *testing.T) {
	svc := NewEmployeeService(repository.NewEmployeeRepository())

	dir := t.TempDir()
	good := filepath.Join(dir, "layout.yaml")
	require.NoError(t, os.WriteFile(good, []byte(`
sheets:
  - name: "Payroll"
    sections:
      - id: "employees"
        show_header: true
        columns:
          - field_name: "name"
            header: "Employee"
`), 0o644))

	reports, err := NewReportService(svc, good)
	require.NoError(t, err)
	buf := new(bytes.Buffer)
	require.NoError(t, reports.SalaryReport(context.Background(), buf))

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Payroll"}, f.GetSheetList())

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("sheets: ["), 0o644))
	_, err = NewReportService(svc, bad)
	assert.Error(t, err)

	_, err = NewReportService(svc, filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestSalaryMonths(t *testing.T) {
	months := salaryMonths([]domain.Employee{
		{Salaries: map[string]float64{"2024-12": 1, "2024-01": 1}},
		{Salaries: map[string]float64{"2024-12": 2, "2023-06": 2}},
		{},
	})
	assert.Equal(t, []string{"2023-06", "2024-01", "2024-12"}, months)
}

func TestReportService_RoundsMonthSalaries(t *testing.T) {
	ctx := context.Background()
	svc := NewEmployeeService(repository.NewEmployeeRepository())
	_, err := svc.Create(ctx, domain.CreateEmployeeRequest{
		Name: strPtr("John Doe"), Position: strPtr("Developer"),
		Salaries: map[string]float64{"2024-11": 60000.456},
	})
	require.NoError(t, err)

	reports, err := NewReportService(svc, "")
	require.NoError(t, err)
	buf := new(bytes.Buffer)
	require.NoError(t, reports.SalaryReport(ctx, buf))

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	value, err := f.GetCellValue("Salaries", "D3")
	require.NoError(t, err)
	assert.Equal(t, "60000.46", value)
}

func TestReportService_RereadsLayoutFile(t *testing.T) {
	svc := NewEmployeeService(repository.NewEmployeeRepository())
	layout := filepath.Join(t.TempDir(), "layout.yaml")
	write := func(sheet string) {
		require.NoError(t, os.WriteFile(layout, []byte(`
sheets:
  - name: "`+sheet+`"
    sections:
      - id: "employees"
        columns:
          - field_name: "name"
            header: "Employee"
`), 0o644))
	}

	write("Before")
	reports, err := NewReportService(svc, layout)
	require.NoError(t, err)
	write("After")

	buf := new(bytes.Buffer)
	require.NoError(t, reports.SalaryReport(context.Background(), buf))
	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"After"}, f.GetSheetList())
}

func TestRoundToCents(t *testing.T) {
	assert.Equal(t, 1234.57, roundToCents(1234.5678))
	assert.Equal(t, "n/a", roundToCents("n/a"))
}
