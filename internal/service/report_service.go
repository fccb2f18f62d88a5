package service

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/locvowork/employee_salary_api/internal/domain"
	"github.com/locvowork/employee_salary_api/internal/logger"
	"github.com/locvowork/employee_salary_api/pkg/simpleexcel"
)

// SalarySectionID is the section of the report layout that receives employee rows.
const SalarySectionID = "employees"

// SalaryFormatter is the formatter name month columns are rendered with.
// Layouts may also reference it on their own columns.
const SalaryFormatter = "salary"

//go:embed report_config.yaml
var defaultReportLayout string

// ReportService renders v2 employees into an xlsx workbook.
type ReportService struct {
	employees   EmployeeService
	newExporter func() (*simpleexcel.DataExporter, error)
}

// NewReportService uses the layout file at layoutPath, or the built-in layout
// when layoutPath is empty. The file is re-read for every report so layout
// edits apply without a restart; it must parse at construction time.
func NewReportService(employees EmployeeService, layoutPath string) (*ReportService, error) {
	newExporter := func() (*simpleexcel.DataExporter, error) {
		return simpleexcel.NewDataExporterFromYamlConfig(defaultReportLayout)
	}
	if layoutPath != "" {
		newExporter = func() (*simpleexcel.DataExporter, error) {
			return simpleexcel.NewDataExporterFromYamlFile(layoutPath)
		}
	}
	if _, err := newExporter(); err != nil {
		return nil, fmt.Errorf("load report layout: %w", err)
	}

	return &ReportService{employees: employees, newExporter: newExporter}, nil
}

// SalaryReport writes every employee with one column per known month,
// months in ascending order. Months an employee has no salary for stay blank.
func (s *ReportService) SalaryReport(ctx context.Context, w io.Writer) error {
	employees, err := s.employees.Snapshot(ctx)
	if err != nil {
		return err
	}

	rows, err := simpleexcel.FlattenRecords(employees)
	if err != nil {
		return fmt.Errorf("flatten employees: %w", err)
	}

	exporter, err := s.newExporter()
	if err != nil {
		return fmt.Errorf("load report layout: %w", err)
	}
	for _, month := range salaryMonths(employees) {
		exporter.AppendSectionColumns(SalarySectionID, simpleexcel.ColumnConfig{
			FieldName: "salaries." + month,
			Header:    month,
			Width:     12,
			Formatter: SalaryFormatter,
		})
	}
	exporter.
		RegisterFormatter(SalaryFormatter, roundToCents).
		BindSectionData(SalarySectionID, rows)

	if err := exporter.ToWriter(w); err != nil {
		return fmt.Errorf("write salary report: %w", err)
	}

	logger.InfoLog(ctx, "Exported salary report for %d employees", len(employees))
	return nil
}

func salaryMonths(employees []domain.Employee) []string {
	seen := make(map[string]struct{})
	for _, e := range employees {
		for month := range e.Salaries {
			seen[month] = struct{}{}
		}
	}

	months := make([]string, 0, len(seen))
	for month := range seen {
		months = append(months, month)
	}
	sort.Strings(months)
	return months
}

// roundToCents rounds float salaries to two decimals and passes anything else through.
func roundToCents(v interface{}) interface{} {
	f, ok := v.(float64)
	if !ok {
		return v
	}
	return math.Round(f*100) / 100
}
