package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/locvowork/employee_salary_api/internal/domain"
	"github.com/locvowork/employee_salary_api/internal/logger"
)

// EmployeeService is the v2 API: monthly salaries and paginated listing.
type EmployeeService interface {
	List(ctx context.Context, page, perPage string) ([]domain.Employee, error)
	Get(ctx context.Context, id int) (*domain.Employee, error)
	GetSalary(ctx context.Context, id int, month string) (*domain.SalaryProjection, error)
	Create(ctx context.Context, req domain.CreateEmployeeRequest) (*domain.Employee, error)
	UpdateSalary(ctx context.Context, id int, req domain.UpdateSalaryRequest) (*domain.Employee, error)
	Delete(ctx context.Context, id int) error
	Snapshot(ctx context.Context) ([]domain.Employee, error)
}

type employeeService struct {
	repo domain.EmployeeRepository
}

// NewEmployeeService creates a new EmployeeService backed by repo
func NewEmployeeService(repo domain.EmployeeRepository) EmployeeService {
	return &employeeService{repo: repo}
}

// List returns one page of employees. Both page and perPage are required
// query values; an empty string counts as missing.
func (s *employeeService) List(ctx context.Context, page, perPage string) ([]domain.Employee, error) {
	filter, err := ParsePagination(page, perPage)
	if err != nil {
		logger.WarnLog(ctx, "Rejected list request: %v", err)
		return nil, err
	}
	return s.repo.List(ctx, filter)
}

// ParsePagination converts the raw page and per_page query values into a filter.
func ParsePagination(page, perPage string) (domain.EmployeeFilter, error) {
	if page == "" || perPage == "" {
		return domain.EmployeeFilter{}, fmt.Errorf("%w: both page and per_page parameters are required", domain.ErrInvalidRequest)
	}
	p, errPage := strconv.Atoi(page)
	pp, errPerPage := strconv.Atoi(perPage)
	if errPage != nil || errPerPage != nil {
		return domain.EmployeeFilter{}, fmt.Errorf("%w: page and per_page must be integers", domain.ErrInvalidRequest)
	}
	return domain.EmployeeFilter{Page: p, PerPage: pp}, nil
}

func (s *employeeService) Get(ctx context.Context, id int) (*domain.Employee, error) {
	return s.repo.GetByID(ctx, id)
}

// GetSalary projects a single month of an employee. A missing employee is
// ErrNotFound, a missing month on an existing employee is ErrNoDataForMonth.
func (s *employeeService) GetSalary(ctx context.Context, id int, month string) (*domain.SalaryProjection, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	salary, ok := e.Salaries[month]
	if !ok {
		return nil, fmt.Errorf("%w %s", domain.ErrNoDataForMonth, month)
	}

	return &domain.SalaryProjection{
		ID:       e.ID,
		Name:     e.Name,
		Position: e.Position,
		Month:    month,
		Salary:   salary,
	}, nil
}

func (s *employeeService) Create(ctx context.Context, req domain.CreateEmployeeRequest) (*domain.Employee, error) {
	if req.Name == nil || req.Position == nil {
		return nil, fmt.Errorf("%w: name and position are required", domain.ErrInvalidRequest)
	}

	e := &domain.Employee{
		Name:     *req.Name,
		Position: *req.Position,
		Salaries: req.Salaries,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}

	logger.InfoLog(logger.WithEmployee(ctx, e.ID), "Created employee %s", e.Name)
	return e, nil
}

// UpdateSalary upserts one month of salary. Month and salary must both be
// supplied; nothing else on the record changes.
func (s *employeeService) UpdateSalary(ctx context.Context, id int, req domain.UpdateSalaryRequest) (*domain.Employee, error) {
	if req.Month == nil || req.Salary == nil {
		return nil, fmt.Errorf("%w: month and salary are required", domain.ErrInvalidRequest)
	}

	e, err := s.repo.PutSalary(ctx, id, *req.Month, *req.Salary)
	if err != nil {
		return nil, err
	}

	logger.InfoLog(logger.WithEmployee(ctx, id), "Set salary for %s", *req.Month)
	return e, nil
}

func (s *employeeService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logger.InfoLog(logger.WithEmployee(ctx, id), "Deleted employee")
	return nil
}

// Snapshot returns every employee in insertion order.
func (s *employeeService) Snapshot(ctx context.Context) ([]domain.Employee, error) {
	return s.repo.List(ctx, domain.EmployeeFilter{})
}
