package service

import (
	"context"
	"fmt"

	"github.com/locvowork/employee_salary_api/internal/domain"
	"github.com/locvowork/employee_salary_api/internal/logger"
)

// BasicEmployeeService is the v1 API: flat salary, no pagination.
type BasicEmployeeService interface {
	List(ctx context.Context) ([]domain.BasicEmployee, error)
	Get(ctx context.Context, id int) (*domain.BasicEmployee, error)
	Create(ctx context.Context, req domain.CreateBasicEmployeeRequest) (*domain.BasicEmployee, error)
	Update(ctx context.Context, id int, patch domain.EmployeePatch) (*domain.BasicEmployee, error)
	Delete(ctx context.Context, id int) error
}

type basicEmployeeService struct {
	repo domain.BasicEmployeeRepository
}

func NewBasicEmployeeService(repo domain.BasicEmployeeRepository) BasicEmployeeService {
	return &basicEmployeeService{repo: repo}
}

func (s *basicEmployeeService) List(ctx context.Context) ([]domain.BasicEmployee, error) {
	return s.repo.List(ctx)
}

func (s *basicEmployeeService) Get(ctx context.Context, id int) (*domain.BasicEmployee, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *basicEmployeeService) Create(ctx context.Context, req domain.CreateBasicEmployeeRequest) (*domain.BasicEmployee, error) {
	if req.Name == nil || req.Position == nil || req.Salary == nil {
		return nil, fmt.Errorf("%w: name, position and salary are required", domain.ErrInvalidRequest)
	}

	e := &domain.BasicEmployee{
		Name:     *req.Name,
		Position: *req.Position,
		Salary:   *req.Salary,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}

	logger.InfoLog(logger.WithEmployee(ctx, e.ID), "Created employee %s", e.Name)
	return e, nil
}

func (s *basicEmployeeService) Update(ctx context.Context, id int, patch domain.EmployeePatch) (*domain.BasicEmployee, error) {
	e, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	logger.InfoLog(logger.WithEmployee(ctx, id), "Updated employee")
	return e, nil
}

func (s *basicEmployeeService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logger.InfoLog(logger.WithEmployee(ctx, id), "Deleted employee")
	return nil
}
