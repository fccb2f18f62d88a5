package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/locvowork/employee_salary_api/internal/domain"
)

// employeeRepository keeps v2 records in insertion order.
// Lookup is a linear scan by id.
type employeeRepository struct {
	mu      sync.RWMutex
	records []domain.Employee
}

// NewEmployeeRepository creates an empty in-memory EmployeeRepository
func NewEmployeeRepository() domain.EmployeeRepository {
	return &employeeRepository{}
}

func (r *employeeRepository) Create(ctx context.Context, e *domain.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e.ID = nextID(r.records, func(rec domain.Employee) int { return rec.ID })
	if e.Salaries == nil {
		e.Salaries = make(map[string]float64)
	}
	r.records = append(r.records, e.Clone())
	return nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id int) (*domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: id %d", domain.ErrNotFound, id)
	}
	e := r.records[i].Clone()
	return &e, nil
}

func (r *employeeRepository) PutSalary(ctx context.Context, id int, month string, salary float64) (*domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: id %d", domain.ErrNotFound, id)
	}
	if r.records[i].Salaries == nil {
		r.records[i].Salaries = make(map[string]float64)
	}
	r.records[i].Salaries[month] = salary

	e := r.records[i].Clone()
	return &e, nil
}

func (r *employeeRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: id %d", domain.ErrNotFound, id)
	}
	r.records = append(r.records[:i], r.records[i+1:]...)
	return nil
}

func (r *employeeRepository) List(ctx context.Context, filter domain.EmployeeFilter) ([]domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	start, end := 0, len(r.records)
	if !filter.IsZero() {
		start, end = pageWindow(len(r.records), filter.Page, filter.PerPage)
	}

	employees := make([]domain.Employee, 0, end-start)
	for _, rec := range r.records[start:end] {
		employees = append(employees, rec.Clone())
	}
	return employees, nil
}

func (r *employeeRepository) indexOf(id int) int {
	for i := range r.records {
		if r.records[i].ID == id {
			return i
		}
	}
	return -1
}
