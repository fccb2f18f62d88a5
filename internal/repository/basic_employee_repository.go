package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/locvowork/employee_salary_api/internal/domain"
)

type basicEmployeeRepository struct {
	mu      sync.RWMutex
	records []domain.BasicEmployee
}

// NewBasicEmployeeRepository creates an empty in-memory BasicEmployeeRepository
func NewBasicEmployeeRepository() domain.BasicEmployeeRepository {
	return &basicEmployeeRepository{}
}

func (r *basicEmployeeRepository) Create(ctx context.Context, e *domain.BasicEmployee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e.ID = nextID(r.records, func(rec domain.BasicEmployee) int { return rec.ID })
	r.records = append(r.records, *e)
	return nil
}

func (r *basicEmployeeRepository) GetByID(ctx context.Context, id int) (*domain.BasicEmployee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: id %d", domain.ErrNotFound, id)
	}
	e := r.records[i]
	return &e, nil
}

func (r *basicEmployeeRepository) Update(ctx context.Context, id int, patch domain.EmployeePatch) (*domain.BasicEmployee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: id %d", domain.ErrNotFound, id)
	}
	patch.Apply(&r.records[i])

	e := r.records[i]
	return &e, nil
}

func (r *basicEmployeeRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: id %d", domain.ErrNotFound, id)
	}
	r.records = append(r.records[:i], r.records[i+1:]...)
	return nil
}

func (r *basicEmployeeRepository) List(ctx context.Context) ([]domain.BasicEmployee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	employees := make([]domain.BasicEmployee, len(r.records))
	copy(employees, r.records)
	return employees, nil
}

func (r *basicEmployeeRepository) indexOf(id int) int {
	for i := range r.records {
		if r.records[i].ID == id {
			return i
		}
	}
	return -1
}
