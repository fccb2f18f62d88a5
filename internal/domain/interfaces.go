package domain

import "context"

// EmployeeRepository defines the storage of v2 records
type EmployeeRepository interface {
	Create(ctx context.Context, e *Employee) error
	GetByID(ctx context.Context, id int) (*Employee, error)
	PutSalary(ctx context.Context, id int, month string, salary float64) (*Employee, error)
	Delete(ctx context.Context, id int) error
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, error)
}

// BasicEmployeeRepository defines the storage of v1 records
type BasicEmployeeRepository interface {
	Create(ctx context.Context, e *BasicEmployee) error
	GetByID(ctx context.Context, id int) (*BasicEmployee, error)
	Update(ctx context.Context, id int, patch EmployeePatch) (*BasicEmployee, error)
	Delete(ctx context.Context, id int) error
	List(ctx context.Context) ([]BasicEmployee, error)
}
