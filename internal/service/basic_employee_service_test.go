package service

import (
	"context"
	"testing"

	"github.com/locvowork/employee_salary_api/internal/domain"
	"github.com/locvowork/employee_salary_api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicEmployeeService_CreateRequiresAllFields(t *testing.T) {
	svc := NewBasicEmployeeService(repository.NewBasicEmployeeRepository())
	ctx := context.Background()

	testCases := map[string]domain.CreateBasicEmployeeRequest{
		"missing salary":   {Name: strPtr("John Doe"), Position: strPtr("Developer")},
		"missing name":     {Position: strPtr("Developer"), Salary: floatPtr(1)},
		"missing position": {Name: strPtr("John Doe"), Salary: floatPtr(1)},
	}
	for name, req := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Create(ctx, req)
			assert.ErrorIs(t, err, domain.ErrInvalidRequest)
		})
	}

	e, err := svc.Create(ctx, domain.CreateBasicEmployeeRequest{Name: strPtr("John Doe"), Position: strPtr("Developer"), Salary: floatPtr(60000)})
	require.NoError(t, err)
	assert.Equal(t, domain.BasicEmployee{ID: 1, Name: "John Doe", Position: "Developer", Salary: 60000}, *e)
}

func TestBasicEmployeeService_UpdateAndDelete(t *testing.T) {
	svc := NewBasicEmployeeService(repository.NewBasicEmployeeRepository())
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateBasicEmployeeRequest{Name: strPtr("Jane Smith"), Position: strPtr("Manager"), Salary: floatPtr(80000)})
	require.NoError(t, err)

	same, err := svc.Update(ctx, 1, domain.EmployeePatch{})
	require.NoError(t, err)
	assert.Equal(t, domain.BasicEmployee{ID: 1, Name: "Jane Smith", Position: "Manager", Salary: 80000}, *same)

	raised, err := svc.Update(ctx, 1, domain.EmployeePatch{Salary: floatPtr(85000)})
	require.NoError(t, err)
	assert.Equal(t, 85000.0, raised.Salary)
	assert.Equal(t, "Manager", raised.Position)

	require.NoError(t, svc.Delete(ctx, 1))
	_, err = svc.Get(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
