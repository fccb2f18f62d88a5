package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/locvowork/employee_salary_api/internal/domain"
	"github.com/locvowork/employee_salary_api/internal/service"
	"github.com/locvowork/employee_salary_api/internal/service/serviceutils"
)

// BasicEmployeeHandler serves the v1 API.
type BasicEmployeeHandler struct {
	svc service.BasicEmployeeService
}

func NewBasicEmployeeHandler(svc service.BasicEmployeeService) *BasicEmployeeHandler {
	return &BasicEmployeeHandler{svc: svc}
}

func (h *BasicEmployeeHandler) ListHandler(c echo.Context) error {
	employees, err := h.svc.List(c.Request().Context())
	if err != nil {
		return serviceutils.ResponseFromError(c, err, "Failed to list employees")
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, employees)
}

func (h *BasicEmployeeHandler) GetHandler(c echo.Context) error {
	id, err := employeeID(c)
	if err != nil {
		return serviceutils.ResponseFromError(c, err, "Failed to get employee")
	}

	emp, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return serviceutils.ResponseFromError(c, err, "Failed to get employee")
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, emp)
}

func (h *BasicEmployeeHandler) CreateHandler(c echo.Context) error {
	var req domain.CreateBasicEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, serviceutils.CodeInvalidRequest, "Invalid request body", err)
	}

	emp, err := h.svc.Create(c.Request().Context(), req)
	if err != nil {
		return serviceutils.ResponseFromError(c, err, "Failed to create employee")
	}
	return serviceutils.ResponseSuccess(c, http.StatusCreated, emp)
}

// UpdateHandler merges name, position and salary when present in the body.
func (h *BasicEmployeeHandler) UpdateHandler(c echo.Context) error {
	id, err := employeeID(c)
	if err != nil {
		return serviceutils.ResponseFromError(c, err, "Failed to update employee")
	}

	var patch domain.EmployeePatch
	if err := c.Bind(&patch); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, serviceutils.CodeInvalidRequest, "Invalid request body", err)
	}

	emp, err := h.svc.Update(c.Request().Context(), id, patch)
	if err != nil {
		return serviceutils.ResponseFromError(c, err, "Failed to update employee")
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, emp)
}

func (h *BasicEmployeeHandler) DeleteHandler(c echo.Context) error {
	id, err := employeeID(c)
	if err != nil {
		return serviceutils.ResponseFromError(c, err, "Failed to delete employee")
	}

	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return serviceutils.ResponseFromError(c, err, "Failed to delete employee")
	}
	return serviceutils.ResponseMessage(c, http.StatusOK, "Employee deleted successfully")
}
