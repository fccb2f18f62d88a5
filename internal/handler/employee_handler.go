package handler

import (
	"bytes"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/locvowork/employee_salary_api/internal/domain"
	"github.com/locvowork/employee_salary_api/internal/service"
	"github.com/locvowork/employee_salary_api/internal/service/serviceutils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// EmployeeHandler serves the v2 API.
type EmployeeHandler struct {
	svc     service.EmployeeService
	reports *service.ReportService
}

func NewEmployeeHandler(svc service.EmployeeService, reports *service.ReportService) *EmployeeHandler {
	return &EmployeeHandler{svc: svc, reports: reports}
}

// ListHandler requires both page and per_page query parameters.
func (h *EmployeeHandler) ListHandler(c echo.Context) error {
	employees, err := h.svc.List(c.Request().Context(), c.QueryParam("page"), c.QueryParam("per_page"))
	if err != nil {
		return serviceutils.ResponseFromError(c, err, "Failed to list employees")
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, employees)
}

// GetHandler returns the full record, or the salary projection when ?month= is set.
func (h *EmployeeHandler) GetHandler(c echo.Context) error {
	id, err := employeeID(c)
	if err != nil {
		return serviceutils.ResponseFromError(c, err, "Failed to get employee")
	}

	ctx := c.Request().Context()
	if month := c.QueryParam("month"); month != "" {
		projection, err := h.svc.GetSalary(ctx, id, month)
		if err != nil {
			return serviceutils.ResponseFromError(c, err, "Failed to get salary")
		}
		return serviceutils.ResponseSuccess(c, http.StatusOK, projection)
	}

	emp, err := h.svc.Get(ctx, id)
	if err != nil {
		return serviceutils.ResponseFromError(c, err, "Failed to get employee")
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, emp)
}

func (h *EmployeeHandler) CreateHandler(c echo.Context) error {
	var req domain.CreateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, serviceutils.CodeInvalidRequest, "Invalid request body", err)
	}

	emp, err := h.svc.Create(c.Request().Context(), req)
	if err != nil {
		return serviceutils.ResponseFromError(c, err, "Failed to create employee")
	}
	return serviceutils.ResponseSuccess(c, http.StatusCreated, emp)
}

// UpdateHandler upserts one month of salary: {"month": "2024-12", "salary": 62000}.
func (h *EmployeeHandler) UpdateHandler(c echo.Context) error {
	id, err := employeeID(c)
	if err != nil {
		return serviceutils.ResponseFromError(c, err, "Failed to update employee")
	}

	var req domain.UpdateSalaryRequest
	if err := c.Bind(&req); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, serviceutils.CodeInvalidRequest, "Invalid request body", err)
	}

	emp, err := h.svc.UpdateSalary(c.Request().Context(), id, req)
	if err != nil {
		return serviceutils.ResponseFromError(c, err, "Failed to update employee")
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, emp)
}

func (h *EmployeeHandler) DeleteHandler(c echo.Context) error {
	id, err := employeeID(c)
	if err != nil {
		return serviceutils.ResponseFromError(c, err, "Failed to delete employee")
	}

	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return serviceutils.ResponseFromError(c, err, "Failed to delete employee")
	}
	return serviceutils.ResponseMessage(c, http.StatusOK, "Employee deleted successfully")
}

// ExportHandler downloads every employee and their monthly salaries as xlsx.
func (h *EmployeeHandler) ExportHandler(c echo.Context) error {
	buf := new(bytes.Buffer)
	if err := h.reports.SalaryReport(c.Request().Context(), buf); err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, serviceutils.CodeInternal, "Failed to generate Excel file", err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="employee_salaries.xlsx"`)
	return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}
