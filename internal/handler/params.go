package handler

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/locvowork/employee_salary_api/internal/domain"
)

// employeeID reads the :id path segment. Only unsigned decimal ids can name
// an employee, so anything else is domain.ErrNotFound.
func employeeID(c echo.Context) (int, error) {
	raw := c.Param("id")
	id, err := strconv.Atoi(raw)
	if err != nil || raw == "" || raw[0] < '0' || raw[0] > '9' {
		return 0, fmt.Errorf("%w: id %q", domain.ErrNotFound, raw)
	}
	return id, nil
}
