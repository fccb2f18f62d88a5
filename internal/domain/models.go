package domain

// ==================== V2: MONTHLY SALARIES ====================

// Employee is a record of the v2 store. Salaries is keyed by month, e.g. "2024-12".
type Employee struct {
	ID       int                `json:"id"`
	Name     string             `json:"name"`
	Position string             `json:"position"`
	Salaries map[string]float64 `json:"salaries"`
}

// Clone returns a copy that shares no memory with e.
func (e Employee) Clone() Employee {
	out := e
	out.Salaries = make(map[string]float64, len(e.Salaries))
	for month, salary := range e.Salaries {
		out.Salaries[month] = salary
	}
	return out
}

// SalaryProjection is the month-scoped view of an Employee.
type SalaryProjection struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Position string  `json:"position"`
	Month    string  `json:"month"`
	Salary   float64 `json:"salary"`
}

// CreateEmployeeRequest is the v2 create payload. Any client-supplied id is ignored.
type CreateEmployeeRequest struct {
	Name     *string            `json:"name"`
	Position *string            `json:"position"`
	Salaries map[string]float64 `json:"salaries"`
}

// UpdateSalaryRequest is the v2 update payload: a single month upsert.
type UpdateSalaryRequest struct {
	Month  *string  `json:"month"`
	Salary *float64 `json:"salary"`
}

// EmployeeFilter selects a window of the v2 store. The zero value selects everything.
type EmployeeFilter struct {
	Page    int
	PerPage int
}

// IsZero reports whether no pagination was requested.
func (f EmployeeFilter) IsZero() bool {
	return f.Page == 0 && f.PerPage == 0
}

// ==================== V1: FLAT SALARY ====================

// BasicEmployee is a record of the v1 store.
type BasicEmployee struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Position string  `json:"position"`
	Salary   float64 `json:"salary"`
}

// CreateBasicEmployeeRequest is the v1 create payload.
type CreateBasicEmployeeRequest struct {
	Name     *string  `json:"name"`
	Position *string  `json:"position"`
	Salary   *float64 `json:"salary"`
}

// EmployeePatch is the v1 partial update. Nil fields keep their current value.
type EmployeePatch struct {
	Name     *string  `json:"name"`
	Position *string  `json:"position"`
	Salary   *float64 `json:"salary"`
}

// Apply merges the supplied fields into e.
func (p EmployeePatch) Apply(e *BasicEmployee) {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Position != nil {
		e.Position = *p.Position
	}
	if p.Salary != nil {
		e.Salary = *p.Salary
	}
}
