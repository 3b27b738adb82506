package employee

import "context"

type EmployeeRepository interface {
	// GetByID retrieves an employee by ID
	GetByID(ctx context.Context, id string) (Employee, error)

	// List retrieves employees, optionally restricted to active ones
	List(ctx context.Context, activeOnly bool) ([]Employee, error)
}
