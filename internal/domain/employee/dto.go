package employee

import "github.com/shopspring/decimal"

type EmployeeResponse struct {
	ID        string          `json:"id"`
	FullName  string          `json:"full_name"`
	Document  string          `json:"document"`
	Site      string          `json:"site"`
	RoleLabel string          `json:"role_label"`
	DailyWage decimal.Decimal `json:"daily_wage"`
	Active    bool            `json:"active"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:        e.ID,
		FullName:  e.FullName,
		Document:  e.Document,
		Site:      e.Site,
		RoleLabel: e.RoleLabel,
		DailyWage: e.DailyWage,
		Active:    e.Active,
	}
}
