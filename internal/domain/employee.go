package domain

// EmploymentStatus enumerates the employment states found in source data.
type EmploymentStatus string

const (
	EmploymentStatusActive   EmploymentStatus = "ACTIVE"
	EmploymentStatusResigned EmploymentStatus = "RESIGNED"
	EmploymentStatusUnknown  EmploymentStatus = "UNKNOWN"
)

// Label returns the human-facing status text.
func (s EmploymentStatus) Label() string {
	switch s {
	case EmploymentStatusActive:
		return "Active"
	case EmploymentStatusResigned:
		return "Resigned"
	default:
		return "Unknown"
	}
}

// Employee is one row of an uploaded roster.
type Employee struct {
	Name             string           `json:"name"`
	EmployeeID       string           `json:"employee_id"`
	Status           EmploymentStatus `json:"status"`
	RawStatus        string           `json:"raw_status"`
	EmploymentType   string           `json:"employment_type"`
	Title            string           `json:"title"`
	Grade            string           `json:"grade"`
	Organization     string           `json:"organization"`
	Department       string           `json:"department"`
	Phone            string           `json:"phone"`
	Email            string           `json:"email"`
	HireDate         Date             `json:"hire_date"`
	ResignationDate  Date             `json:"resignation_date"`
	ResignationRoute string           `json:"resignation_route"`
}

// IsActive reports whether the employee is currently employed.
func (e Employee) IsActive() bool {
	return e.Status == EmploymentStatusActive
}

// IsResigned reports whether the employee has left.
func (e Employee) IsResigned() bool {
	return e.Status == EmploymentStatusResigned
}
