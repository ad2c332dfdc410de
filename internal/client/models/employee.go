package models

// Employee links an HR record to an account by email. Dept holds a
// department name, not a key.
type Employee struct {
	Key      string `json:"key"`
	ID       string `json:"id"`
	Email    string `json:"email"`
	Position string `json:"position"`
	Dept     string `json:"dept"`
	HireDate string `json:"hireDate"`
}

type EmployeeInput struct {
	ID       string
	Email    string
	Position string
	Dept     string
	HireDate string
}

// EmployeeView is an employee joined with its account's display name,
// "First Last (email)", or the bare email when the account is gone.
type EmployeeView struct {
	Employee
	DisplayName string
}
