package models

// State is the whole persisted data set. Its JSON form is an object with
// exactly these four arrays.
type State struct {
	Accounts    []Account    `json:"accounts"`
	Departments []Department `json:"departments"`
	Employees   []Employee   `json:"employees"`
	Requests    []Request    `json:"requests"`
}

// Collections lists the JSON names every stored blob must carry.
var Collections = []string{"accounts", "departments", "employees", "requests"}

// Clone deep-copies s. Nil collections come back as empty slices so the
// blob never encodes them as null.
func (s State) Clone() State {
	out := State{
		Accounts:    append(make([]Account, 0, len(s.Accounts)), s.Accounts...),
		Departments: append(make([]Department, 0, len(s.Departments)), s.Departments...),
		Employees:   append(make([]Employee, 0, len(s.Employees)), s.Employees...),
		Requests:    make([]Request, 0, len(s.Requests)),
	}
	for _, r := range s.Requests {
		out.Requests = append(out.Requests, r.Clone())
	}
	return out
}

