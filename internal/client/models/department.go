package models

type Department struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type DepartmentInput struct {
	Name        string
	Description string
}
