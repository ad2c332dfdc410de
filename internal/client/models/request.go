package models

import "time"

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// Display returns the status to show; a blank status reads as Pending.
func (s Status) Display() Status {
	if s == "" {
		return StatusPending
	}
	return s
}

type RequestItem struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

type Request struct {
	Key           string        `json:"key"`
	EmployeeEmail string        `json:"employeeEmail"`
	Type          string        `json:"type"`
	Items         []RequestItem `json:"items"`
	Status        Status        `json:"status"`
	Date          time.Time     `json:"date"`
}

// Clone returns a copy that shares no item storage with r.
func (r Request) Clone() Request {
	r.Items = append([]RequestItem(nil), r.Items...)
	return r
}
