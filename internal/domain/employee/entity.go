package employee

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Role is the employee's application role.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

type Employee struct {
	ID            string
	FullName      string
	EmployeeCode  string
	Department    string
	Role          Role
	AccessPointID *string
	Email         string
	Password      string
	Phone         string
	IsActive      bool
	MemberCard    string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DepartmentRouting maps a department name to the code of the access point
// its badges are provisioned for. It is built from configuration and passed
// to the employee service; there is deliberately no package-level default.
type DepartmentRouting map[string]string

// Resolve returns the access point code for a department. The error for an
// unknown department names the valid ones so a misconfigured client can see
// what the routing table actually carries.
func (r DepartmentRouting) Resolve(department string) (string, error) {
	code, ok := r[department]
	if !ok {
		return "", fmt.Errorf("%w: %s (valid: %s)", ErrUnknownDepartment, department, strings.Join(r.Departments(), ", "))
	}
	return code, nil
}

// Departments lists the valid department names, sorted.
func (r DepartmentRouting) Departments() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
