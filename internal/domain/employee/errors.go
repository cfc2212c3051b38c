package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeCodeExists = errors.New("employee code already exists")
	ErrMemberCardExists   = errors.New("member card already registered")
	ErrEmailExists        = errors.New("email already registered")
	ErrUnknownDepartment  = errors.New("unknown department")
)
