package services

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAdminOnly          = errors.New("only admins can log in here")
	ErrForbidden          = errors.New("admins cannot modify other admins")
	ErrUserNotFound       = errors.New("user not found")
	ErrUnknownPlanType    = errors.New("unknown plan type")
	ErrUpstream           = errors.New("plan generation service unavailable")
)
