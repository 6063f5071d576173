// Package error defines domain-specific errors for the bookkeeping application.
package error

import "errors"

// Payroll domain errors.
var (
	// ErrPayrollEntryNotFound is returned when a payroll entry is not found in the system.
	ErrPayrollEntryNotFound = errors.New("payroll entry not found")

	// ErrInvalidEmploymentStatus is returned when the employment status is not a known value.
	ErrInvalidEmploymentStatus = errors.New("invalid employment status")

	// ErrMissingEmployeeName is returned when the employee name is empty.
	ErrMissingEmployeeName = errors.New("employee name is required")

	// ErrNegativePayrollComponent is returned when an income or deduction component is negative.
	ErrNegativePayrollComponent = errors.New("payroll components must be non-negative")
)

// PayrollErrorCode defines error codes for payroll errors.
// Format: PAY-XXYYYY where XX is category and YYYY is specific error.
type PayrollErrorCode string

const (
	ErrCodePayrollEntryNotFound     PayrollErrorCode = "PAY-010001"
	ErrCodeInvalidEmploymentStatus  PayrollErrorCode = "PAY-010002"
	ErrCodeMissingEmployeeName      PayrollErrorCode = "PAY-010003"
	ErrCodeNegativePayrollComponent PayrollErrorCode = "PAY-010004"
	ErrCodeMissingPayrollFields     PayrollErrorCode = "PAY-010005"
)

// PayrollError represents a payroll error with code and message.
type PayrollError struct {
	Code    PayrollErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PayrollError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PayrollError) Unwrap() error {
	return e.Err
}

// NewPayrollError creates a new PayrollError with the given code and message.
func NewPayrollError(code PayrollErrorCode, message string, err error) *PayrollError {
	return &PayrollError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
