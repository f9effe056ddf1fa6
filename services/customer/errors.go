package customer

import "errors"

var (
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrExportUnavailable = errors.New("customer export is not available")
	ErrInvalidStatus     = errors.New("status must be all, active or inactive")
)
