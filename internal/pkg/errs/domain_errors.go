package errs

import "errors"

// Sentinel errors shared across usecase layers
var (
	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrInvalidDateRange    = errors.New("invalid date range")
	ErrFieldLocked         = errors.New("field locked by reservation status")
	ErrInvalidTransition   = errors.New("invalid status transition")

	// Order / POS errors
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderNotOpen       = errors.New("order is not open")
	ErrInsufficientTender = errors.New("tendered amount below total")
	ErrEmptyOrder         = errors.New("order has no lines")

	// Catalog errors
	ErrHotelNotFound      = errors.New("hotel not found")
	ErrRoomNotFound       = errors.New("room not found")
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrMenuItemNotFound   = errors.New("menu item not found")
	ErrDepartmentNotFound = errors.New("department not found")
	ErrStaffNotFound      = errors.New("staff member not found")
	ErrAgentNotFound      = errors.New("agent not found")

	// Finance errors
	ErrTransactionNotFound = errors.New("transaction not found")

	// Auth errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user is inactive")

	// Validation errors
	ErrDomainValidationFailed = errors.New("domain validation failed")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
