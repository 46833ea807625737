package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail     = errors.New("invalid email")
	ErrEmptyPassword    = errors.New("password is required")
	ErrInvalidRole      = errors.New("invalid role")
	ErrTooLong          = errors.New("value is too long")
	ErrBlankName        = errors.New("name cannot be blank")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
	ErrInvalidSessionID = errors.New("invalid session ID")
	ErrEmptyPunchType   = errors.New("punch type is required")
	ErrInvalidSpeed     = errors.New("speed must be a non-negative number")
	ErrInvalidCount     = errors.New("count must not be negative")

	ErrInvalidInviteCode = errors.New("invite code must be 8 letters or digits")
)
