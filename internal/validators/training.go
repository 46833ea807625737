package validators

import (
	"context"
	"math"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-punch-tracker/models"
)

// Field names accepted by [TrainingValidator.Validate].
const (
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldRole      = "role"
	FieldUsername  = "username"
	FieldName      = "name"
	FieldUpdate    = "update"
	FieldSessionID = "session_id"
	FieldPunchType = "punch_type"
	FieldSpeed     = "speed"
	FieldCount     = "count"
	FieldNotes     = "notes"

	FieldAthleteEmail = "athlete_email"
	FieldInviteCode   = "invite_code"
)

// Length limits, in runes.
const (
	MaxUsernameLength  = 64
	MaxNameLength      = 100
	MaxPunchTypeLength = 32
	MaxNotesLength     = 500
)

// TrainingValidator validates the payloads of the training API: User,
// Credentials, SessionCreate, SessionUpdate, PunchCreate, CoachInvite and
// InviteAccept, by value or by pointer.
type TrainingValidator struct{}

func NewTrainingValidator() Validator {
	return &TrainingValidator{}
}

func (v *TrainingValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		return v.validateUser(*value, fields...)

	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.SessionCreate:
		return v.validateSessionCreate(value, fields...)
	case *models.SessionCreate:
		return v.validateSessionCreate(*value, fields...)

	case models.SessionUpdate:
		return v.validateSessionUpdate(value, fields...)
	case *models.SessionUpdate:
		return v.validateSessionUpdate(*value, fields...)

	case models.PunchCreate:
		return v.validatePunchCreate(value, fields...)
	case *models.PunchCreate:
		return v.validatePunchCreate(*value, fields...)

	case models.CoachInvite:
		return v.validateCoachInvite(value, fields...)
	case *models.CoachInvite:
		return v.validateCoachInvite(*value, fields...)

	case models.InviteAccept:
		return v.validateInviteAccept(value, fields...)
	case *models.InviteAccept:
		return v.validateInviteAccept(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *TrainingValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldRole, FieldUsername}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isEmail(user.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
		case FieldRole:
			// empty means the default role
			if user.Role != "" && user.Role != models.RoleAthlete && user.Role != models.RoleCoach {
				return ErrInvalidRole
			}
		case FieldUsername:
			if utf8.RuneCountInString(user.Username) > MaxUsernameLength {
				return ErrTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *TrainingValidator) validateCredentials(creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if strings.TrimSpace(creds.Email) == "" {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *TrainingValidator) validateSessionCreate(req models.SessionCreate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if utf8.RuneCountInString(req.Name) > MaxNameLength {
				return ErrTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *TrainingValidator) validateSessionUpdate(update models.SessionUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUpdate, FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldUpdate:
			if update.Name == nil && update.EndedAt == nil {
				return ErrNoFieldsToUpdate
			}
		case FieldName:
			if update.Name == nil {
				continue
			}
			if strings.TrimSpace(*update.Name) == "" {
				return ErrBlankName
			}
			if utf8.RuneCountInString(*update.Name) > MaxNameLength {
				return ErrTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *TrainingValidator) validatePunchCreate(req models.PunchCreate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSessionID, FieldPunchType, FieldSpeed, FieldCount, FieldNotes}
	}

	for _, f := range fields {
		switch f {
		case FieldSessionID:
			if req.SessionID <= 0 {
				return ErrInvalidSessionID
			}
		case FieldPunchType:
			punchType := strings.TrimSpace(req.PunchType)
			if punchType == "" {
				return ErrEmptyPunchType
			}
			if utf8.RuneCountInString(punchType) > MaxPunchTypeLength {
				return ErrTooLong
			}
		case FieldSpeed:
			if req.Speed < 0 || math.IsNaN(req.Speed) || math.IsInf(req.Speed, 0) {
				return ErrInvalidSpeed
			}
		case FieldCount:
			if req.Count < 0 {
				return ErrInvalidCount
			}
		case FieldNotes:
			if utf8.RuneCountInString(req.Notes) > MaxNotesLength {
				return ErrTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *TrainingValidator) validateCoachInvite(invite models.CoachInvite, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAthleteEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldAthleteEmail:
			if !isEmail(invite.AthleteEmail) {
				return ErrInvalidEmail
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *TrainingValidator) validateInviteAccept(accept models.InviteAccept, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldInviteCode}
	}

	for _, f := range fields {
		switch f {
		case FieldInviteCode:
			code := strings.TrimSpace(accept.InviteCode)
			if len(code) != models.InviteCodeLength || strings.IndexFunc(code, notAlphanumeric) >= 0 {
				return ErrInvalidInviteCode
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func notAlphanumeric(r rune) bool {
	return !('0' <= r && r <= '9' || 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z')
}

func isEmail(s string) bool {
	addr, err := mail.ParseAddress(strings.TrimSpace(s))
	return err == nil && addr.Name == ""
}
