package reservation

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Field names a draft field for the generic change handler.
type Field string

const (
	FieldDate      Field = "date"
	FieldTime      Field = "time"
	FieldPartySize Field = "party_size"
	FieldName      Field = "name"
	FieldEmail     Field = "email"
	FieldPhone     Field = "phone"
)

// Draft is the in-progress, not yet submitted reservation. The zero value is an
// empty draft. The required tags are the step guards.
type Draft struct {
	Date      *time.Time `validate:"required"`
	Time      TimeSlot   `validate:"required"`
	PartySize PartySize  `validate:"required"`
	Name      string     `validate:"required"`
	Email     string     `validate:"required"`
	Phone     string     `validate:"required"`
}

// stepFields lists, per step, the struct fields its guard requires.
var stepFields = map[Step][]string{
	StepDate:         {"Date"},
	StepTimeAndParty: {"Time", "PartySize"},
	StepContact:      {"Name", "Email", "Phone"},
}

// fieldSteps maps each editable field to the step that owns it.
var fieldSteps = map[Field]Step{
	FieldDate:      StepDate,
	FieldTime:      StepTimeAndParty,
	FieldPartySize: StepTimeAndParty,
	FieldName:      StepContact,
	FieldEmail:     StepContact,
	FieldPhone:     StepContact,
}

var guards = validator.New(validator.WithRequiredStructEnabled())

// Satisfies reports whether the draft holds everything step's guard requires.
// The confirmation step has no guard.
func (d Draft) Satisfies(step Step) bool {
	fields, ok := stepFields[step]
	if !ok {
		return true
	}
	return guards.StructPartial(d, fields...) == nil
}

// ParseField resolves a form field name.
func ParseField(s string) (Field, error) {
	f := Field(s)
	if _, ok := fieldSteps[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
	}
	return f, nil
}

// StepOf returns the step whose form owns the field.
func (f Field) StepOf() Step {
	return fieldSteps[f]
}

// apply sets one field from its wire value. An empty value clears the field.
// On error the draft is left untouched.
func (d *Draft) apply(cal Calendar, field Field, value string) error {
	switch field {
	case FieldDate:
		if value == "" {
			d.Date = nil
			return nil
		}
		date, err := cal.Parse(value)
		if err != nil {
			return err
		}
		d.Date = &date
	case FieldTime:
		if value == "" {
			d.Time = ""
			return nil
		}
		slot, err := ParseTimeSlot(value)
		if err != nil {
			return err
		}
		d.Time = slot
	case FieldPartySize:
		if value == "" {
			d.PartySize = 0
			return nil
		}
		size, err := ParsePartySize(value)
		if err != nil {
			return err
		}
		d.PartySize = size
	case FieldName:
		d.Name = value
	case FieldEmail:
		d.Email = value
	case FieldPhone:
		d.Phone = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, string(field))
	}
	return nil
}

// Value returns the wire value of a field, as the form would post it back.
func (d Draft) Value(field Field) string {
	switch field {
	case FieldDate:
		if d.Date == nil {
			return ""
		}
		return d.Date.Format(DateLayout)
	case FieldTime:
		return string(d.Time)
	case FieldPartySize:
		if d.PartySize == 0 {
			return ""
		}
		return d.PartySize.String()
	case FieldName:
		return d.Name
	case FieldEmail:
		return d.Email
	case FieldPhone:
		return d.Phone
	}
	return ""
}

// clone returns a copy that shares no memory with d.
func (d Draft) clone() Draft {
	if d.Date != nil {
		date := *d.Date
		d.Date = &date
	}
	return d
}
