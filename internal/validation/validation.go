package validation

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"
)

const (
	FieldFullName  = "full_name"
	FieldMobNum    = "mob_num"
	FieldPanNum    = "pan_num"
	FieldManagerID = "manager_id"

	mobileLength = 10
)

var panPattern = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)

// ValidationError is returned for malformed client input. Its message is safe
// to show to the caller.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewError(msg string) error {
	return &ValidationError{Msg: msg}
}

func errorf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

type CreateInput struct {
	FullName string
	MobNum   string
	PanNum   string
}

// UpdatePayload is the normalized subset of an update request.
// Nil fields were not supplied.
type UpdatePayload struct {
	FullName  *string
	MobNum    *string
	PanNum    *string
	ManagerID *string
}

// Len returns the number of supplied fields.
func (p UpdatePayload) Len() int {
	n := 0
	for _, f := range []*string{p.FullName, p.MobNum, p.PanNum, p.ManagerID} {
		if f != nil {
			n++
		}
	}
	return n
}

func (p UpdatePayload) OnlyManagerID() bool {
	return p.ManagerID != nil && p.Len() == 1
}

func ValidateCreate(fullName, mobNum, panNum string) (CreateInput, error) {
	name, err := FullName(fullName)
	if err != nil {
		return CreateInput{}, err
	}

	mob, err := MobileNumber(mobNum)
	if err != nil {
		return CreateInput{}, err
	}

	pan, err := PAN(panNum)
	if err != nil {
		return CreateInput{}, err
	}

	return CreateInput{FullName: name, MobNum: mob, PanNum: pan}, nil
}

func ValidateUpdatePayload(fields map[string]any) (UpdatePayload, error) {
	var p UpdatePayload

	// sorted so the first reported problem is stable
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		raw, ok := fields[key].(string)
		switch key {
		case FieldFullName, FieldMobNum, FieldPanNum, FieldManagerID:
			if !ok {
				return UpdatePayload{}, errorf("field '%s' must be a string", key)
			}
		default:
			return UpdatePayload{}, errorf("invalid field in update_data: '%s'", key)
		}

		switch key {
		case FieldFullName:
			name, err := FullName(raw)
			if err != nil {
				return UpdatePayload{}, err
			}
			p.FullName = &name
		case FieldMobNum:
			mob, err := MobileNumber(raw)
			if err != nil {
				return UpdatePayload{}, err
			}
			p.MobNum = &mob
		case FieldPanNum:
			pan, err := PAN(raw)
			if err != nil {
				return UpdatePayload{}, err
			}
			p.PanNum = &pan
		case FieldManagerID:
			id := strings.TrimSpace(raw)
			if id == "" {
				return UpdatePayload{}, errorf("field '%s' must not be empty", FieldManagerID)
			}
			p.ManagerID = &id
		}
	}

	if p.Len() == 0 {
		return UpdatePayload{}, errorf("update_data must contain at least one of: %s, %s, %s, %s",
			FieldFullName, FieldMobNum, FieldPanNum, FieldManagerID)
	}

	return p, nil
}

func FullName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", errorf("full_name must not be empty")
	}
	return name, nil
}

// MobileNumber keeps the digits of raw and returns the last ten of them.
// "+91-98765-43210" becomes "9876543210".
func MobileNumber(raw string) (string, error) {
	digits := onlyDigits(raw)
	if len(digits) > mobileLength {
		digits = digits[len(digits)-mobileLength:]
	}
	if len(digits) != mobileLength {
		return "", errorf("mob_num must contain %d digits", mobileLength)
	}
	return digits, nil
}

// MobileSuffix normalizes a mobile number used as a lookup key. Unlike
// MobileNumber it accepts fewer than ten digits.
func MobileSuffix(raw string) (string, error) {
	digits := onlyDigits(raw)
	if digits == "" {
		return "", errorf("mob_num must contain digits")
	}
	if len(digits) > mobileLength {
		digits = digits[len(digits)-mobileLength:]
	}
	return digits, nil
}

func PAN(raw string) (string, error) {
	pan := strings.ToUpper(strings.TrimSpace(raw))
	if !panPattern.MatchString(pan) {
		return "", errorf("pan_num must match the format AAAAA9999A")
	}
	return pan, nil
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r <= unicode.MaxASCII && unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
