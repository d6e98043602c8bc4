package models

import (
	"strconv"
	"strings"

	"cbrarecords/internal/apperr"
)

func allDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// ValidateDOB checks for an 8-digit DDMMYYYY value.
func ValidateDOB(s string) error {
	if len(s) != 8 || !allDigits(s) {
		return apperr.New(apperr.KindInvalidFormat, "date of birth must be 8 digits (DDMMYYYY)")
	}
	return nil
}

// FormatDOB turns DDMMYYYY into DD-MM-YYYY. Invalid input is returned as is.
func FormatDOB(s string) string {
	if ValidateDOB(s) != nil {
		return s
	}
	return s[0:2] + "-" + s[2:4] + "-" + s[4:8]
}

// ValidateCNIC checks for a 13-digit CNIC/B-Form number.
func ValidateCNIC(s string) error {
	if len(s) != 13 || !allDigits(s) {
		return apperr.New(apperr.KindInvalidFormat, "CNIC/B-Form must be 13 digits")
	}
	return nil
}

// FormatCNIC turns 13 digits into XXXXX-XXXXXXX-X. Invalid input is returned
// as is.
func FormatCNIC(s string) string {
	if ValidateCNIC(s) != nil {
		return s
	}
	return s[0:5] + "-" + s[5:12] + "-" + s[12:13]
}

// ParseYear parses a year in [1900, 2100].
func ParseYear(s string) (int, error) {
	y, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, apperr.Wrap(apperr.KindInvalidFormat, err, "invalid year %q", s)
	}
	if y < 1900 || y > 2100 {
		return 0, apperr.New(apperr.KindOutOfRange, "year must be between 1900-2100")
	}
	return y, nil
}

// ParseClass parses a class number in [1, 12].
func ParseClass(s string) (int, error) {
	c, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, apperr.Wrap(apperr.KindInvalidFormat, err, "invalid class %q", s)
	}
	if c < MinClass || c > MaxClass {
		return 0, apperr.New(apperr.KindOutOfRange, "class must be between %d-%d", MinClass, MaxClass)
	}
	return c, nil
}

// ParseTerms parses a completed-terms count in [0, 3].
func ParseTerms(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, apperr.Wrap(apperr.KindInvalidFormat, err, "invalid terms %q", s)
	}
	if n < 0 || n > MaxTerms {
		return 0, apperr.New(apperr.KindOutOfRange, "terms must be between 0 and %d", MaxTerms)
	}
	return n, nil
}

// ParseMarkStatus parses operator input: A, L, - or a number in [0, max].
func ParseMarkStatus(s string, max float64) (MarkStatus, error) {
	s = strings.TrimSpace(s)
	status, err := DecodeMarkStatus(strings.ToUpper(s))
	if err != nil {
		return MarkStatus{}, err
	}
	if status.IsNumeric() && (status.Value < 0 || status.Value > max) {
		return MarkStatus{}, apperr.New(apperr.KindOutOfRange, "marks must be between 0-%g", max)
	}
	return status, nil
}

// ValidateText rejects values that would split a records file line. Commas
// and colons only separate the subject and attendance lists, so they are
// allowed in names and addresses.
func ValidateText(field, s string) error {
	if strings.ContainsAny(s, "|\r\n") {
		return apperr.New(apperr.KindInvalidFormat, "%s must not contain '|' or line breaks", field)
	}
	return nil
}

// ValidateSubjectName rejects names containing any separator of the subject
// list.
func ValidateSubjectName(s string) error {
	if strings.ContainsAny(s, "|,:\r\n") {
		return apperr.New(apperr.KindInvalidFormat, "subject %q must not contain '|', ',' or ':'", s)
	}
	return nil
}
