package model

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Separator placement is constrained, not just stripped: an ISBN-10 is
// either 10 bare characters or 13 characters split into exactly four
// groups, an ISBN-13 either 13 bare digits or 17 characters in five
// groups. "9-7-8-2070360021" is rejected even though its digits line up.
var (
	isbnPrefix  = regexp.MustCompile(`^(?:ISBN(?:-1[03])?:? )`)
	isbn10Plain = regexp.MustCompile(`^[0-9]{9}[0-9X]$`)
	isbn10Sep   = regexp.MustCompile(`^[0-9]{1,5}[- ][0-9]+[- ][0-9]+[- ][0-9X]$`)
	isbn13Plain = regexp.MustCompile(`^97[89][0-9]{10}$`)
	isbn13Sep   = regexp.MustCompile(`^97[89][- ][0-9]{1,5}[- ][0-9]+[- ][0-9]+[- ][0-9]$`)
)

// validateISBN accepts ISBN-10 and ISBN-13 forms, with or without an
// "ISBN:"/"ISBN-10:"/"ISBN-13:" prefix and with space or hyphen
// separators, e.g. "978-2-07-040857-0" or "2070408507".
func validateISBN(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil // Required rule reports emptiness
	}

	body := isbnPrefix.ReplaceAllString(s, "")

	switch {
	case isbn10Plain.MatchString(body),
		len(body) == 13 && isbn10Sep.MatchString(body),
		isbn13Plain.MatchString(body),
		len(body) == 17 && isbn13Sep.MatchString(body):
		return nil
	}
	return validation.NewError("validation_isbn", "Format ISBN invalide")
}
