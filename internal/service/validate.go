package service

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

const (
	maxNameLength    = 200
	maxSubjectLength = 200
	maxMessageLength = 5000
	maxPhoneLength   = 40
)

// validEmail accepts a bare address ("a@b.c"), not a display-name form.
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s && strings.Contains(s, "@")
}

func tooLong(s string, max int) bool {
	return utf8.RuneCountInString(s) > max
}
