package validator

import (
	"errors"
	"regexp"
)

var (
	ErrInvalidEmail         = errors.New("invalid email")
	ErrInvalidName          = errors.New("invalid name")
	ErrInvalidPassword      = errors.New("invalid password")
	ErrInvalidAccountNumber = errors.New("invalid account number")
	ErrInvalidLink          = errors.New("invalid link")
)

var (
	emailRegex         = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	nameRegex          = regexp.MustCompile(`^[a-zA-Z0-9_ .-]{2,60}$`)
	accountNumberRegex = regexp.MustCompile(`^[0-9]{6,20}$`)
	linkRegex          = regexp.MustCompile(`^https?://\S+$`)
)

func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

func ValidateName(name string) error {
	if !nameRegex.MatchString(name) {
		return ErrInvalidName
	}
	return nil
}

func ValidatePassword(password string) error {
	if len(password) < 8 {
		return ErrInvalidPassword
	}
	return nil
}

func ValidateAccountNumber(accountNumber string) error {
	if !accountNumberRegex.MatchString(accountNumber) {
		return ErrInvalidAccountNumber
	}
	return nil
}

func ValidateLink(link string) error {
	if !linkRegex.MatchString(link) {
		return ErrInvalidLink
	}
	return nil
}
