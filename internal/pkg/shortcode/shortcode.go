// Package shortcode encodes public event codes of the form MMDDxx: a two digit month, a two digit day
// and a two character base-36 ordinal counting events scheduled on that month/day.
package shortcode

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	Length     = 6
	MaxOrdinal = 36*36 - 1
)

var ErrInvalidCode = errors.New("invalid short code")

type Code struct {
	Month   time.Month
	Day     int
	Ordinal int
}

// Prefix is the MMDD part shared by every code of the same calendar day.
func Prefix(month time.Month, day int) string {
	return fmt.Sprintf("%02d%02d", int(month), day)
}

func Encode(month time.Month, day, ordinal int) (string, error) {
	if err := validate(month, day, ordinal); err != nil {
		return "", err
	}

	suffix := strings.ToUpper(strconv.FormatInt(int64(ordinal), 36))
	if len(suffix) == 1 {
		suffix = "0" + suffix
	}

	return Prefix(month, day) + suffix, nil
}

func Decode(code string) (Code, error) {
	if len(code) != Length {
		return Code{}, ErrInvalidCode
	}

	month, err := strconv.Atoi(code[0:2])
	if err != nil {
		return Code{}, ErrInvalidCode
	}
	day, err := strconv.Atoi(code[2:4])
	if err != nil {
		return Code{}, ErrInvalidCode
	}
	ordinal, err := strconv.ParseInt(strings.ToLower(code[4:6]), 36, 32)
	if err != nil {
		return Code{}, ErrInvalidCode
	}

	c := Code{Month: time.Month(month), Day: day, Ordinal: int(ordinal)}
	if err = validate(c.Month, c.Day, c.Ordinal); err != nil {
		return Code{}, err
	}

	return c, nil
}

func (c Code) String() string {
	s, _ := Encode(c.Month, c.Day, c.Ordinal)
	return s
}

func validate(month time.Month, day, ordinal int) error {
	if month < time.January || month > time.December {
		return ErrInvalidCode
	}
	// Feb 29 must stay valid, so check against a leap year.
	if day < 1 || day > daysIn(month) {
		return ErrInvalidCode
	}
	if ordinal < 1 || ordinal > MaxOrdinal {
		return ErrInvalidCode
	}

	return nil
}

func daysIn(month time.Month) int {
	return time.Date(2024, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
