// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package mime

import (
	"errors"
	"fmt"
)

// maxLength is the longest input the parser accepts. Offsets into the
// source string are stored as uint16, so anything longer is not indexable.
const maxLength = 0xFFFF

var (
	ErrMissingSlash = errors.New("a slash (/) was missing between the type and subtype")
	ErrMissingEqual = errors.New("an equals sign (=) was missing between a parameter and its value")
	ErrMissingQuote = errors.New(`a quote (") was missing from a parameter value`)
	ErrInvalidRange = errors.New("unexpected asterisk")
	ErrTooLong      = errors.New("the string is too long")
)

// InvalidTokenError reports a byte outside the permitted grammar set.
type InvalidTokenError struct {
	Pos  int
	Byte byte
}

func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("invalid token %q at position %d", e.Byte, e.Pos)
}
