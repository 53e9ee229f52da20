package domain

import "errors"

var (
	ErrFileNotFound = errors.New("source document not found")
	ErrParse        = errors.New("source document is not valid JSON")
	ErrShape        = errors.New("source document has unexpected shape")
	ErrWrite        = errors.New("output document could not be written")
)
