package model

import "errors"

var (
	ErrQuestionNotFound    = errors.New("question not found")
	ErrUnsupportedFormat   = errors.New("unsupported format")
	ErrUnsupportedEncoding = errors.New("unsupported encoding")
	ErrEmptyInput          = errors.New("input contains no text")
)
