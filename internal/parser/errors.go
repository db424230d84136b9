package parser

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrMissingHeaders    = errors.New("missing required CSV headers")
	ErrInvalidListFile   = errors.New("invalid validation list file")
)
