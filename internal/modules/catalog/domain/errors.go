package domain

import "errors"

var (
	ErrTitleRequired = errors.New("title is required")
	ErrFileRequired  = errors.New("audio file is required")
	ErrInvalidPage   = errors.New("page must be a positive integer")
	ErrInvalidLimit  = errors.New("limit must be a positive integer")
)
