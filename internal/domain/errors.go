package domain

import "errors"

// ErrPathNotFound is fatal: the requested root does not exist, no checks run.
var ErrPathNotFound = errors.New("path not found")

// ErrParse marks a file whose syntax could not be parsed. Recoverable: the
// file is skipped with a warning and the run continues.
var ErrParse = errors.New("parse error")
