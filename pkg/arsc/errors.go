package arsc

import "errors"

var (
	// ErrEmptyTable is returned when a table contains zero packages.
	ErrEmptyTable = errors.New("arsc: table contains zero packages")

	// ErrPackageNotFound is returned by Table.Package for an unknown id.
	ErrPackageNotFound = errors.New("arsc: package not found")
)
