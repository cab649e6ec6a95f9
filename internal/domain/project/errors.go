package project

import "errors"

var (
	// ErrInvalidCatalog indicates seed data that breaks a catalog invariant.
	ErrInvalidCatalog = errors.New("invalid catalog")
	// ErrEmptyImport indicates an import with no projects.
	ErrEmptyImport = errors.New("nothing to import")
)
