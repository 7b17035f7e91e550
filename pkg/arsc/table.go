package arsc

import "fmt"

// Package is one logical package of a decoded resource table.
type Package struct {
	// ID is the package id from the table, 0x7f for a regular app package.
	ID int

	// Name may be empty for placeholder packages.
	Name string

	// ResSpecCount is the number of resource specs in this package,
	// as counted by the decoder.
	ResSpecCount int
}

func (p *Package) String() string {
	return fmt.Sprintf("%s (0x%02x)", p.Name, p.ID)
}

// FlagsOffset locates the configuration-flags block of one type spec.
type FlagsOffset struct {
	Offset int
	Count  int
}

// Table is the decoded content of a resource table.
// Packages keep the order in which they were decoded.
type Table struct {
	Packages     []*Package
	FlagsOffsets []FlagsOffset
}

// Primary selects the table's primary package. See SelectPrimary.
func (t *Table) Primary(logger Logger) (*Package, error) {
	return SelectPrimary(t.Packages, logger)
}

// Package returns the package with the given id.
func (t *Table) Package(id int) (*Package, error) {
	for _, p := range t.Packages {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: id 0x%02x", ErrPackageNotFound, id)
}
