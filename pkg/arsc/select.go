package arsc

import "github.com/bft-labs/resunpack/pkg/log"

// Logger receives the selection notice.
type Logger = log.Logger

// SelectPrimary returns the package to use as the default one.
//
// A single package is returned as is. With several packages the one with the
// highest ResSpecCount wins, and among equal counts the last one wins. The
// choice is reported on logger at info level; a nil logger discards it.
// The returned pointer is the element from pkgs.
func SelectPrimary(pkgs []*Package, logger Logger) (*Package, error) {
	switch len(pkgs) {
	case 0:
		return nil, ErrEmptyTable
	case 1:
		return pkgs[0], nil
	}

	chosen := pkgs[MostResSpecs(pkgs)]
	log.OrNoop(logger).Info("table contains multiple packages, using "+chosen.Name+" as default",
		log.String("package", chosen.Name),
		log.Int("id", chosen.ID),
		log.Int("res_specs", chosen.ResSpecCount),
		log.Int("packages", len(pkgs)),
	)
	return chosen, nil
}

// MostResSpecs returns the index of the package with the most resource
// specs, preferring the later index on ties. It returns -1 for no packages.
func MostResSpecs(pkgs []*Package) int {
	if len(pkgs) == 0 {
		return -1
	}
	best, count := 0, pkgs[0].ResSpecCount
	for i, p := range pkgs {
		// >= keeps the last of several equal counts.
		if p.ResSpecCount >= count {
			best, count = i, p.ResSpecCount
		}
	}
	return best
}
