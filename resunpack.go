// Package resunpack bundles the scratch-workspace and resource-table helpers
// used while unpacking application resources.
//
// Example usage:
//
//	err := resunpack.WithWorkspace(ctx, func(ws *resunpack.Workspace) error {
//	    table, err := decodeTable(apk, ws.Path())
//	    if err != nil {
//	        return err
//	    }
//	    pkg, err := resunpack.SelectPrimary(table.Packages, logger)
//	    if err != nil {
//	        return err
//	    }
//	    return writePackage(pkg, ws.Path())
//	}, resunpack.WithPrefix("unpack-"))
package resunpack

import (
	"context"

	"github.com/bft-labs/resunpack/pkg/arsc"
	"github.com/bft-labs/resunpack/pkg/log"
	"github.com/bft-labs/resunpack/pkg/tempdir"
)

// Workspace is a scratch directory released at the end of its scope.
type Workspace = tempdir.Workspace

// WorkspaceOption configures a Workspace.
type WorkspaceOption = tempdir.Option

// Package is one logical package of a decoded resource table.
type Package = arsc.Package

// Table is a decoded resource table.
type Table = arsc.Table

// Logger is the diagnostic sink accepted by every component.
type Logger = log.Logger

// ErrEmptyTable is returned by SelectPrimary for a table without packages.
var ErrEmptyTable = arsc.ErrEmptyTable

// NewWorkspace creates a scratch directory. The caller must Release it.
func NewWorkspace(opts ...WorkspaceOption) (*Workspace, error) {
	return tempdir.New(opts...)
}

// WithWorkspace runs fn inside a scratch directory that is released when fn returns.
func WithWorkspace(ctx context.Context, fn func(ws *Workspace) error, opts ...WorkspaceOption) error {
	return tempdir.With(ctx, fn, opts...)
}

// WithPrefix sets the prefix of the scratch directory name.
func WithPrefix(prefix string) WorkspaceOption {
	return tempdir.WithPrefix(prefix)
}

// SelectPrimary returns the package to treat as the table's default.
// Ties on resource-spec count go to the later package.
func SelectPrimary(pkgs []*Package, logger Logger) (*Package, error) {
	return arsc.SelectPrimary(pkgs, logger)
}
