// Package tempdir provides scratch directories whose lifetime is bounded by a
// scope.
//
// A [Workspace] owns a freshly created directory until it is released.
// Release removes the whole subtree, deepest entries first, and retries when
// the platform reports "directory not empty" for a directory this process
// has already emptied. That happens on filesystems where another process
// (indexers, antivirus, file watchers) still holds a handle on a child that
// was just deleted.
//
// # Usage
//
// Prefer [With], which releases on every exit path:
//
//	err := tempdir.With(ctx, func(ws *tempdir.Workspace) error {
//	    return unpackInto(ws.Path())
//	}, tempdir.WithPrefix("unpack-"))
//
// Or manage the handle yourself:
//
//	ws, err := tempdir.New(tempdir.WithPrefix("unpack-"))
//	if err != nil {
//	    return err
//	}
//	defer func() { err = errors.Join(err, ws.Release(ctx)) }()
//
// # Errors
//
// [New] fails with an [*AllocationError]. [Workspace.Release] fails with a
// [*CleanupIOError] for anything other than "directory not empty", or with a
// [*CleanupExhaustedError] once every attempt has hit that condition.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
package tempdir
