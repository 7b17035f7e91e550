package tempdir

import (
	"context"
	"errors"
)

// With creates a workspace, runs fn inside it and releases it on every exit
// path, including a panic in fn. The release error is joined with fn's error.
func With(ctx context.Context, fn func(ws *Workspace) error, opts ...Option) (err error) {
	ws, err := New(opts...)
	if err != nil {
		return err
	}
	defer func() {
		if rerr := ws.Release(ctx); rerr != nil {
			err = errors.Join(err, rerr)
		}
	}()
	return fn(ws)
}
