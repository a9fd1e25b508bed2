package dashboard

import (
	"context"

	"github.com/cockroachdb/errors"
)

// Future is the eventual result of a call started with Go. It resolves
// exactly once, with either a value or an error.
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Go runs fn in a new goroutine and returns a Future for its result.
// The goroutine ends when fn returns; cancel ctx to stop it early.
//
// Example:
//
//	admins := dashboard.Go(ctx, func(ctx context.Context) ([]dashboard.Admin, error) {
//	    return client.GetOrganizationAdmins(ctx, orgID)
//	})
//	networks, err := client.GetOrganizationNetworks(ctx, orgID, nil)
//	...
//	list, err := admins.Await(ctx)
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	go func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				var zero T
				f.val, f.err = zero, errors.Newf("panic in future: %v", r)
			}
		}()

		val, err := fn(ctx)
		if err != nil {
			f.err = err
			return
		}
		f.val = val
	}()

	return f
}

// Done is closed once the future has resolved.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the future resolves or ctx is done. Cancelling ctx
// abandons the wait, not the underlying call.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, errors.Wrap(ctx.Err(), "await cancelled")
	}
}
