// Package optimistic applies a local mutation ahead of its remote confirmation
// and reverts it when the remote call fails.
package optimistic

import "context"

// Apply runs apply, then remote. If remote fails, inverse is run and the remote error returned.
// apply and inverse must be exact opposites, nothing else is rolled back.
func Apply(ctx context.Context, apply, inverse func(), remote func(ctx context.Context) error) error {
	apply()
	if err := remote(ctx); err != nil {
		inverse()
		return err
	}
	return nil
}
