// Package impl contains the concrete use case services.
package impl

import (
	"context"

	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"golang.org/x/sync/errgroup"
)

// resolveRefs fetches the documents behind a list of reference IDs
// concurrently, preserving order. Dangling references are skipped rather
// than failing the whole read.
func resolveRefs[T any](ctx context.Context, ids []string, find func(context.Context, string) (*T, error)) ([]*T, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	out := make([]*T, len(ids))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, id := range ids {
		group.Go(func() error {
			doc, err := find(groupCtx, id)
			if errors.Is(err, repository.ErrNotFound) {
				return nil
			}
			if err != nil {
				return err
			}

			out[i] = doc

			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	resolved := make([]*T, 0, len(out))
	for _, doc := range out {
		if doc != nil {
			resolved = append(resolved, doc)
		}
	}

	return resolved, nil
}
