package firestore

import (
	"context"
	"sort"
	"time"

	"storefront/internal/domain/repository"

	cloudfirestore "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// record is satisfied by every entity through entity.Meta, letting the
// adapter stamp IDs and timestamps without knowing the concrete type.
type record interface {
	SetID(id string)
	StampNew(now time.Time)
	Touch(now time.Time)
}

// Collection is the generic document-store adapter for one collection. It
// exposes only the primitives the store supports: get-by-id, get-all with
// equality filters plus optional sort and limit, create, partial field
// update, and delete. No transactions, no cursors.
type Collection[T any] struct {
	ref *cloudfirestore.CollectionRef
	now func() time.Time
}

// NewCollection binds a typed adapter to a named collection.
func NewCollection[T any](client *cloudfirestore.Client, name string) *Collection[T] {
	return &Collection[T]{
		ref: client.Collection(name),
		now: func() time.Time { return time.Now().UTC() },
	}
}

// FindByID retrieves one document. Absent IDs map to repository.ErrNotFound.
func (c *Collection[T]) FindByID(ctx context.Context, id string) (*T, error) {
	snap, err := c.ref.Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get %s/%s", c.ref.ID, id)
	}

	return c.decode(snap)
}

// FindAll retrieves every document matching the query's equality filters,
// sorted and limited when requested.
func (c *Collection[T]) FindAll(ctx context.Context, q repository.ListQuery) ([]*T, error) {
	query := c.ref.Query
	for _, f := range q.Filters {
		query = query.Where(f.Field, "==", f.Value)
	}
	if q.OrderBy != "" {
		dir := cloudfirestore.Asc
		if q.Desc {
			dir = cloudfirestore.Desc
		}
		query = query.OrderBy(q.OrderBy, dir)
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var out []*T
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "list %s", c.ref.ID)
		}

		doc, err := c.decode(snap)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}

	return out, nil
}

// Create persists doc under a store-generated ID, stamping both timestamps,
// and returns the assigned ID.
func (c *Collection[T]) Create(ctx context.Context, doc *T) (string, error) {
	ref := c.ref.NewDoc()
	stampForCreate(doc, ref.ID, c.now())

	if _, err := ref.Create(ctx, doc); err != nil {
		return "", errors.Wrapf(err, "create %s", c.ref.ID)
	}

	return ref.ID, nil
}

// CreateWithID persists doc under a caller-chosen ID (used for profile
// documents keyed by identity-provider UID).
func (c *Collection[T]) CreateWithID(ctx context.Context, id string, doc *T) error {
	stampForCreate(doc, id, c.now())

	if _, err := c.ref.Doc(id).Create(ctx, doc); err != nil {
		return errors.Wrapf(err, "create %s/%s", c.ref.ID, id)
	}

	return nil
}

// Update applies the given fields to an existing document and stamps the
// update time. The field-path write fails on absent documents rather than
// upserting, so a stale ID maps to repository.ErrNotFound instead of
// resurrecting a partial document.
func (c *Collection[T]) Update(ctx context.Context, id string, fields map[string]any) error {
	_, err := c.ref.Doc(id).Update(ctx, fieldUpdates(fields, c.now()))
	if status.Code(err) == codes.NotFound {
		return repository.ErrNotFound
	}
	if err != nil {
		return errors.Wrapf(err, "update %s/%s", c.ref.ID, id)
	}

	return nil
}

// Delete removes the document. Deleting an absent document is not an error;
// callers that need existence guarantees check first.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	if _, err := c.ref.Doc(id).Delete(ctx); err != nil {
		return errors.Wrapf(err, "delete %s/%s", c.ref.ID, id)
	}

	return nil
}

// stampForCreate assigns the document ID and creation timestamps on any
// entity carrying entity.Meta before it is written.
func stampForCreate(doc any, id string, now time.Time) {
	if rec, ok := doc.(record); ok {
		rec.StampNew(now)
		rec.SetID(id)
	}
}

// fieldUpdates converts a partial-update map into field-path updates plus
// the updatedAt stamp, sorted by path so writes are deterministic.
func fieldUpdates(fields map[string]any, now time.Time) []cloudfirestore.Update {
	updates := make([]cloudfirestore.Update, 0, len(fields)+1)
	for k, v := range fields {
		updates = append(updates, cloudfirestore.Update{Path: k, Value: v})
	}
	updates = append(updates, cloudfirestore.Update{Path: "updatedAt", Value: now})

	sort.Slice(updates, func(i, j int) bool { return updates[i].Path < updates[j].Path })

	return updates
}

func (c *Collection[T]) decode(snap *cloudfirestore.DocumentSnapshot) (*T, error) {
	doc := new(T)
	if err := snap.DataTo(doc); err != nil {
		return nil, errors.Wrapf(err, "decode %s/%s", c.ref.ID, snap.Ref.ID)
	}
	if rec, ok := any(doc).(record); ok {
		rec.SetID(snap.Ref.ID)
	}

	return doc, nil
}
