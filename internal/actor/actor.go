// Package actor carries the identity of the caller performing a mutation so
// that audit entries can record it.
package actor

import "context"

type (
	key     struct{}
	slotKey struct{}
)

// Track returns a copy of ctx with an empty slot that a later With on a
// derived context fills in. Outer middleware uses it to learn the actor after
// the inner handlers have run.
func Track(ctx context.Context) context.Context {
	return context.WithValue(ctx, slotKey{}, new(string))
}

// With returns a copy of ctx carrying id. An empty id leaves ctx unchanged.
func With(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	if slot, ok := ctx.Value(slotKey{}).(*string); ok {
		*slot = id
	}
	return context.WithValue(ctx, key{}, id)
}

// From returns the actor recorded on ctx, or nil. A tracked ctx also sees an
// actor set on a context derived from it.
func From(ctx context.Context) *string {
	id, ok := ctx.Value(key{}).(string)
	if !ok || id == "" {
		if slot, tracked := ctx.Value(slotKey{}).(*string); tracked && *slot != "" {
			id = *slot
		} else {
			return nil
		}
	}
	return &id
}
