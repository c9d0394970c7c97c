package store

import (
	"fmt"

	"github.com/footadmin/footadmin/pkg/types"
)

// tableAdapter exposes a Store through the untyped types.Table interface.
// Records come back as *T; inputs may be T or *T.
type tableAdapter[T any] struct {
	name string
	s    *Store[T]
}

// Table returns the store as a types.Table registered under name.
func (s *Store[T]) Table(name string) types.Table {
	return &tableAdapter[T]{name: name, s: s}
}

func (t *tableAdapter[T]) Name() string { return t.name }

func (t *tableAdapter[T]) GetAll() ([]any, error) {
	recs, err := t.s.GetAll()
	if err != nil {
		return nil, err
	}
	return boxAll(recs), nil
}

func (t *tableAdapter[T]) Get(id types.ID) (any, error) {
	rec, err := t.s.GetByID(id)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (t *tableAdapter[T]) Create(data any) (any, error) {
	rec, err := unbox[T](data)
	if err != nil {
		return nil, err
	}
	created, err := t.s.Create(rec)
	if err != nil && !types.IsWarning(err) {
		return nil, err
	}
	return &created, err
}

func (t *tableAdapter[T]) Update(id types.ID, data any) (any, error) {
	rec, err := unbox[T](data)
	if err != nil {
		return nil, err
	}
	updated, err := t.s.Update(id, rec)
	if err != nil && !types.IsWarning(err) {
		return nil, err
	}
	return &updated, err
}

func (t *tableAdapter[T]) Delete(id types.ID) error { return t.s.Delete(id) }

func (t *tableAdapter[T]) Fetch(filter map[string]string) ([]any, error) {
	recs, err := t.s.Fetch(filter)
	if err != nil {
		return nil, err
	}
	return boxAll(recs), nil
}

func (t *tableAdapter[T]) History() ([]types.HistoryEntry, error) {
	entries, err := t.s.History()
	if err != nil {
		return nil, err
	}
	out := make([]types.HistoryEntry, len(entries))
	for i, e := range entries {
		rec := e.Record
		out[i] = types.HistoryEntry{Action: e.Action, Timestamp: e.Timestamp, Record: &rec}
	}
	return out, nil
}

func (t *tableAdapter[T]) Trash() ([]types.TrashEntry, error) {
	entries, err := t.s.Trash()
	if err != nil {
		return nil, err
	}
	out := make([]types.TrashEntry, len(entries))
	for i, e := range entries {
		rec := e.Record
		out[i] = types.TrashEntry{DeletedAt: e.DeletedAt, Record: &rec}
	}
	return out, nil
}

func boxAll[T any](recs []T) []any {
	out := make([]any, len(recs))
	for i := range recs {
		out[i] = &recs[i]
	}
	return out
}

func unbox[T any](data any) (T, error) {
	var zero T
	switch v := data.(type) {
	case T:
		return v, nil
	case *T:
		if v == nil {
			return zero, fmt.Errorf("%w: nil record", types.ErrInvalidData)
		}
		return *v, nil
	default:
		return zero, fmt.Errorf("%w: expected %T, got %T", types.ErrInvalidData, zero, data)
	}
}
