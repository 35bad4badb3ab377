package store

import (
	"context"
	"database/sql"
	"testing"
)

type stubDB struct {
	getFn  func(ctx context.Context, dest any, query string, args ...any) error
	execFn func(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s stubDB) GetContext(ctx context.Context, dest any, query string, args ...any) error {
	if s.getFn == nil {
		return nil
	}
	return s.getFn(ctx, dest, query, args...)
}

func (s stubDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if s.execFn == nil {
		return stubResult{}, nil
	}
	return s.execFn(ctx, query, args...)
}

type stubResult struct{}

func (stubResult) LastInsertId() (int64, error) { return 0, nil }
func (stubResult) RowsAffected() (int64, error) { return 1, nil }

func TestSQLitePersisterLoadMissingKey(t *testing.T) {
	persister := NewSQLitePersister(stubDB{
		getFn: func(context.Context, any, string, ...any) error {
			return sql.ErrNoRows
		},
	})
	value, err := persister.Load(context.Background(), "users")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != nil {
		t.Fatalf("expected nil for missing key, got %v", value)
	}
}

func TestSQLitePersisterLoad(t *testing.T) {
	persister := NewSQLitePersister(stubDB{
		getFn: func(_ context.Context, dest any, _ string, args ...any) error {
			if len(args) != 1 || args[0] != "users" {
				t.Fatalf("unexpected args: %v", args)
			}
			*dest.(*[]byte) = []byte(`{"ok":true}`)
			return nil
		},
	})
	value, err := persister.Load(context.Background(), "users")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(value) != `{"ok":true}` {
		t.Fatalf("unexpected value: %s", value)
	}
}

func TestSQLitePersisterSave(t *testing.T) {
	var gotKey string
	var gotValue []byte
	persister := NewSQLitePersister(stubDB{
		execFn: func(_ context.Context, _ string, args ...any) (sql.Result, error) {
			gotKey = args[0].(string)
			gotValue = args[1].([]byte)
			return stubResult{}, nil
		},
	})
	if err := persister.Save(context.Background(), "campaigns", []byte(`[]`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotKey != "campaigns" || string(gotValue) != `[]` {
		t.Fatalf("unexpected upsert: key=%s value=%s", gotKey, gotValue)
	}
}
