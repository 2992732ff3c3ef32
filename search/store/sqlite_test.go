package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func TestSQLiteStore_Close(t *testing.T) {
	st, err := NewSQLiteStore(filepath.Join(t.TempDir(), "close.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}

	if err := st.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Errorf("second Close should be a no-op, got %v", err)
	}

	ctx := context.Background()
	if err := st.SaveResult(ctx, Record{RunID: "x"}); !errors.Is(err, ErrClosed) {
		t.Errorf("SaveResult after close: expected ErrClosed, got %v", err)
	}
	if _, err := st.LoadResult(ctx, "x"); !errors.Is(err, ErrClosed) {
		t.Errorf("LoadResult after close: expected ErrClosed, got %v", err)
	}
	if _, err := st.ListResults(ctx, 0); !errors.Is(err, ErrClosed) {
		t.Errorf("ListResults after close: expected ErrClosed, got %v", err)
	}
}

func TestSQLiteStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	st, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	if err := st.SaveResult(ctx, Record{RunID: "kept", Strategy: "dfs", Solved: true, Cost: 3}); err != nil {
		t.Fatalf("SaveResult: %v", err)
	}
	_ = st.Close()

	reopened, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	if reopened.Path() != path {
		t.Errorf("Path() = %q, want %q", reopened.Path(), path)
	}
	rec, err := reopened.LoadResult(ctx, "kept")
	if err != nil {
		t.Fatalf("LoadResult after reopen: %v", err)
	}
	if rec.Strategy != "dfs" || rec.Cost != 3 {
		t.Errorf("unexpected record: %+v", rec)
	}
}
