package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
)

func TestMemStore_InterfaceContract(t *testing.T) {
	var _ Store = NewMemStore()
	var _ Store = (*SQLiteStore)(nil)
	var _ Store = (*MySQLStore)(nil)
}

func TestMemStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	st := NewMemStore()

	steps := []Step{{Action: "a", State: "1", Cost: 1}}
	if err := st.SaveResult(ctx, Record{RunID: "r", Steps: steps}); err != nil {
		t.Fatalf("SaveResult: %v", err)
	}
	steps[0].Action = "mutated"

	rec, _ := st.LoadResult(ctx, "r")
	if rec.Steps[0].Action != "a" {
		t.Error("caller mutation leaked into the store")
	}
	rec.Steps[0].Action = "mutated again"

	again, _ := st.LoadResult(ctx, "r")
	if again.Steps[0].Action != "a" {
		t.Error("returned record aliases stored steps")
	}
}

func TestMemStore_ConcurrentSaves(t *testing.T) {
	ctx := context.Background()
	st := NewMemStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = st.SaveResult(ctx, Record{RunID: fmt.Sprintf("run-%02d", i)})
		}(i)
	}
	wg.Wait()

	all, err := st.ListResults(ctx, 0)
	if err != nil {
		t.Fatalf("ListResults: %v", err)
	}
	if len(all) != 20 {
		t.Errorf("expected 20 records, got %d", len(all))
	}
}
