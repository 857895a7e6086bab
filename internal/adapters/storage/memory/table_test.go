package memory

import (
	"context"
	"sync"
	"testing"

	"vetsoft/internal/domain/meds"
	"vetsoft/internal/ports/storage"

	"github.com/stretchr/testify/require"
)

func TestTable_CRUD(t *testing.T) {
	tb := newTable[string]()

	require.ErrorIs(t, tb.create("", "x"), errIDRequired)
	require.NoError(t, tb.create("b", "beta"))
	require.NoError(t, tb.create("a", "alpha"))
	require.ErrorIs(t, tb.create("a", "again"), errAlreadyExists)

	v, err := tb.get("a")
	require.NoError(t, err)
	require.Equal(t, "alpha", v)

	// orden de inserción, no alfabético
	require.Equal(t, []string{"beta", "alpha"}, tb.list())

	require.NoError(t, tb.update("a", "alpha2"))
	require.ErrorIs(t, tb.update("zz", "nope"), storage.ErrNotFound)

	require.NoError(t, tb.delete("b"))
	require.ErrorIs(t, tb.delete("b"), storage.ErrNotFound)
	_, err = tb.get("b")
	require.ErrorIs(t, err, storage.ErrNotFound)

	require.Equal(t, []string{"alpha2"}, tb.list())
}

func TestMedRepo_ConcurrentUpdates_LastWriteWins(t *testing.T) {
	repo := NewMedRepo()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, meds.Med{ID: "m1", Name: "Ibuprofeno", Desc: "x", Dose: 2}))

	var wg sync.WaitGroup
	for i := 1; i <= 10; i++ {
		wg.Add(1)
		go func(d float64) {
			defer wg.Done()
			_ = repo.Update(ctx, meds.Med{ID: "m1", Name: "Ibuprofeno", Desc: "x", Dose: d})
		}(float64(i))
	}
	wg.Wait()

	got, err := repo.GetByID(ctx, "m1")
	require.NoError(t, err)
	require.GreaterOrEqual(t, got.Dose, 1.0)
	require.LessOrEqual(t, got.Dose, 10.0)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
}
