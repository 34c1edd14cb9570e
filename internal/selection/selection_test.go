package selection_test

import (
	"io"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daarukart/storefront/internal/catalog"
	"github.com/daarukart/storefront/internal/logger"
	"github.com/daarukart/storefront/internal/selection"
	"github.com/daarukart/storefront/internal/storage/localstore"
)

func testLogger() *logger.Logger {
	backend := logrus.New()
	backend.SetOutput(io.Discard)

	return logger.New(backend)
}

type mockNotifier struct {
	changes []*catalog.Product
	manager *selection.Manager
	reenter bool
}

func (m *mockNotifier) SelectionChanged(p *catalog.Product) {
	m.changes = append(m.changes, p)

	if m.reenter && m.manager != nil {
		// A badly behaved summary refresh that tries to select again.
		_ = m.manager.Select("beer-1")
	}
}

func setup(t *testing.T) (*selection.Manager, *mockNotifier, *localstore.Store) {
	t.Helper()

	store := localstore.New(testLogger(), localstore.NewMemory(0))
	cat := catalog.New([]catalog.Product{
		{ID: "beer-1", Name: "Test Lager", Price: 150, Category: "beer"},
		{ID: "rum-1", Name: "Test Rum", Price: 1299, Category: "rum"},
	}, nil)

	notifier := &mockNotifier{}
	manager := selection.New(testLogger(), cat, store, notifier)
	notifier.manager = manager

	return manager, notifier, store
}

func TestSelect(t *testing.T) {
	manager, notifier, _ := setup(t)

	t.Run("Success persists and notifies", func(t *testing.T) {
		require.NoError(t, manager.Select("rum-1"))

		got, ok := manager.Get()
		require.True(t, ok)
		assert.Equal(t, "rum-1", got.ID)

		require.Len(t, notifier.changes, 1)
		assert.Equal(t, "rum-1", notifier.changes[0].ID)
	})

	t.Run("Unknown product fails without persisting", func(t *testing.T) {
		manager.Clear()
		notifier.changes = nil

		err := manager.Select("nope")
		assert.ErrorIs(t, err, selection.ErrProductNotFound)

		_, ok := manager.Get()
		assert.False(t, ok)
		assert.Empty(t, notifier.changes)
	})

	t.Run("Re-selection overwrites", func(t *testing.T) {
		require.NoError(t, manager.Select("beer-1"))
		require.NoError(t, manager.Select("rum-1"))

		got, ok := manager.Get()
		require.True(t, ok)
		assert.Equal(t, "rum-1", got.ID)
	})
}

func TestSelectThenClearReadsAbsent(t *testing.T) {
	manager, notifier, _ := setup(t)

	require.NoError(t, manager.Select("beer-1"))
	manager.Clear()

	_, ok := manager.Get()
	assert.False(t, ok)

	// Clear notifies with a nil product.
	require.Len(t, notifier.changes, 2)
	assert.Nil(t, notifier.changes[1])
}

func TestNotificationDoesNotRecurse(t *testing.T) {
	manager, notifier, _ := setup(t)
	notifier.reenter = true

	require.NoError(t, manager.Select("rum-1"))

	// The re-entrant Select inside the notification must not trigger a second
	// notification, only the original one is delivered.
	assert.Len(t, notifier.changes, 1)
}

type countingNotifier struct {
	mu      sync.Mutex
	changes int
}

func (c *countingNotifier) SelectionChanged(_ *catalog.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.changes++
}

func (c *countingNotifier) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.changes
}

func TestConcurrentSelectAndClear(t *testing.T) {
	store := localstore.New(testLogger(), localstore.NewMemory(0))
	cat := catalog.New([]catalog.Product{
		{ID: "beer-1", Name: "Test Lager", Price: 150, Category: "beer"},
		{ID: "rum-1", Name: "Test Rum", Price: 1299, Category: "rum"},
	}, nil)

	notifier := &countingNotifier{}
	manager := selection.New(testLogger(), cat, store, notifier)

	const goroutines = 8

	var wg sync.WaitGroup

	for g := 0; g < goroutines; g++ {
		wg.Add(1)

		go func(g int) {
			defer wg.Done()

			for i := 0; i < 100; i++ {
				switch {
				case g%4 == 0:
					manager.Clear()
				case g%2 == 0:
					assert.NoError(t, manager.Select("beer-1"))
				default:
					assert.NoError(t, manager.Select("rum-1"))
				}

				manager.Get()
			}
		}(g)
	}

	wg.Wait()

	// Whatever interleaving won, the stored record must be one of the two
	// catalog products or cleanly absent.
	if product, ok := manager.Get(); ok {
		assert.Contains(t, []string{"beer-1", "rum-1"}, product.ID)
	}

	assert.Greater(t, notifier.count(), 0)
}

func TestGetWithCorruptRecord(t *testing.T) {
	driver := localstore.NewMemory(0)
	require.NoError(t, driver.WriteItem(localstore.KeySelectedProduct, "{broken"))

	cat := catalog.New(nil, nil)
	manager := selection.New(testLogger(), cat, localstore.New(testLogger(), driver), nil)

	_, ok := manager.Get()
	assert.False(t, ok)
}
