package selection

import (
	"errors"
	"fmt"
	"sync"

	"github.com/daarukart/storefront/internal/catalog"
	"github.com/daarukart/storefront/internal/logger"
	"github.com/daarukart/storefront/internal/storage/localstore"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrNotSaved        = errors.New("selection could not be saved")
)

// Notifier is the presentation seam: the manager reports every selection
// change so a summary view can refresh. A nil product means the selection was
// cleared. Implementations must not call back into the manager; re-entrant
// notifications are dropped.
type Notifier interface {
	SelectionChanged(p *catalog.Product)
}

// Manager owns the single persisted "currently chosen product". Handlers may
// call it from concurrent goroutines; mu serializes state changes and guards
// the notifying flag.
type Manager struct {
	mu        sync.Mutex
	l         *logger.Logger
	catalog   *catalog.Catalog
	store     *localstore.Store
	notifier  Notifier
	notifying bool
}

func New(l *logger.Logger, c *catalog.Catalog, store *localstore.Store, notifier Notifier) *Manager {
	return &Manager{
		l:        l,
		catalog:  c,
		store:    store,
		notifier: notifier,
	}
}

// notify delivers a selection change outside the state lock, so a summary
// refresh can read the manager without deadlocking. A refresh that calls back
// into Select or Clear finds notifying set and is dropped instead of
// recursing.
func (m *Manager) notify(p *catalog.Product) {
	if m.notifier == nil {
		return
	}

	m.mu.Lock()
	if m.notifying {
		m.mu.Unlock()

		return
	}

	m.notifying = true
	m.mu.Unlock()

	m.notifier.SelectionChanged(p)

	m.mu.Lock()
	m.notifying = false
	m.mu.Unlock()
}

// Select looks the product up and persists it as the current selection. An
// unknown id fails without persisting anything and without panicking.
func (m *Manager) Select(productID string) error {
	m.mu.Lock()

	product, ok := m.catalog.FindByID(productID)
	if !ok {
		m.mu.Unlock()
		m.l.LogWarnf("selection: attempt to select unknown product %q", productID)

		return fmt.Errorf("select %q: %w", productID, ErrProductNotFound)
	}

	if !m.store.Set(localstore.KeySelectedProduct, product) {
		m.mu.Unlock()

		return fmt.Errorf("select %q: %w", productID, ErrNotSaved)
	}

	m.mu.Unlock()

	m.notify(&product)

	return nil
}

// Get returns the persisted selection, or false when nothing is selected or
// the stored record is unreadable.
func (m *Manager) Get() (catalog.Product, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var product catalog.Product
	if !m.store.Get(localstore.KeySelectedProduct, &product) {
		return catalog.Product{}, false
	}

	return product, true
}

func (m *Manager) Clear() {
	m.mu.Lock()
	m.store.Remove(localstore.KeySelectedProduct)
	m.mu.Unlock()

	m.notify(nil)
}
