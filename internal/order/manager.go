package order

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/daarukart/storefront/internal/catalog"
	"github.com/daarukart/storefront/internal/logger"
	"github.com/daarukart/storefront/internal/money"
	"github.com/daarukart/storefront/internal/storage/localstore"
	"github.com/daarukart/storefront/internal/validate"
)

type selectionReader interface {
	Get() (catalog.Product, bool)
}

type bookingStore interface {
	Set(key string, v any) bool
	Get(key string, dst any) bool
}

type idGenerator interface {
	OrderID() string
}

// Kind classifies a transient notification for the presentation layer.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// Presenter is implemented by the hosting shell, never by the pipeline. The
// pipeline calls it as a side effect of processing an order.
type Presenter interface {
	ShowNotification(kind Kind, message string, duration time.Duration)
	RenderFieldErrors(fields map[string]string)
}

const notifyDuration = 4 * time.Second

// Conf collects the pipeline knobs. Now and Rand exist so tests can pin the
// clock and the draw; both may be nil in production wiring.
type Conf struct {
	L         *logger.Logger
	Rules     validate.Rules
	ETA       ETAConfig
	Now       func() time.Time
	Rand      *rand.Rand
	Presenter Presenter
}

// Manager runs the order pipeline: validate the form, price the order,
// estimate delivery, persist the booking.
type Manager struct {
	mu        sync.Mutex
	l         *logger.Logger
	rules     validate.Rules
	eta       ETAConfig
	now       func() time.Time
	rng       *rand.Rand
	presenter Presenter
	selection selectionReader
	store     bookingStore
	ids       idGenerator
}

func New(conf Conf, selection selectionReader, store bookingStore, ids idGenerator) *Manager {
	now := conf.Now
	if now == nil {
		now = time.Now
	}

	rng := conf.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Manager{
		l:         conf.L,
		rules:     conf.Rules,
		eta:       conf.ETA,
		now:       now,
		rng:       rng,
		presenter: conf.Presenter,
		selection: selection,
		store:     store,
		ids:       ids,
	}
}

// ValidateForm runs every field validator and reports all violations
// together. It is total: any input, including empty fields, yields either the
// validated data or an InputError with at least one entry.
func (m *Manager) ValidateForm(input FormInput) (ValidatedData, error) {
	inputErr := newInputError()

	if res := m.rules.Name(input.Name); !res.Valid {
		inputErr.addError("name", res.Message)
	}

	phone := m.rules.Phone(input.Phone)
	if !phone.Valid {
		inputErr.addError("phone", phone.Message)
	}

	if res := m.rules.Address(input.Address); !res.Valid {
		inputErr.addError("address", res.Message)
	}

	if res := m.rules.City(input.City); !res.Valid {
		inputErr.addError("city", res.Message)
	}

	if res := m.rules.Pin(input.Pin); !res.Valid {
		inputErr.addError("pin", res.Message)
	}

	if res := m.rules.Payment(input.Payment); !res.Valid {
		inputErr.addError("payment", res.Message)
	}

	if res := m.rules.Quantity(input.Quantity); !res.Valid {
		inputErr.addError("quantity", res.Message)
	}

	if inputErr.fieldsCount() > 0 {
		return ValidatedData{}, inputErr
	}

	data := ValidatedData(input)
	data.Phone = phone.Value

	return data, nil
}

//nolint:cyclop // linear pipeline, one step per failure mode
func (m *Manager) Process(input FormInput) (*Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	product, ok := m.selection.Get()
	if !ok {
		m.showNotification(KindError, "Please select a product before ordering")

		return nil, ErrNoSelection
	}

	data, err := m.ValidateForm(input)
	if inputErr := IsInputError(err); inputErr != nil {
		if m.presenter != nil {
			m.presenter.RenderFieldErrors(inputErr.Fields())
		}

		m.showNotification(KindError, "Please fix the highlighted fields")

		return nil, err
	}

	// Atoi cannot fail here, the quantity validator already proved it parses.
	quantity, err := strconv.Atoi(strings.TrimSpace(data.Quantity))
	if err != nil {
		return nil, fmt.Errorf("parse validated quantity %q: %w", data.Quantity, err)
	}

	booking := &Booking{
		ID:          m.ids.OrderID(),
		CreatedAt:   m.now().UTC(),
		Status:      StatusConfirmed,
		Customer:    data,
		Product:     product,
		ETA:         GenerateETA(m.now(), m.rng, m.eta),
		TotalAmount: product.Price * quantity,
	}

	if !m.store.Set(localstore.KeyBooking, booking) {
		m.showNotification(KindError, "Could not save your order, please try again")

		return nil, ErrSaveBooking
	}

	m.l.LogInfo(
		"order %s confirmed: %s x%d, total %s, delivery %s",
		booking.ID,
		product.Name,
		quantity,
		money.Format(booking.TotalAmount),
		booking.ETA.Relative,
	)

	m.showNotification(
		KindSuccess,
		fmt.Sprintf("Order %s confirmed, total %s", booking.ID, money.Format(booking.TotalAmount)),
	)

	return booking, nil
}

// CurrentBooking reads back the persisted booking. A missing or corrupt
// record reads as "no booking".
func (m *Manager) CurrentBooking() (*Booking, bool) {
	var booking Booking
	if !m.store.Get(localstore.KeyBooking, &booking) {
		return nil, false
	}

	return &booking, true
}

func (m *Manager) showNotification(kind Kind, msg string) {
	if m.presenter == nil {
		return
	}

	m.presenter.ShowNotification(kind, msg, notifyDuration)
}
