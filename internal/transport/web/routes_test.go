package web_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daarukart/storefront/internal/catalog"
	"github.com/daarukart/storefront/internal/idgen/orderid"
	"github.com/daarukart/storefront/internal/logger"
	"github.com/daarukart/storefront/internal/order"
	"github.com/daarukart/storefront/internal/selection"
	"github.com/daarukart/storefront/internal/storage/localstore"
	"github.com/daarukart/storefront/internal/transport/web"
	"github.com/daarukart/storefront/internal/validate"
)

func testLogger() *logger.Logger {
	backend := logrus.New()
	backend.SetOutput(io.Discard)

	return logger.New(backend)
}

func newTestServer(t *testing.T) *web.Server {
	t.Helper()

	l := testLogger()
	store := localstore.New(l, localstore.NewMemory(0))
	cat := catalog.New(catalog.DefaultProducts(), catalog.DefaultOffers())

	presenter := web.NewLogPresenter(l)
	selManager := selection.New(l, cat, store, presenter)

	orderManager := order.New(order.Conf{
		L:         l,
		Rules:     validate.DefaultRules(),
		ETA:       order.DefaultETAConfig(),
		Presenter: presenter,
	}, selManager, store, orderid.New())

	conf := web.Conf{
		L:                 l,
		ServerLogger:      log.New(io.Discard, "", 0),
		Host:              "localhost",
		Port:              "0",
		ReadHeaderTimeout: time.Second,
		LivenessEndpoint:  "/liveness",
	}

	srv, err := web.New(context.Background(), conf, cat, selManager, orderManager)
	require.NoError(t, err)

	return srv
}

func do(t *testing.T, srv *web.Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader

	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	return rec
}

func validOrderBody() map[string]string {
	return map[string]string{
		"name":     "Ravi Kumar",
		"phone":    "9876543210",
		"address":  "12 MG Road, Indiranagar",
		"city":     "Bengaluru",
		"pin":      "560038",
		"payment":  "upi",
		"quantity": "2",
	}
}

func TestLiveness(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/liveness", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCatalogEndpoints(t *testing.T) {
	srv := newTestServer(t)

	t.Run("List products", func(t *testing.T) {
		rec := do(t, srv, http.MethodGet, "/api/products/v1", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var products []catalog.Product
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
		assert.NotEmpty(t, products)
	})

	t.Run("Search", func(t *testing.T) {
		rec := do(t, srv, http.MethodGet, "/api/products/v1?q=monk", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var products []catalog.Product
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
		require.Len(t, products, 1)
		assert.Equal(t, "rum-old-monk", products[0].ID)
	})

	t.Run("Get one product", func(t *testing.T) {
		rec := do(t, srv, http.MethodGet, "/api/products/v1/rum-old-monk", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Unknown product", func(t *testing.T) {
		rec := do(t, srv, http.MethodGet, "/api/products/v1/nope", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Offers", func(t *testing.T) {
		rec := do(t, srv, http.MethodGet, "/api/offers/v1", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestOrderFlow(t *testing.T) {
	srv := newTestServer(t)

	t.Run("Order without selection is a precondition failure", func(t *testing.T) {
		rec := do(t, srv, http.MethodPost, "/api/orders/v1", validOrderBody())
		assert.Equal(t, http.StatusPreconditionFailed, rec.Code)
	})

	t.Run("Select a product", func(t *testing.T) {
		rec := do(t, srv, http.MethodPut, "/api/selection/v1", map[string]string{"product_id": "rum-old-monk"})
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = do(t, srv, http.MethodGet, "/api/selection/v1", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Selecting an unknown product is a 404", func(t *testing.T) {
		rec := do(t, srv, http.MethodPut, "/api/selection/v1", map[string]string{"product_id": "nope"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Invalid form surfaces the field mapping", func(t *testing.T) {
		body := validOrderBody()
		body["pin"] = "12345"

		rec := do(t, srv, http.MethodPost, "/api/orders/v1", body)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var fields map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fields))
		require.Len(t, fields, 1)
		assert.Contains(t, fields, "pin")
	})

	t.Run("Valid order books and persists", func(t *testing.T) {
		rec := do(t, srv, http.MethodPost, "/api/orders/v1", validOrderBody())
		require.Equal(t, http.StatusCreated, rec.Code)

		var booking order.Booking
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &booking))
		assert.Equal(t, order.StatusConfirmed, booking.Status)
		assert.Equal(t, 1299*2, booking.TotalAmount)

		rec = do(t, srv, http.MethodGet, "/api/bookings/v1/current", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var stored order.Booking
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stored))
		assert.Equal(t, booking.ID, stored.ID)
	})

	t.Run("Clear selection", func(t *testing.T) {
		rec := do(t, srv, http.MethodDelete, "/api/selection/v1", nil)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = do(t, srv, http.MethodGet, "/api/selection/v1", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestBookingAbsent(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/api/bookings/v1/current", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
