package web

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
)

// Page identifies one of the storefront views. The shell maps each page to a
// route initializer instead of string-matching paths inside the core.
type Page int

const (
	PageCatalog Page = iota
	PageProduct
	PageOrder
	PageConfirmation
)

func (p Page) String() string {
	switch p {
	case PageCatalog:
		return "catalog"
	case PageProduct:
		return "product"
	case PageOrder:
		return "order"
	case PageConfirmation:
		return "confirmation"
	default:
		return fmt.Sprintf("page(%d)", int(p))
	}
}

func (s *Server) pageInitializer(p Page) func(*mux.Router) {
	switch p {
	case PageCatalog:
		return s.initCatalogPage
	case PageProduct:
		return s.initProductPage
	case PageOrder:
		return s.initOrderPage
	case PageConfirmation:
		return s.initConfirmationPage
	default:
		return nil
	}
}

func (s *Server) addRoutes(r *mux.Router) {
	for _, page := range []Page{PageCatalog, PageProduct, PageOrder, PageConfirmation} {
		init := s.pageInitializer(page)
		if init == nil {
			continue
		}

		init(r)
		s.l.LogInfo("web: routes registered for %s page", page)
	}

	r.Handle(
		s.conf.LivenessEndpoint,
		s.applyMiddlewares(http.HandlerFunc(s.livenessHandler), s.loggerMiddleware(), s.recoverMiddleware()),
	).Methods(http.MethodGet)
}

func (s *Server) initCatalogPage(r *mux.Router) {
	r.Handle("/api/products/v1", s.handler(s.listProductsHandler)).Methods(http.MethodGet)
	r.Handle("/api/offers/v1", s.handler(s.listOffersHandler)).Methods(http.MethodGet)
}

func (s *Server) initProductPage(r *mux.Router) {
	r.Handle("/api/products/v1/{id}", s.handler(s.getProductHandler)).Methods(http.MethodGet)
	r.Handle("/api/selection/v1", s.handler(s.getSelectionHandler)).Methods(http.MethodGet)
	r.Handle("/api/selection/v1", s.handler(s.putSelectionHandler)).Methods(http.MethodPut)
	r.Handle("/api/selection/v1", s.handler(s.deleteSelectionHandler)).Methods(http.MethodDelete)
}

func (s *Server) initOrderPage(r *mux.Router) {
	r.Handle("/api/orders/v1", s.handler(s.createOrderHandler)).Methods(http.MethodPost)
}

func (s *Server) initConfirmationPage(r *mux.Router) {
	r.Handle("/api/bookings/v1/current", s.handler(s.currentBookingHandler)).Methods(http.MethodGet)
}

func (s *Server) handler(h http.HandlerFunc) http.Handler {
	return s.applyMiddlewares(h, s.loggerMiddleware(), s.recoverMiddleware())
}
