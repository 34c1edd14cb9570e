package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/daarukart/storefront/internal/order"
	"github.com/daarukart/storefront/internal/selection"
)

type selectionRequest struct {
	ProductID string `json:"product_id"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.l.LogErrorf("Could not encode response: %v", err.Error())
	}
}

func (s *Server) listProductsHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if q := query.Get("q"); q != "" {
		s.writeJSON(w, http.StatusOK, s.catalog.Search(q))

		return
	}

	if category := query.Get("category"); category != "" {
		s.writeJSON(w, http.StatusOK, s.catalog.FilterByCategory(category))

		return
	}

	s.writeJSON(w, http.StatusOK, s.catalog.Products())
}

func (s *Server) listOffersHandler(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.catalog.Offers())
}

func (s *Server) getProductHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, ok := s.catalog.FindByID(id)
	if !ok {
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: "product not found"})

		return
	}

	s.writeJSON(w, http.StatusOK, product)
}

func (s *Server) getSelectionHandler(w http.ResponseWriter, _ *http.Request) {
	product, ok := s.selection.Get()
	if !ok {
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: "no product selected"})

		return
	}

	s.writeJSON(w, http.StatusOK, product)
}

func (s *Server) putSelectionHandler(w http.ResponseWriter, r *http.Request) {
	var req selectionRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}

	if err := s.selection.Select(req.ProductID); err != nil {
		if errors.Is(err, selection.ErrProductNotFound) {
			s.writeJSON(w, http.StatusNotFound, errorResponse{Error: "product not found"})

			return
		}

		s.l.LogErrorf("Could not persist selection: %v", err.Error())
		s.writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "selection could not be saved"})

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) deleteSelectionHandler(w http.ResponseWriter, _ *http.Request) {
	s.selection.Clear()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) createOrderHandler(w http.ResponseWriter, r *http.Request) {
	var input order.FormInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}

	booking, err := s.orders.Process(input)
	if inputErr := order.IsInputError(err); inputErr != nil {
		s.writeJSON(w, http.StatusBadRequest, inputErr.Fields())

		return
	}

	if errors.Is(err, order.ErrNoSelection) {
		s.writeJSON(w, http.StatusPreconditionFailed, errorResponse{Error: err.Error()})

		return
	}

	if errors.Is(err, order.ErrSaveBooking) {
		s.writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})

		return
	}

	if err != nil {
		s.l.LogErrorf("Could not process order: %v", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	s.writeJSON(w, http.StatusCreated, booking)
}

func (s *Server) currentBookingHandler(w http.ResponseWriter, _ *http.Request) {
	booking, ok := s.orders.CurrentBooking()
	if !ok {
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: "no booking found"})

		return
	}

	s.writeJSON(w, http.StatusOK, booking)
}

func (s *Server) livenessHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
