package web

import (
	"context"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/daarukart/storefront/internal/catalog"
	"github.com/daarukart/storefront/internal/logger"
	"github.com/daarukart/storefront/internal/order"
	"github.com/daarukart/storefront/internal/selection"
)

type Server struct {
	srv       *http.Server
	router    *mux.Router
	l         *logger.Logger
	conf      Conf
	catalog   *catalog.Catalog
	selection *selection.Manager
	orders    *order.Manager
}

type Conf struct {
	L                 *logger.Logger
	ServerLogger      *log.Logger
	Host              string
	Port              string
	ReadHeaderTimeout time.Duration
	LivenessEndpoint  string
}

func New(
	ctx context.Context,
	conf Conf,
	cat *catalog.Catalog,
	selManager *selection.Manager,
	orderManager *order.Manager,
) (*Server, error) {
	router := mux.NewRouter()

	//nolint:exhaustruct
	srv := &http.Server{
		Addr:              net.JoinHostPort(conf.Host, conf.Port),
		ReadHeaderTimeout: conf.ReadHeaderTimeout,
		ErrorLog:          conf.ServerLogger,
		Handler:           router,
		BaseContext: func(listener net.Listener) context.Context {
			return ctx
		},
	}

	server := &Server{
		srv:       srv,
		router:    router,
		l:         conf.L,
		conf:      conf,
		catalog:   cat,
		selection: selManager,
		orders:    orderManager,
	}

	server.addRoutes(router)

	return server, nil
}

func (s *Server) Srv() *http.Server {
	return s.srv
}

// Router exposes the handler for tests.
func (s *Server) Router() http.Handler {
	return s.router
}
