package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/daarukart/storefront/internal/catalog"
	"github.com/daarukart/storefront/internal/config"
	"github.com/daarukart/storefront/internal/idgen/orderid"
	"github.com/daarukart/storefront/internal/logger"
	"github.com/daarukart/storefront/internal/order"
	"github.com/daarukart/storefront/internal/selection"
	"github.com/daarukart/storefront/internal/storage/localstore"
	"github.com/daarukart/storefront/internal/transport/web"
	"github.com/daarukart/storefront/internal/validate"
)

func newDriver(conf config.Config) (localstore.Driver, error) {
	if conf.StorePath == "" {
		return localstore.NewMemory(0), nil
	}

	driver, err := localstore.NewFile(conf.StorePath)
	if err != nil {
		return nil, fmt.Errorf("open file store: %w", err)
	}

	return driver, nil
}

func Run(l *logger.Logger, conf config.Config) error {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGHUP,
	)
	defer cancel()

	driver, err := newDriver(conf)
	if err != nil {
		return fmt.Errorf("init store driver: %w", err)
	}

	store := localstore.New(l, driver)
	cat := catalog.New(catalog.DefaultProducts(), catalog.DefaultOffers())

	l.LogInfo("Catalog loaded with %d products and %d offers", len(cat.Products()), len(cat.Offers()))

	presenter := web.NewLogPresenter(l)
	selManager := selection.New(l, cat, store, presenter)

	orderManager := order.New(order.Conf{
		L:         l,
		Rules:     validate.DefaultRules(),
		ETA:       order.DefaultETAConfig(),
		Presenter: presenter,
	}, selManager, store, orderid.New())

	webConf := web.Conf{
		L:                 l,
		ServerLogger:      log.Default(),
		Host:              conf.HTTPHost,
		Port:              conf.HTTPPort,
		ReadHeaderTimeout: conf.ReadHeaderTimeout,
		LivenessEndpoint:  "/liveness",
	}

	srv, err := web.New(ctx, webConf, cat, selManager, orderManager)
	if err != nil {
		return fmt.Errorf("init http server: %w", err)
	}

	//nolint:contextcheck
	go func() {
		<-ctx.Done()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*4) //nolint:gomnd
		defer cancel()

		if err := srv.Srv().Shutdown(ctx); err != nil {
			l.LogErrorf("Failed to stop http server: %v", err.Error())
		}
	}()

	l.LogInfo("Storefront is running on %v:%v...", webConf.Host, webConf.Port)

	if err := srv.Srv().ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		l.LogErrorf("Failed to run http server: %v", err.Error())

		cancel()
	}

	l.LogInfo("Storefront stopped gracefully")

	return nil
}
