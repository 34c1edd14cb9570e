package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/daarukart/storefront/internal/app"
	"github.com/daarukart/storefront/internal/config"
	"github.com/daarukart/storefront/internal/logger"
)

func main() {
	cliApp := &cli.App{
		Name:  "storefront",
		Usage: "local-store liquor shop demo",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "host", Usage: "bind host, overrides STOREFRONT_HTTP_HOST"},
			&cli.StringFlag{Name: "port", Usage: "bind port, overrides STOREFRONT_HTTP_PORT"},
			&cli.StringFlag{Name: "store", Usage: "path to the JSON store file, overrides STOREFRONT_STORE_PATH"},
			&cli.StringFlag{Name: "log-level", Usage: "logrus level, overrides STOREFRONT_LOG_LEVEL"},
		},
		Action: run,
	}

	if err := cliApp.Run(os.Args); err != nil {
		logrus.WithError(err).Error("Failed to run app")
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	conf, err := config.Load()
	if err != nil {
		return err
	}

	if v := c.String("host"); v != "" {
		conf.HTTPHost = v
	}

	if v := c.String("port"); v != "" {
		conf.HTTPPort = v
	}

	if v := c.String("store"); v != "" {
		conf.StorePath = v
	}

	if v := c.String("log-level"); v != "" {
		conf.LogLevel = v
	}

	backend := logrus.New()
	backend.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(conf.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}

	backend.SetLevel(level)

	return app.Run(logger.New(backend), conf)
}
