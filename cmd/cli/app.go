package cli

import (
	"context"

	"balance_gateway/pkg/config"
	"balance_gateway/pkg/repository"
	"balance_gateway/pkg/service"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type app struct {
	cfg     *config.Config
	log     *logrus.Logger
	service *service.Service
	close   func()
}

func newLogger(level string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(new(logrus.JSONFormatter))
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}

// newApp loads config and wires repository -> service.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(configDir)
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	log := newLogger(cfg.Log.Level)
	logrus.SetFormatter(log.Formatter)
	logrus.SetLevel(log.Level)

	a := &app{cfg: cfg, log: log, close: func() {}}

	repos := repository.NewRepository(nil)
	if dbCfg := cfg.RepositoryConfig(); dbCfg.Enabled() {
		db, err := repository.NewPostgresDB(ctx, dbCfg)
		if err != nil {
			return nil, err
		}
		if err := repository.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		repos = repository.NewRepository(db)
		a.close = func() { db.Close() }
		log.Info("reconciliation store: postgres")
	} else {
		log.Info("reconciliation store: memory")
	}

	a.service, err = service.NewService(cfg.BackendConfig(), repos, log)
	if err != nil {
		a.close()
		return nil, err
	}
	return a, nil
}
