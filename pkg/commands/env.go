package commands

import (
	"go.uber.org/zap"

	"github.com/2yum7/forword/pkg/app"
	"github.com/2yum7/forword/pkg/logging"
	"github.com/2yum7/forword/pkg/store"
)

// env is what every command needs: settings, a logger and the journal.
type env struct {
	cfg     store.Config
	log     *zap.Logger
	persist store.Persistence
	svc     *app.Service
}

// load reads config, builds the logger and opens the journal. When
// logToFile is set and no log_file is configured, logging is discarded so
// neither the full screen editor nor the stdio protocol is disturbed.
func load(logToFile bool) (*env, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}

	log := zap.NewNop()
	if !logToFile || cfg.LogFile() != "" {
		log, err = logging.New(logging.Options{Level: cfg.LogLevel(), File: cfg.LogFile()})
		if err != nil {
			return nil, err
		}
	}

	p, err := store.LoadWithLogger(cfg, log)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, log: log, persist: p, svc: app.NewService(p)}, nil
}

func (e *env) close() {
	_ = e.log.Sync()
}
