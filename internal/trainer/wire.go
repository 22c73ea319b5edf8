package trainer

import (
	"context"
	"fmt"

	"github.com/quizzine/engine/internal/config"
	"github.com/quizzine/engine/internal/event"
	"github.com/quizzine/engine/internal/question"
	"github.com/quizzine/engine/internal/remote"
	"github.com/quizzine/engine/internal/store"
)

// FromConfig assembles a Trainer from environment configuration: SQLite
// cache, Mongo remote, AMQP publisher when a broker is configured. The
// returned close function releases all of it.
func FromConfig(ctx context.Context, cfg config.Config, badges BadgeEvaluator) (*Trainer, func(context.Context) error, error) {
	dbPath := cfg.DBPath
	if dbPath == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return nil, nil, err
		}
		dbPath = p
	}

	local, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open local cache: %w", err)
	}

	rs, closeMongo, err := remote.Dial(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		local.Close()
		return nil, nil, err
	}

	var events event.Publisher = event.NopPublisher{}
	if cfg.AMQPURI != "" {
		pub, err := event.NewAMQPPublisher(cfg.AMQPURI, cfg.AMQPExchange)
		if err != nil {
			_ = closeMongo(ctx)
			local.Close()
			return nil, nil, err
		}
		events = pub
	}

	t := New(Options{
		Loader:   question.NewPoolLoader(rs),
		Cache:    local.SessionCache(),
		Outbox:   local.Outbox(),
		Remote:   rs,
		Badges:   badges,
		Events:   events,
		Interval: cfg.OutboxInterval,
	})

	closeAll := func(ctx context.Context) error {
		err := events.Close()
		if merr := closeMongo(ctx); err == nil {
			err = merr
		}
		if serr := local.Close(); err == nil {
			err = serr
		}
		return err
	}
	return t, closeAll, nil
}
