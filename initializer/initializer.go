package initializer

import (
	"github.com/TykTechnologies/storage/persistent"
	"github.com/TykTechnologies/storage/persistent/model"
	"github.com/sirupsen/logrus"

	"github.com/pyopensci/site-backend/backends"
	"github.com/pyopensci/site-backend/configuration"
	"github.com/pyopensci/site-backend/content"
	logger "github.com/pyopensci/site-backend/log"
)

var log = logger.Get()
var initializerLogger = log.WithField("prefix", "INITIALIZER")

// ContentStores holds the per-kind stores the handlers read from
var ContentStores content.Stores

// InitStores picks the backing stores from config, new back-ends must be
// registered here. In-memory is the default: file and mongo deployments both
// hydrate it through a data loader, and redis-backed deployments talk to
// redis directly.
func InitStores(conf *configuration.Configuration, mongoStorage persistent.PersistentStorage) content.Stores {
	if conf.Storage != nil && conf.Storage.Redis != nil {
		initializerLogger.Info("Initialising Redis content stores")
		ContentStores = redisStores(conf.Storage.Redis)
	} else if mongoStorage != nil {
		initializerLogger.Info("Initialising Mongo content stores")
		ContentStores = mongoStores(mongoStorage)
	} else {
		initializerLogger.Info("Initialising In-Memory content stores")
		ContentStores = memoryStores()
	}

	return ContentStores
}

func memoryStores() content.Stores {
	stores := content.Stores{
		Posts:   &backends.InMemoryBackend{},
		Events:  &backends.InMemoryBackend{},
		Authors: &backends.InMemoryBackend{},
	}

	stores.Posts.Init(nil)
	stores.Events.Init(nil)
	stores.Authors.Init(nil)

	return stores
}

func redisStores(settings *configuration.RedisSettings) content.Stores {
	stores := content.Stores{
		Posts:   &backends.RedisBackend{KeyPrefix: "content-posts."},
		Events:  &backends.RedisBackend{KeyPrefix: "content-events."},
		Authors: &backends.RedisBackend{KeyPrefix: "content-authors."},
	}

	if err := stores.Posts.Init(settings); err != nil {
		initializerLogger.WithError(err).Fatal("could not initialise posts store")
	}
	if err := stores.Events.Init(settings); err != nil {
		initializerLogger.WithError(err).Fatal("could not initialise events store")
	}
	if err := stores.Authors.Init(settings); err != nil {
		initializerLogger.WithError(err).Fatal("could not initialise authors store")
	}

	return stores
}

func mongoStores(storage persistent.PersistentStorage) content.Stores {
	stores := content.Stores{
		Posts: &backends.MongoBackend{
			Store:  storage,
			NewRow: func() model.DBObject { return &content.BlogPost{} },
		},
		Events: &backends.MongoBackend{
			Store:  storage,
			NewRow: func() model.DBObject { return &content.Event{} },
		},
		Authors: &backends.MongoBackend{
			Store:  storage,
			NewRow: func() model.DBObject { return &content.Author{} },
		},
	}

	stores.Posts.Init(storage)
	stores.Events.Init(storage)
	stores.Authors.Init(storage)

	return stores
}

// SetLogger swaps the shared logger, used by tests and embedders
func SetLogger(newLogger *logrus.Logger) {
	logger.SetLogger(newLogger)
	log = newLogger

	initializerLogger = &logrus.Entry{Logger: log}
	initializerLogger = initializerLogger.Logger.WithField("prefix", "INITIALIZER")
}
