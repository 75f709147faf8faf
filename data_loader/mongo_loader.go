package data_loader

import (
	"context"
	"time"

	"github.com/TykTechnologies/storage/persistent"

	"github.com/pyopensci/site-backend/content"
)

var mongoPrefix = "mongo"

// MongoLoaderConf is the configuration struct for a MongoLoader
type MongoLoaderConf struct {
	ClientOpts *persistent.ClientOpts
}

// MongoLoader implements DataLoader and will load content records from mongo
type MongoLoader struct {
	config    MongoLoaderConf
	store     persistent.PersistentStorage
	SkipFlush bool
}

// Init initialises the mongo loader
func (m *MongoLoader) Init(conf interface{}) error {
	m.config = conf.(MongoLoaderConf)

	store, err := persistent.NewPersistentStorage(m.config.ClientOpts)
	if err != nil {
		dataLogger.WithError(err).WithField("prefix", mongoPrefix).Error("failed to init MongoDB connection")
		time.Sleep(5 * time.Second)
		return m.Init(conf)
	}

	m.store = store
	return err
}

// Storage exposes the underlying persistent handle so the mongo content
// backends can share the connection
func (m *MongoLoader) Storage() persistent.PersistentStorage {
	return m.store
}

// LoadIntoStore will load and copy every content record into the stores
func (m *MongoLoader) LoadIntoStore(stores content.Stores) error {
	var authors []content.Author
	var posts []content.BlogPost
	var events []content.Event

	ctx := context.Background()

	if err := m.store.Query(ctx, &content.Author{}, &authors, nil); err != nil {
		dataLogger.Error("error reading authors from mongo: " + err.Error())
		return err
	}
	if err := m.store.Query(ctx, &content.BlogPost{}, &posts, nil); err != nil {
		dataLogger.Error("error reading blog posts from mongo: " + err.Error())
		return err
	}
	if err := m.store.Query(ctx, &content.Event{}, &events, nil); err != nil {
		dataLogger.Error("error reading events from mongo: " + err.Error())
		return err
	}

	for i := range authors {
		if inputErr := stores.Authors.SetKey(authors[i].ID, authors[i]); inputErr != nil {
			dataLogger.WithField("error", inputErr).Error("Couldn't store author")
		}
	}
	for i := range posts {
		if inputErr := stores.Posts.SetKey(posts[i].ID, posts[i]); inputErr != nil {
			dataLogger.WithField("error", inputErr).Error("Couldn't store blog post")
		}
	}
	for i := range events {
		if inputErr := stores.Events.SetKey(events[i].ID, events[i]); inputErr != nil {
			dataLogger.WithField("error", inputErr).Error("Couldn't store event")
		}
	}

	dataLogger.Info("Loaded content from Mongo")
	return nil
}

// Flush rewrites the mongo collections from the stores, so deletions made
// against the stores land in mongo as well
func (m *MongoLoader) Flush(stores content.Stores) error {
	if m.SkipFlush {
		return nil
	}

	ctx := context.Background()

	if err := m.store.Drop(ctx, &content.Author{}); err != nil {
		dataLogger.WithError(err).Error("emptying authors collection")
		return err
	}
	if err := m.store.Drop(ctx, &content.BlogPost{}); err != nil {
		dataLogger.WithError(err).Error("emptying blog posts collection")
		return err
	}
	if err := m.store.Drop(ctx, &content.Event{}); err != nil {
		dataLogger.WithError(err).Error("emptying events collection")
		return err
	}

	for _, author := range content.AuthorsFromStore(stores.Authors) {
		a := author
		if err := m.store.Insert(ctx, &a); err != nil {
			dataLogger.WithError(err).Error("error refreshing author records in mongo")
			return err
		}
	}
	for _, post := range content.PostsFromStore(stores.Posts) {
		p := post
		if err := m.store.Insert(ctx, &p); err != nil {
			dataLogger.WithError(err).Error("error refreshing blog post records in mongo")
			return err
		}
	}
	for _, event := range content.EventsFromStore(stores.Events) {
		e := event
		if err := m.store.Insert(ctx, &e); err != nil {
			dataLogger.WithError(err).Error("error refreshing event records in mongo")
			return err
		}
	}

	return nil
}
