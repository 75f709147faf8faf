package backends

import (
	"context"
	"errors"

	"github.com/TykTechnologies/storage/persistent"
	"github.com/TykTechnologies/storage/persistent/model"
)

var mongoLogger = log.WithField("prefix", "MONGO STORE")

// MongoBackend implements content.Store on a mongo collection. NewRow must
// produce an empty record of the collection's type so queries can be routed
// to the right collection and decoded into the right shape.
type MongoBackend struct {
	Store  persistent.PersistentStorage
	NewRow func() model.DBObject
}

// Init expects an already connected persistent storage handle
func (m *MongoBackend) Init(config interface{}) error {
	if store, ok := config.(persistent.PersistentStorage); ok {
		m.Store = store
	}
	if m.NewRow == nil {
		return errors.New("mongo backend needs a row factory")
	}
	return nil
}

// SetKey upserts the record stored under key
func (m *MongoBackend) SetKey(key string, val interface{}) error {
	if m.Store == nil {
		return errors.New("mongo store not initialised")
	}

	row, err := m.toRow(val)
	if err != nil {
		return err
	}

	// drop any stale copy first, the content ID is the identity, not _id
	delErr := m.Store.Delete(context.Background(), m.NewRow(), model.DBM{"id": key})
	if delErr != nil {
		mongoLogger.WithError(delErr).Debug("no previous record to replace")
	}

	if err := m.Store.Insert(context.Background(), row); err != nil {
		mongoLogger.WithError(err).Error("error setting content record in mongo")
		return err
	}

	return nil
}

// GetKey decodes the record stored under key into target
func (m *MongoBackend) GetKey(key string, target interface{}) error {
	if m.Store == nil {
		return errors.New("mongo store not initialised")
	}

	err := m.Store.Query(context.Background(), m.NewRow(), target, model.DBM{"id": key})
	if err != nil {
		mongoLogger.WithError(err).Debug("error reading content record from mongo")
	}
	return err
}

// GetAll returns every record in the collection
func (m *MongoBackend) GetAll() []interface{} {
	records := []model.DBM{}

	if m.Store == nil {
		mongoLogger.Error("mongo store not initialised")
		return []interface{}{}
	}

	err := m.Store.Query(context.Background(), m.NewRow(), &records, nil)
	if err != nil {
		mongoLogger.Error("error reading content records from mongo: " + err.Error())
	}

	out := make([]interface{}, 0, len(records))
	for _, rec := range records {
		out = append(out, map[string]interface{}(rec))
	}
	return out
}

// DeleteKey removes the record stored under key
func (m *MongoBackend) DeleteKey(key string) error {
	if m.Store == nil {
		return errors.New("mongo store not initialised")
	}

	err := m.Store.Delete(context.Background(), m.NewRow(), model.DBM{"id": key})
	if err != nil {
		mongoLogger.WithError(err).Error("removing content record")
	}
	return err
}

func (m *MongoBackend) toRow(val interface{}) (model.DBObject, error) {
	if row, ok := val.(model.DBObject); ok {
		return row, nil
	}
	return nil, errors.New("value does not implement DBObject")
}
