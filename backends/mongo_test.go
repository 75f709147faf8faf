package backends

import (
	"testing"

	"github.com/TykTechnologies/storage/persistent/model"
	"github.com/stretchr/testify/assert"

	"github.com/pyopensci/site-backend/content"
)

// TestMongoInit tests the Init method of the MongoBackend
func TestMongoInit(t *testing.T) {
	m := MongoBackend{
		NewRow: func() model.DBObject { return &content.BlogPost{} },
	}

	err := m.Init(nil)

	assert.Nil(t, err)
}

func TestMongoInitWithoutRowFactory(t *testing.T) {
	m := MongoBackend{}

	err := m.Init(nil)

	assert.NotNil(t, err)
}

func TestMongoSetKeyRejectsPlainValues(t *testing.T) {
	m := MongoBackend{
		NewRow: func() model.DBObject { return &content.BlogPost{} },
	}

	err := m.SetKey("k", "not a DBObject")

	assert.NotNil(t, err)
}
