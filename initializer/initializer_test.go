package initializer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pyopensci/site-backend/backends"
	"github.com/pyopensci/site-backend/configuration"
)

func TestInitStoresDefaultsToMemory(t *testing.T) {
	conf := &configuration.Configuration{}

	stores := InitStores(conf, nil)

	assert.IsType(t, &backends.InMemoryBackend{}, stores.Posts)
	assert.IsType(t, &backends.InMemoryBackend{}, stores.Events)
	assert.IsType(t, &backends.InMemoryBackend{}, stores.Authors)

	// the stores must be usable immediately
	assert.Nil(t, stores.Posts.SetKey("k", "v"))
}

func TestInitStoresAreIndependent(t *testing.T) {
	stores := InitStores(&configuration.Configuration{}, nil)

	assert.Nil(t, stores.Posts.SetKey("same-key", "post"))
	assert.Nil(t, stores.Events.SetKey("same-key", "event"))

	var got string
	assert.Nil(t, stores.Posts.GetKey("same-key", &got))
	assert.Equal(t, "post", got)
}
