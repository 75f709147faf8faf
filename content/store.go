package content

// Store is the k/v contract every content backend must satisfy. Backends
// need only be k/v stores, richer querying happens in the selection helpers.
type Store interface {
	Init(config interface{}) error
	SetKey(key string, val interface{}) error
	GetKey(key string, target interface{}) error
	GetAll() []interface{}
	DeleteKey(key string) error
}

// Stores groups the per-kind stores the service runs with
type Stores struct {
	Posts   Store
	Events  Store
	Authors Store
}
