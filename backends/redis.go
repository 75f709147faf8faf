package backends

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/TykTechnologies/storage/temporal/connector"
	temporal "github.com/TykTechnologies/storage/temporal/keyvalue"
	"github.com/TykTechnologies/storage/temporal/model"

	"github.com/pyopensci/site-backend/configuration"
)

var redisLogger = log.WithField("prefix", "REDIS STORE")

// RedisBackend implements content.Store on a redis key-value connection,
// values are stored as JSON strings under a per-kind key prefix
type RedisBackend struct {
	kv        temporal.KeyValue
	config    *configuration.RedisSettings
	KeyPrefix string
}

// SetDb lets callers reuse an existing key-value connection
func (r *RedisBackend) SetDb(kv temporal.KeyValue) {
	r.kv = kv
	redisLogger.Info("Set KV store")
}

// Connect establishes the redis connection if one is not already set
func (r *RedisBackend) Connect() (temporal.KeyValue, error) {
	if r.kv != nil {
		return r.kv, nil
	}

	opts := &model.RedisOptions{
		Username:         r.config.Username,
		Password:         r.config.Password,
		Host:             r.config.Host,
		Port:             r.config.Port,
		Timeout:          r.config.Timeout,
		Addrs:            r.config.Addrs,
		MasterName:       r.config.MasterName,
		SentinelPassword: r.config.SentinelPassword,
		Database:         r.config.Database,
		MaxActive:        r.config.MaxActive,
		EnableCluster:    r.config.EnableCluster,
	}

	tls := &model.TLS{
		Enable:             r.config.UseSSL,
		InsecureSkipVerify: r.config.SSLInsecureSkipVerify,
	}

	conn, err := connector.NewConnector(model.RedisV9Type, model.WithRedisConfig(opts), model.WithTLS(tls))
	if err != nil {
		redisLogger.WithField("error", err).Error("Couldn't connect to redis")
		return nil, err
	}

	kv, err := temporal.NewKeyValue(conn)
	if err != nil {
		redisLogger.WithField("error", err).Error("Couldn't build key-value store")
		return nil, err
	}

	r.kv = kv
	return kv, nil
}

func (r *RedisBackend) fixKey(keyName string) string {
	return r.KeyPrefix + keyName
}

func (r *RedisBackend) cleanKey(keyName string) string {
	return strings.TrimPrefix(keyName, r.KeyPrefix)
}

func (r *RedisBackend) hashKey(in string) string {
	// keys are not hashed in this store
	return in
}

// Init sets up the redis connection from a configuration.RedisSettings
func (r *RedisBackend) Init(config interface{}) error {
	asJ, _ := json.Marshal(config)
	fixedConf := configuration.RedisSettings{}
	if err := json.Unmarshal(asJ, &fixedConf); err != nil {
		return err
	}
	r.config = &fixedConf

	if _, err := r.Connect(); err != nil {
		return err
	}

	redisLogger.Info("Initialised")
	return nil
}

// SetKey will set the value of a key in redis
func (r *RedisBackend) SetKey(key string, val interface{}) error {
	redisLogger.Debug("Setting key: ", r.fixKey(key))

	asByte, encErr := json.Marshal(val)
	if encErr != nil {
		return encErr
	}

	ctx, cancel := r.opCtx()
	defer cancel()

	if err := r.kv.Set(ctx, r.fixKey(key), string(asByte), 0); err != nil {
		redisLogger.WithField("error", err).Error("Error trying to set value")
		return err
	}

	return nil
}

// GetKey will decode the value of a key into target
func (r *RedisBackend) GetKey(key string, target interface{}) error {
	redisLogger.Debug("Getting: ", r.fixKey(key))

	ctx, cancel := r.opCtx()
	defer cancel()

	val, err := r.kv.Get(ctx, r.fixKey(key))
	if err != nil {
		redisLogger.WithField("error", err).Debug("Error trying to get value")
		return err
	}

	return json.Unmarshal([]byte(val), target)
}

// GetAll returns every value stored under this backend's prefix
func (r *RedisBackend) GetAll() []interface{} {
	target := make([]interface{}, 0)

	ctx, cancel := r.opCtx()
	defer cancel()

	keysAndValues, err := r.kv.GetKeysAndValuesWithFilter(ctx, r.KeyPrefix+"*")
	if err != nil {
		redisLogger.WithField("error", err).Error("Error trying to list values")
		return target
	}

	for _, v := range keysAndValues {
		target = append(target, v)
	}
	return target
}

// DeleteKey removes a key from redis
func (r *RedisBackend) DeleteKey(key string) error {
	redisLogger.Debug("Deleting: ", r.fixKey(key))

	ctx, cancel := r.opCtx()
	defer cancel()

	if err := r.kv.Delete(ctx, r.fixKey(key)); err != nil {
		redisLogger.WithField("error", err).Error("Error trying to delete key")
		return err
	}

	return nil
}

func (r *RedisBackend) opCtx() (context.Context, context.CancelFunc) {
	timeout := 5 * time.Second
	if r.config != nil && r.config.Timeout > 0 {
		timeout = time.Duration(r.config.Timeout) * time.Second
	}
	return context.WithTimeout(context.Background(), timeout)
}
