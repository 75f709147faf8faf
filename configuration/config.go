package configuration

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/TykTechnologies/storage/persistent"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"

	logger "github.com/pyopensci/site-backend/log"
)

// EnvPrefix is the prefix for all environment overrides, e.g. PYOS_SECRET
const EnvPrefix = "PYOS"

var failCount int
var log = logger.Get()
var mainLoggerTag = "CONFIG"
var mainLogger = log.WithField("prefix", mainLoggerTag)

const (
	MONGO = "mongo"
	FILE  = "file"
)

// RedisSettings covers the connection pool used by the redis content store
type RedisSettings struct {
	Database              int
	Username              string
	Password              string
	Host                  string
	Port                  int
	Timeout               int
	MaxActive             int
	UseSSL                bool
	SSLInsecureSkipVerify bool
	EnableCluster         bool
	Addrs                 []string
	MasterName            string
	SentinelPassword      string
}

type MongoConf struct {
	DbName                     string `json:"db_name" mapstructure:"db_name"`
	MongoURL                   string `json:"mongo_url" mapstructure:"mongo_url"`
	MongoUseSSL                bool   `json:"mongo_use_ssl" mapstructure:"mongo_use_ssl"`
	MongoSSLInsecureSkipVerify bool   `json:"mongo_ssl_insecure_skip_verify" mapstructure:"mongo_ssl_insecure_skip_verify"`
	SessionConsistency         string `json:"session_consistency" mapstructure:"session_consistency"`
	Driver                     string `json:"driver" mapstructure:"driver"`
	DirectConnection           bool   `json:"direct_connection" mapstructure:"direct_connection"`
}

// Storage configures where content records live. File storage is the
// default, so the content file path is not read from here.
type Storage struct {
	StorageType string         `json:"storage_type" mapstructure:"storage_type"`
	MongoConf   *MongoConf     `json:"mongo" mapstructure:"mongo"`
	Redis       *RedisSettings `json:"redis" mapstructure:"redis"`
}

// FileLoaderConf is the configuration struct for a FileLoader, takes a filename as main init
type FileLoaderConf struct {
	FileName   string
	ContentDir string
}

// Sources configures the remote YAML documents merged into the homepage
type Sources struct {
	ContributorsURL string
	PackagesURL     string
	TimeoutSeconds  int
}

// Configuration holds all configuration settings for the content backend
type Configuration struct {
	Secret            string
	Port              int
	PerPage           int
	ContentDir        string
	Sources           Sources
	HttpServerOptions struct {
		UseSSL                bool
		CertFile              string
		KeyFile               string
		SSLInsecureSkipVerify bool
	}
	SSLInsecureSkipVerify bool
	Storage               *Storage
}

// LoadConfig will load the config from a file
func LoadConfig(filePath string, conf *Configuration) {
	log = logger.Get()
	mainLogger = &logrus.Entry{Logger: log}
	mainLogger = mainLogger.Logger.WithField("prefix", mainLoggerTag)

	configuration, err := os.ReadFile(filePath)
	if err != nil {
		mainLogger.Error("Couldn't load configuration file: ", err)
		failCount += 1
		if failCount < 3 {
			LoadConfig(filePath, conf)
		} else {
			mainLogger.Fatal("Could not open configuration, giving up.")
		}
	} else {
		jsErr := json.Unmarshal(configuration, conf)
		if jsErr != nil {
			mainLogger.Error("Couldn't unmarshal configuration: ", jsErr)
		}
	}

	shouldOmit, omitEnvExist := os.LookupEnv(EnvPrefix + "_OMITCONFIGFILE")
	if omitEnvExist && strings.ToLower(shouldOmit) == "true" {
		*conf = Configuration{}
	}

	if err = envconfig.Process(EnvPrefix, conf); err != nil {
		mainLogger.Errorf("Failed to process config env vars: %v", err)
	}

	applyDefaults(conf)

	mainLogger.Debugf("\nConfig Loaded: %+v \n", conf)
	mainLogger.Debugf("\n Storage conf: %+v \n", conf.Storage)
}

func applyDefaults(conf *Configuration) {
	if conf.Port == 0 {
		conf.Port = 3000
	}
	if conf.PerPage <= 0 {
		conf.PerPage = 10
	}
	if conf.Sources.ContributorsURL == "" {
		conf.Sources.ContributorsURL = "https://raw.githubusercontent.com/pyOpenSci/pyopensci.github.io/main/_data/contributors.yml"
	}
	if conf.Sources.PackagesURL == "" {
		conf.Sources.PackagesURL = "https://raw.githubusercontent.com/pyOpenSci/pyopensci.github.io/main/_data/packages.yml"
	}
	if conf.Sources.TimeoutSeconds <= 0 {
		conf.Sources.TimeoutSeconds = 10
	}
}

// GetMongoDriver returns a valid mongo driver to use, it receives the
// driver set in config, and check its validity
// otherwise default to mongo-go
func GetMongoDriver(driverFromConf string) string {
	if driverFromConf != persistent.Mgo && driverFromConf != persistent.OfficialMongo {
		return persistent.OfficialMongo
	}
	return driverFromConf
}
