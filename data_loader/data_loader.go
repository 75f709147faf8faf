package data_loader

import (
	"github.com/TykTechnologies/storage/persistent"
	"github.com/sirupsen/logrus"

	"github.com/pyopensci/site-backend/configuration"
	"github.com/pyopensci/site-backend/content"
	logger "github.com/pyopensci/site-backend/log"
)

var log = logger.Get()
var dataLoaderLoggerTag = "CONTENT LOADER"
var dataLogger = log.WithField("prefix", dataLoaderLoggerTag)

// DataLoader is an interface that defines how content is loaded from a
// source into the per-kind content stores
type DataLoader interface {
	Init(conf interface{}) error
	LoadIntoStore(content.Stores) error
	Flush(content.Stores) error
}

func reloadDataLoaderLogger() {
	log = logger.Get()
	dataLogger = &logrus.Entry{Logger: log}
	dataLogger = dataLogger.Logger.WithField("prefix", dataLoaderLoggerTag)
}

// CreateDataLoader builds the loader selected by the storage config, file
// storage is the default
func CreateDataLoader(config configuration.Configuration, contentFilename string) (DataLoader, error) {
	var dataLoader DataLoader
	var loaderConf interface{}
	reloadDataLoaderLogger()

	storageType := configuration.FILE

	if config.Storage != nil {
		storageType = config.Storage.StorageType
	}

	switch storageType {
	case configuration.MONGO:
		dataLoader = &MongoLoader{}

		mongoConf := config.Storage.MongoConf
		connectionConf := persistent.ClientOpts{
			ConnectionString:      mongoConf.MongoURL,
			UseSSL:                mongoConf.MongoUseSSL,
			SSLInsecureSkipVerify: mongoConf.MongoSSLInsecureSkipVerify,
			SessionConsistency:    mongoConf.SessionConsistency,
			Type:                  configuration.GetMongoDriver(mongoConf.Driver),
			DirectConnection:      mongoConf.DirectConnection,
		}

		loaderConf = MongoLoaderConf{
			ClientOpts: &connectionConf,
		}
	default:
		//default: FILE
		dataLoader = &FileLoader{}
		loaderConf = configuration.FileLoaderConf{
			FileName:   contentFilename,
			ContentDir: config.ContentDir,
		}
	}

	err := dataLoader.Init(loaderConf)
	return dataLoader, err
}
