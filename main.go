package main

import (
	"crypto/tls"
	"flag"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/pyopensci/site-backend/configuration"
	"github.com/pyopensci/site-backend/content"
	"github.com/pyopensci/site-backend/data_loader"
	"github.com/pyopensci/site-backend/initializer"
	logger "github.com/pyopensci/site-backend/log"
	"github.com/pyopensci/site-backend/providers"
)

var log = logger.Get()
var mainLogger = log.WithField("prefix", "MAIN")

var config configuration.Configuration
var stores content.Stores
var loader data_loader.DataLoader

// ContentFilename is the JSON document file storage reads and flushes
var ContentFilename = "content.json"

var confFile = flag.String("c", "pyos.conf", "Path to the config file")

func contentStores() content.Stores {
	return stores
}

// flushStores pushes the in-memory record set back to the data loader's
// backing source after every admin write. Redis stores persist on their
// own, so there is nothing to flush.
func flushStores(store content.Store) error {
	if loader == nil {
		return nil
	}
	return loader.Flush(stores)
}

func initialise() {
	configuration.LoadConfig(*confFile, &config)

	providers.SetTimeout(config.Sources.TimeoutSeconds)
	if config.Sources.ContributorsURL != "" {
		providers.ContributorsURL = config.Sources.ContributorsURL
	}
	if config.Sources.PackagesURL != "" {
		providers.PackagesURL = config.Sources.PackagesURL
	}

	storageType := configuration.FILE
	if config.Storage != nil {
		storageType = config.Storage.StorageType
	}

	var loaderErr error
	loader, loaderErr = data_loader.CreateDataLoader(config, ContentFilename)
	if loaderErr != nil {
		mainLogger.WithError(loaderErr).Fatal("Could not create data loader")
	}

	if storageType == configuration.MONGO {
		mongoLoader, ok := loader.(*data_loader.MongoLoader)
		if !ok {
			mainLogger.Fatal("Mongo storage selected but loader is not mongo")
		}
		stores = initializer.InitStores(&config, mongoLoader.Storage())
		return
	}

	stores = initializer.InitStores(&config, nil)

	if loadErr := loader.LoadIntoStore(stores); loadErr != nil {
		mainLogger.WithError(loadErr).Error("Could not load content into stores")
	}
}

func setupRouter() *mux.Router {
	// templates emit trailing-slash detail links, keep both forms routable
	router := mux.NewRouter().StrictSlash(true)

	router.HandleFunc("/health", HandleHealthCheck).Methods("GET")

	router.HandleFunc("/", HandleHome).Methods("GET")
	router.HandleFunc("/blog/", HandleBlogIndex).Methods("GET")
	router.HandleFunc("/blog/{slug}", HandleBlogPage).Methods("GET")
	router.HandleFunc("/events/", HandleEventsIndex).Methods("GET")
	router.HandleFunc("/events/{slug}", HandleEventPage).Methods("GET")

	adminRouter := router.PathPrefix("/api").Subrouter()
	adminRouter.Use(IsAuthenticated)

	adminRouter.HandleFunc("/posts", HandleGetPostList).Methods("GET")
	adminRouter.HandleFunc("/posts", HandleAddPost).Methods("POST")
	adminRouter.HandleFunc("/posts/{id}", HandleGetPost).Methods("GET")
	adminRouter.HandleFunc("/posts/{id}", HandleUpdatePost).Methods("PUT")
	adminRouter.HandleFunc("/posts/{id}", HandleDeletePost).Methods("DELETE")

	adminRouter.HandleFunc("/events", HandleGetEventList).Methods("GET")
	adminRouter.HandleFunc("/events", HandleAddEvent).Methods("POST")
	adminRouter.HandleFunc("/events/{id}", HandleGetEvent).Methods("GET")
	adminRouter.HandleFunc("/events/{id}", HandleUpdateEvent).Methods("PUT")
	adminRouter.HandleFunc("/events/{id}", HandleDeleteEvent).Methods("DELETE")

	adminRouter.HandleFunc("/authors", HandleGetAuthorList).Methods("GET")
	adminRouter.HandleFunc("/authors", HandleAddAuthor).Methods("POST")
	adminRouter.HandleFunc("/authors/{id}", HandleGetAuthor).Methods("GET")
	adminRouter.HandleFunc("/authors/{id}", HandleUpdateAuthor).Methods("PUT")
	adminRouter.HandleFunc("/authors/{id}", HandleDeleteAuthor).Methods("DELETE")

	return router
}

func main() {
	flag.Parse()
	initialise()

	router := setupRouter()
	listenAddr := ":" + strconv.Itoa(config.Port)

	if config.HttpServerOptions.UseSSL {
		mainLogger.Info("--> Using SSL (https) for ", listenAddr)

		server := &http.Server{
			Addr:    listenAddr,
			Handler: router,
			TLSConfig: &tls.Config{
				InsecureSkipVerify: config.HttpServerOptions.SSLInsecureSkipVerify,
			},
		}

		if err := server.ListenAndServeTLS(config.HttpServerOptions.CertFile, config.HttpServerOptions.KeyFile); err != nil {
			mainLogger.WithError(err).Fatal("Server stopped")
		}
		return
	}

	mainLogger.Info("--> Standard listener (http) for ", listenAddr)

	if err := http.ListenAndServe(listenAddr, router); err != nil {
		mainLogger.WithError(err).Fatal("Server stopped")
	}
}
