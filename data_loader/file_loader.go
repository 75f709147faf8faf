package data_loader

import (
	"encoding/json"
	"os"
	"path"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pyopensci/site-backend/configuration"
	"github.com/pyopensci/site-backend/content"
)

// ContentSet is the on-disk shape of a content file
type ContentSet struct {
	Authors []content.Author   `json:"authors"`
	Posts   []content.BlogPost `json:"posts"`
	Events  []content.Event    `json:"events"`
}

// FileLoader implements DataLoader and will load content records from a JSON file
type FileLoader struct {
	config configuration.FileLoaderConf
}

// Init initialises the file loader
func (f *FileLoader) Init(conf interface{}) error {
	f.config = conf.(configuration.FileLoaderConf)
	return nil
}

// LoadIntoStore will load, unmarshal and copy content records into the stores
func (f *FileLoader) LoadIntoStore(stores content.Stores) error {
	set := ContentSet{}

	thisSet, err := os.ReadFile(f.contentPath())
	if err != nil {
		dataLogger.WithFields(logrus.Fields{
			"filename": f.config.FileName,
			"error":    err,
		}).Error("Load failure")
		return err
	}

	if jsErr := json.Unmarshal(thisSet, &set); jsErr != nil {
		dataLogger.WithField("error", jsErr).Error("Couldn't unmarshal content set")
		return jsErr
	}

	var loaded int
	for i := range set.Authors {
		if inputErr := stores.Authors.SetKey(set.Authors[i].ID, set.Authors[i]); inputErr != nil {
			dataLogger.WithField("error", inputErr).Error("Couldn't store author")
		} else {
			loaded += 1
		}
	}
	for i := range set.Posts {
		if inputErr := stores.Posts.SetKey(set.Posts[i].ID, set.Posts[i]); inputErr != nil {
			dataLogger.WithField("error", inputErr).Error("Couldn't store blog post")
		} else {
			loaded += 1
		}
	}
	for i := range set.Events {
		if inputErr := stores.Events.SetKey(set.Events[i].ID, set.Events[i]); inputErr != nil {
			dataLogger.WithField("error", inputErr).Error("Couldn't store event")
		} else {
			loaded += 1
		}
	}

	dataLogger.WithField("filename", f.config.FileName).Infof("Loaded %d content records", loaded)
	return nil
}

// Flush backs the current content file up, then rewrites it from the stores
func (f *FileLoader) Flush(stores content.Stores) error {
	oldSet, err := os.ReadFile(f.contentPath())
	if err != nil {
		dataLogger.WithFields(logrus.Fields{
			"filename": f.config.FileName,
			"error":    err,
		}).Error("load failed!")
		return err
	}

	ts := strconv.Itoa(int(time.Now().Unix()))
	bkFilename := "content_backup_" + ts + ".json"
	bkLocation := path.Join(f.config.ContentDir, bkFilename)

	if wErr := os.WriteFile(bkLocation, oldSet, 0644); wErr != nil {
		dataLogger.WithFields(logrus.Fields{
			"bk_filename": bkFilename,
			"error":       wErr,
		}).Error("backup failed! ", wErr)
		return wErr
	}

	newSet := ContentSet{
		Authors: content.AuthorsFromStore(stores.Authors),
		Posts:   content.PostsFromStore(stores.Posts),
		Events:  content.EventsFromStore(stores.Events),
	}

	asJson, encErr := json.MarshalIndent(newSet, "", "    ")
	if encErr != nil {
		dataLogger.WithField("error", encErr).Error("Encoding failed!")
		return encErr
	}

	if w2Err := os.WriteFile(f.contentPath(), asJson, 0644); w2Err != nil {
		dataLogger.WithField("error", w2Err).Error("flush failed!")
		return w2Err
	}

	return nil
}

func (f *FileLoader) contentPath() string {
	if f.config.ContentDir == "" {
		return f.config.FileName
	}
	return path.Join(f.config.ContentDir, f.config.FileName)
}
