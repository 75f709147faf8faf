package content

import (
	"errors"

	"github.com/gofrs/uuid"

	logger "github.com/pyopensci/site-backend/log"
)

var log = logger.Get()

type HttpError struct {
	Message string
	Code    int
	Error   error
}

// FlushFunc persists the current state of a store back to its loader source
type FlushFunc func(store Store) error

func recordExists(store Store, key string) bool {
	probe := map[string]interface{}{}
	return store.GetKey(key, &probe) == nil
}

// AddPost stores a new blog post. Missing IDs and slugs are generated.
func AddPost(post *BlogPost, store Store, flush FlushFunc) *HttpError {
	if post.ID == "" {
		newID, _ := uuid.NewV4()
		post.ID = newID.String()
	}
	if post.Slug == "" {
		post.Slug = Slugify(post.Title)
	}

	if recordExists(store, post.ID) {
		return &HttpError{
			Message: "Object ID already exists",
			Code:    400,
			Error:   errors.New("duplicate ID"),
		}
	}

	if saveErr := store.SetKey(post.ID, post); saveErr != nil {
		return &HttpError{
			Message: "Create failed",
			Code:    500,
			Error:   saveErr,
		}
	}

	return flushStore(store, flush)
}

// UpdatePost replaces the stored post under key, the IDs must agree
func UpdatePost(key string, post *BlogPost, store Store, flush FlushFunc) *HttpError {
	if post.ID != key {
		return &HttpError{
			Message: "Object ID and URI resource ID do not match",
			Code:    400,
			Error:   errors.New("ID Mismatch"),
		}
	}

	if !recordExists(store, key) {
		return &HttpError{
			Message: "Object ID does not exist, operation not permitted",
			Code:    400,
			Error:   errors.New("not found"),
		}
	}

	if saveErr := store.SetKey(key, post); saveErr != nil {
		return &HttpError{
			Message: "Update failed",
			Code:    500,
			Error:   saveErr,
		}
	}

	return nil
}

// DeletePost removes a post by key
func DeletePost(key string, store Store, flush FlushFunc) *HttpError {
	if !recordExists(store, key) {
		return &HttpError{
			Message: "Object ID does not exist",
			Code:    400,
			Error:   errors.New("not found"),
		}
	}

	if delErr := store.DeleteKey(key); delErr != nil {
		return &HttpError{
			Message: "Delete failed",
			Code:    500,
			Error:   delErr,
		}
	}

	return flushStore(store, flush)
}

// AddEvent stores a new event announcement, defaulting the event type
func AddEvent(event *Event, store Store, flush FlushFunc) *HttpError {
	if event.ID == "" {
		newID, _ := uuid.NewV4()
		event.ID = newID.String()
	}
	if event.Slug == "" {
		event.Slug = Slugify(event.Title)
	}
	if event.EventType == "" {
		event.EventType = EventOther
	}
	if !ValidEventType(event.EventType) {
		return &HttpError{
			Message: "Unknown event type",
			Code:    400,
			Error:   errors.New("invalid event_type: " + event.EventType),
		}
	}

	if recordExists(store, event.ID) {
		return &HttpError{
			Message: "Object ID already exists",
			Code:    400,
			Error:   errors.New("duplicate ID"),
		}
	}

	if saveErr := store.SetKey(event.ID, event); saveErr != nil {
		return &HttpError{
			Message: "Create failed",
			Code:    500,
			Error:   saveErr,
		}
	}

	return flushStore(store, flush)
}

// UpdateEvent replaces the stored event under key
func UpdateEvent(key string, event *Event, store Store, flush FlushFunc) *HttpError {
	if event.ID != key {
		return &HttpError{
			Message: "Object ID and URI resource ID do not match",
			Code:    400,
			Error:   errors.New("ID Mismatch"),
		}
	}
	if event.EventType == "" {
		event.EventType = EventOther
	}
	if !ValidEventType(event.EventType) {
		return &HttpError{
			Message: "Unknown event type",
			Code:    400,
			Error:   errors.New("invalid event_type: " + event.EventType),
		}
	}

	if !recordExists(store, key) {
		return &HttpError{
			Message: "Object ID does not exist, operation not permitted",
			Code:    400,
			Error:   errors.New("not found"),
		}
	}

	if saveErr := store.SetKey(key, event); saveErr != nil {
		return &HttpError{
			Message: "Update failed",
			Code:    500,
			Error:   saveErr,
		}
	}

	return nil
}

// DeleteEvent removes an event by key
func DeleteEvent(key string, store Store, flush FlushFunc) *HttpError {
	if !recordExists(store, key) {
		return &HttpError{
			Message: "Object ID does not exist",
			Code:    400,
			Error:   errors.New("not found"),
		}
	}

	if delErr := store.DeleteKey(key); delErr != nil {
		return &HttpError{
			Message: "Delete failed",
			Code:    500,
			Error:   delErr,
		}
	}

	return flushStore(store, flush)
}

// AddAuthor stores a new author snippet
func AddAuthor(author *Author, store Store, flush FlushFunc) *HttpError {
	if author.ID == "" {
		newID, _ := uuid.NewV4()
		author.ID = newID.String()
	}
	if author.Slug == "" {
		author.Slug = Slugify(author.Name)
	}

	if recordExists(store, author.ID) {
		return &HttpError{
			Message: "Object ID already exists",
			Code:    400,
			Error:   errors.New("duplicate ID"),
		}
	}

	if saveErr := store.SetKey(author.ID, author); saveErr != nil {
		return &HttpError{
			Message: "Create failed",
			Code:    500,
			Error:   saveErr,
		}
	}

	return flushStore(store, flush)
}

// UpdateAuthor replaces the stored author under key
func UpdateAuthor(key string, author *Author, store Store, flush FlushFunc) *HttpError {
	if author.ID != key {
		return &HttpError{
			Message: "Object ID and URI resource ID do not match",
			Code:    400,
			Error:   errors.New("ID Mismatch"),
		}
	}

	if !recordExists(store, key) {
		return &HttpError{
			Message: "Object ID does not exist, operation not permitted",
			Code:    400,
			Error:   errors.New("not found"),
		}
	}

	if saveErr := store.SetKey(key, author); saveErr != nil {
		return &HttpError{
			Message: "Update failed",
			Code:    500,
			Error:   saveErr,
		}
	}

	return nil
}

// DeleteAuthor removes an author by key
func DeleteAuthor(key string, store Store, flush FlushFunc) *HttpError {
	if !recordExists(store, key) {
		return &HttpError{
			Message: "Object ID does not exist",
			Code:    400,
			Error:   errors.New("not found"),
		}
	}

	if delErr := store.DeleteKey(key); delErr != nil {
		return &HttpError{
			Message: "Delete failed",
			Code:    500,
			Error:   delErr,
		}
	}

	return flushStore(store, flush)
}

func flushStore(store Store, flush FlushFunc) *HttpError {
	if flush == nil {
		return nil
	}
	if fErr := flush(store); fErr != nil {
		return &HttpError{
			Message: "flush failed",
			Code:    400,
			Error:   fErr,
		}
	}
	return nil
}
