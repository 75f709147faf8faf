package content

import (
	"encoding/json"
)

// Backends hand records back in whatever shape suits them: structs from the
// in-memory store, JSON strings from redis, bson maps from mongo. A JSON
// round-trip normalises all of them.
func decodeRecord(raw interface{}, target interface{}) error {
	switch v := raw.(type) {
	case string:
		return json.Unmarshal([]byte(v), target)
	case []byte:
		return json.Unmarshal(v, target)
	default:
		asJSON, err := json.Marshal(v)
		if err != nil {
			return err
		}
		return json.Unmarshal(asJSON, target)
	}
}

// PostsFromStore reads every blog post out of a store
func PostsFromStore(store Store) []BlogPost {
	posts := []BlogPost{}
	for _, raw := range store.GetAll() {
		post := BlogPost{}
		if err := decodeRecord(raw, &post); err != nil {
			log.WithField("error", err).Error("Couldn't decode blog post record")
			continue
		}
		posts = append(posts, post)
	}
	return posts
}

// EventsFromStore reads every event out of a store
func EventsFromStore(store Store) []Event {
	events := []Event{}
	for _, raw := range store.GetAll() {
		event := Event{}
		if err := decodeRecord(raw, &event); err != nil {
			log.WithField("error", err).Error("Couldn't decode event record")
			continue
		}
		events = append(events, event)
	}
	return events
}

// AuthorsFromStore reads every author out of a store
func AuthorsFromStore(store Store) []Author {
	authors := []Author{}
	for _, raw := range store.GetAll() {
		author := Author{}
		if err := decodeRecord(raw, &author); err != nil {
			log.WithField("error", err).Error("Couldn't decode author record")
			continue
		}
		authors = append(authors, author)
	}
	return authors
}

// FindPostBySlug returns the post published under slug
func FindPostBySlug(posts []BlogPost, slug string) (BlogPost, bool) {
	for _, p := range posts {
		if p.Slug == slug {
			return p, true
		}
	}
	return BlogPost{}, false
}

// FindEventBySlug returns the event published under slug
func FindEventBySlug(events []Event, slug string) (Event, bool) {
	for _, e := range events {
		if e.Slug == slug {
			return e, true
		}
	}
	return Event{}, false
}

// FindAuthorBySlug returns the author known by slug
func FindAuthorBySlug(authors []Author, slug string) (Author, bool) {
	for _, a := range authors {
		if a.Slug == slug {
			return a, true
		}
	}
	return Author{}, false
}
