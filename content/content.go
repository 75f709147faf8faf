/*
Package content holds the records the site publishes (blog posts, events and
author snippets) plus the operations the views need: CRUD actions against a
pluggable store, and the listing/selection helpers (pagination, tag and year
filters, related-post ranking).
*/
package content

import (
	"time"

	"github.com/TykTechnologies/storage/persistent/model"
)

// EventType values mirror the kinds of events the site announces
const (
	EventWorkshop   = "workshop"
	EventWebinar    = "webinar"
	EventConference = "conference"
	EventMeetup     = "meetup"
	EventOther      = "other"
)

// Author is a reusable byline record referenced by posts and events
type Author struct {
	MID       model.ObjectID `bson:"_id,omitempty" json:"-"`
	ID        string         `bson:"id" json:"id"`
	Name      string         `bson:"name" json:"name"`
	Slug      string         `bson:"slug" json:"slug"`
	Bio       string         `bson:"bio" json:"bio"`
	AvatarURL string         `bson:"avatar_url" json:"avatar_url"`
	Email     string         `bson:"email" json:"email"`
	Website   string         `bson:"website" json:"website"`
	GitHub    string         `bson:"github" json:"github"`
	LinkedIn  string         `bson:"linkedin" json:"linkedin"`
	Mastodon  string         `bson:"mastodon" json:"mastodon"`
	Discord   string         `bson:"discord" json:"discord"`
}

// BlogPost is a single published article
type BlogPost struct {
	MID            model.ObjectID `bson:"_id,omitempty" json:"-"`
	ID             string         `bson:"id" json:"id"`
	Slug           string         `bson:"slug" json:"slug"`
	Title          string         `bson:"title" json:"title"`
	Date           time.Time      `bson:"date" json:"date"`
	LastModified   time.Time      `bson:"last_modified" json:"last_modified"`
	AuthorSlug     string         `bson:"author_slug" json:"author_slug"`
	Excerpt        string         `bson:"excerpt" json:"excerpt"`
	HeaderImage    string         `bson:"header_image" json:"header_image"`
	HeaderImageAlt string         `bson:"header_image_alt" json:"header_image_alt"`
	Body           string         `bson:"body" json:"body"`
	EnableComments bool           `bson:"enable_comments" json:"enable_comments"`
	Tags           []string       `bson:"tags" json:"tags"`
	Live           bool           `bson:"live" json:"live"`
}

// Event is an announcement page with scheduling fields on top of the
// shared article shape
type Event struct {
	MID            model.ObjectID `bson:"_id,omitempty" json:"-"`
	ID             string         `bson:"id" json:"id"`
	Slug           string         `bson:"slug" json:"slug"`
	Title          string         `bson:"title" json:"title"`
	Date           time.Time      `bson:"date" json:"date"`
	LastModified   time.Time      `bson:"last_modified" json:"last_modified"`
	AuthorSlug     string         `bson:"author_slug" json:"author_slug"`
	Excerpt        string         `bson:"excerpt" json:"excerpt"`
	HeaderImage    string         `bson:"header_image" json:"header_image"`
	HeaderImageAlt string         `bson:"header_image_alt" json:"header_image_alt"`
	Body           string         `bson:"body" json:"body"`
	EnableComments bool           `bson:"enable_comments" json:"enable_comments"`
	Tags           []string       `bson:"tags" json:"tags"`
	Live           bool           `bson:"live" json:"live"`

	StartDate time.Time `bson:"start_date" json:"start_date"`
	EndDate   time.Time `bson:"end_date" json:"end_date"`
	Location  string    `bson:"location" json:"location"`
	EventType string    `bson:"event_type" json:"event_type"`
}

func (a Author) GetObjectID() model.ObjectID   { return a.MID }
func (a *Author) SetObjectID(id model.ObjectID) { a.MID = id }
func (a Author) TableName() string             { return "authors" }

func (p BlogPost) GetObjectID() model.ObjectID   { return p.MID }
func (p *BlogPost) SetObjectID(id model.ObjectID) { p.MID = id }
func (p BlogPost) TableName() string             { return "blog_posts" }

func (e Event) GetObjectID() model.ObjectID   { return e.MID }
func (e *Event) SetObjectID(id model.ObjectID) { e.MID = id }
func (e Event) TableName() string             { return "events" }

// ValidEventType reports whether t is one of the supported event kinds
func ValidEventType(t string) bool {
	switch t {
	case EventWorkshop, EventWebinar, EventConference, EventMeetup, EventOther:
		return true
	}
	return false
}
