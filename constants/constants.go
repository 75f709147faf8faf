package constants

const (
	// HandlerLogTag is a tag we are using to identify log messages from the public views
	HandlerLogTag = "VIEW HANDLERS"

	// APILogTag identifies log messages coming from the admin CRUD API
	APILogTag = "ADMIN API"
)

// content kinds
const (
	PostKind   = "posts"
	EventKind  = "events"
	AuthorKind = "authors"
)
