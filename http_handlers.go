package main

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/pyopensci/site-backend/constants"
	"github.com/pyopensci/site-backend/content"
	tykerrors "github.com/pyopensci/site-backend/error"
	logger "github.com/pyopensci/site-backend/log"
	"github.com/pyopensci/site-backend/providers"
)

var handlerLogger = logger.Get().WithField("prefix", constants.HandlerLogTag)

// enrichment fetches and the clock are swappable so view tests don't hit
// the network and can pin the upcoming/past event split
var recentContributors = providers.RecentContributors
var recentPackages = providers.RecentPackages
var timeNow = time.Now

// Returns a content slug from the route
func getSlug(req *http.Request) (string, error) {
	slug := mux.Vars(req)["slug"]
	if slug == "" {
		return slug, errors.New("no content slug detected")
	}
	return slug, nil
}

// HandleHome renders the homepage, merging the remote contributor and
// package listings in. Enrichment failures degrade to empty sections.
func HandleHome(w http.ResponseWriter, r *http.Request) {
	view := HomeView{
		PageTitle:          "Welcome to pyOpenSci",
		HeroTitle:          "We make it easier for scientists to create, find, maintain, and contribute to reusable code and software.",
		HeroSubtitle:       "pyOpenSci broadens participation in scientific open source by breaking down social and technical barriers. Join our global community.",
		RecentContributors: recentContributors(4),
		RecentPackages:     recentPackages(3),
	}

	renderView(w, "home.html", view)
}

// HandleBlogIndex renders the paginated blog listing, optionally narrowed
// by ?tag= and ?year=
func HandleBlogIndex(w http.ResponseWriter, r *http.Request) {
	posts := content.LivePosts(content.PostsFromStore(contentStores().Posts))
	content.SortByDateDesc(posts)

	years := content.Years(posts)

	tag := r.URL.Query().Get("tag")
	posts = content.FilterByTag(posts, tag)

	year := 0
	if rawYear := r.URL.Query().Get("year"); rawYear != "" {
		parsed, convErr := strconv.Atoi(rawYear)
		if convErr != nil {
			tykerrors.HandleError(constants.HandlerLogTag, "Invalid year filter", convErr, 400, w, r)
			return
		}
		year = parsed
	}
	posts = content.FilterByYear(posts, year)

	page := 1
	if rawPage := r.URL.Query().Get("page"); rawPage != "" {
		if parsed, convErr := strconv.Atoi(rawPage); convErr == nil {
			page = parsed
		}
	}

	window := content.Paginate(len(posts), page, config.PerPage)

	renderView(w, "blog_index.html", BlogIndexView{
		PageTitle: "Blog",
		Posts:     posts[window.Start:window.End],
		Window:    window,
		Tag:       tag,
		Year:      year,
		Years:     years,
	})
}

// HandleBlogPage renders a single blog post with its related posts
func HandleBlogPage(w http.ResponseWriter, r *http.Request) {
	slug, slugErr := getSlug(r)
	if slugErr != nil {
		tykerrors.HandleError(constants.HandlerLogTag, "Could not retrieve slug", slugErr, 400, w, r)
		return
	}

	posts := content.LivePosts(content.PostsFromStore(contentStores().Posts))

	post, found := content.FindPostBySlug(posts, slug)
	if !found {
		renderNotFound(w)
		return
	}

	renderView(w, "blog_page.html", BlogPageView{
		PageTitle: post.Title,
		Post:      post,
		Author:    lookupAuthor(post.AuthorSlug),
		Related:   content.Related(posts, post, 3),
	})
}

// HandleEventsIndex renders the events listing split into upcoming and past
func HandleEventsIndex(w http.ResponseWriter, r *http.Request) {
	events := content.LiveEvents(content.EventsFromStore(contentStores().Events))
	upcoming, past := content.SplitEvents(events, timeNow())

	renderView(w, "events_index.html", EventsIndexView{
		PageTitle: "Events",
		Upcoming:  upcoming,
		Past:      past,
	})
}

// HandleEventPage renders a single event announcement
func HandleEventPage(w http.ResponseWriter, r *http.Request) {
	slug, slugErr := getSlug(r)
	if slugErr != nil {
		tykerrors.HandleError(constants.HandlerLogTag, "Could not retrieve slug", slugErr, 400, w, r)
		return
	}

	events := content.LiveEvents(content.EventsFromStore(contentStores().Events))

	event, found := content.FindEventBySlug(events, slug)
	if !found {
		renderNotFound(w)
		return
	}

	renderView(w, "event_page.html", EventPageView{
		PageTitle: event.Title,
		Event:     event,
		Author:    lookupAuthor(event.AuthorSlug),
	})
}

func HandleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func lookupAuthor(slug string) *content.Author {
	if slug == "" {
		return nil
	}
	authors := content.AuthorsFromStore(contentStores().Authors)
	if author, found := content.FindAuthorBySlug(authors, slug); found {
		return &author
	}
	return nil
}
