package main

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pyopensci/site-backend/constants"
	"github.com/pyopensci/site-backend/content"
	tykerrors "github.com/pyopensci/site-backend/error"
)

// APIOKMessage wraps successful admin API responses
type APIOKMessage struct {
	Status string      `json:"Status"`
	ID     string      `json:"ID,omitempty"`
	Data   interface{} `json:"Data,omitempty"`
}

func handleAPIOK(w http.ResponseWriter, code int, id string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(APIOKMessage{Status: "ok", ID: id, Data: data})
}

// IsAuthenticated compares the Authorization header against the shared admin secret
func IsAuthenticated(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if config.Secret == "" || r.Header.Get("Authorization") != config.Secret {
			tykerrors.HandleError(constants.APILogTag, "Authorization failed", errors.New("header mismatch"), 401, w, r)
			return
		}

		h.ServeHTTP(w, r)
	})
}

func getAPIID(req *http.Request) (string, error) {
	id := mux.Vars(req)["id"]
	if id == "" {
		return id, errors.New("no record id detected")
	}
	return id, nil
}

// --- blog posts ---

func HandleGetPostList(w http.ResponseWriter, r *http.Request) {
	posts := content.PostsFromStore(contentStores().Posts)
	content.SortByDateDesc(posts)
	handleAPIOK(w, 200, "", posts)
}

func HandleGetPost(w http.ResponseWriter, r *http.Request) {
	id, idErr := getAPIID(r)
	if idErr != nil {
		tykerrors.HandleError(constants.APILogTag, "Could not retrieve ID", idErr, 400, w, r)
		return
	}

	post := content.BlogPost{}
	if keyErr := contentStores().Posts.GetKey(id, &post); keyErr != nil {
		tykerrors.HandleError(constants.APILogTag, "Object ID not found", keyErr, 404, w, r)
		return
	}

	handleAPIOK(w, 200, post.ID, post)
}

func HandleAddPost(w http.ResponseWriter, r *http.Request) {
	post := content.BlogPost{}
	if decErr := json.NewDecoder(r.Body).Decode(&post); decErr != nil {
		tykerrors.HandleError(constants.APILogTag, "Couldn't decode body", decErr, 400, w, r)
		return
	}

	if hErr := content.AddPost(&post, contentStores().Posts, flushStores); hErr != nil {
		tykerrors.HandleError(constants.APILogTag, hErr.Message, hErr.Error, hErr.Code, w, r)
		return
	}

	handleAPIOK(w, 201, post.ID, post)
}

func HandleUpdatePost(w http.ResponseWriter, r *http.Request) {
	id, idErr := getAPIID(r)
	if idErr != nil {
		tykerrors.HandleError(constants.APILogTag, "Could not retrieve ID", idErr, 400, w, r)
		return
	}

	post := content.BlogPost{}
	if decErr := json.NewDecoder(r.Body).Decode(&post); decErr != nil {
		tykerrors.HandleError(constants.APILogTag, "Couldn't decode body", decErr, 400, w, r)
		return
	}

	if hErr := content.UpdatePost(id, &post, contentStores().Posts, flushStores); hErr != nil {
		tykerrors.HandleError(constants.APILogTag, hErr.Message, hErr.Error, hErr.Code, w, r)
		return
	}

	handleAPIOK(w, 200, post.ID, post)
}

func HandleDeletePost(w http.ResponseWriter, r *http.Request) {
	id, idErr := getAPIID(r)
	if idErr != nil {
		tykerrors.HandleError(constants.APILogTag, "Could not retrieve ID", idErr, 400, w, r)
		return
	}

	if hErr := content.DeletePost(id, contentStores().Posts, flushStores); hErr != nil {
		tykerrors.HandleError(constants.APILogTag, hErr.Message, hErr.Error, hErr.Code, w, r)
		return
	}

	handleAPIOK(w, 200, id, nil)
}

// --- events ---

func HandleGetEventList(w http.ResponseWriter, r *http.Request) {
	events := content.EventsFromStore(contentStores().Events)
	handleAPIOK(w, 200, "", events)
}

func HandleGetEvent(w http.ResponseWriter, r *http.Request) {
	id, idErr := getAPIID(r)
	if idErr != nil {
		tykerrors.HandleError(constants.APILogTag, "Could not retrieve ID", idErr, 400, w, r)
		return
	}

	event := content.Event{}
	if keyErr := contentStores().Events.GetKey(id, &event); keyErr != nil {
		tykerrors.HandleError(constants.APILogTag, "Object ID not found", keyErr, 404, w, r)
		return
	}

	handleAPIOK(w, 200, event.ID, event)
}

func HandleAddEvent(w http.ResponseWriter, r *http.Request) {
	event := content.Event{}
	if decErr := json.NewDecoder(r.Body).Decode(&event); decErr != nil {
		tykerrors.HandleError(constants.APILogTag, "Couldn't decode body", decErr, 400, w, r)
		return
	}

	if hErr := content.AddEvent(&event, contentStores().Events, flushStores); hErr != nil {
		tykerrors.HandleError(constants.APILogTag, hErr.Message, hErr.Error, hErr.Code, w, r)
		return
	}

	handleAPIOK(w, 201, event.ID, event)
}

func HandleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, idErr := getAPIID(r)
	if idErr != nil {
		tykerrors.HandleError(constants.APILogTag, "Could not retrieve ID", idErr, 400, w, r)
		return
	}

	event := content.Event{}
	if decErr := json.NewDecoder(r.Body).Decode(&event); decErr != nil {
		tykerrors.HandleError(constants.APILogTag, "Couldn't decode body", decErr, 400, w, r)
		return
	}

	if hErr := content.UpdateEvent(id, &event, contentStores().Events, flushStores); hErr != nil {
		tykerrors.HandleError(constants.APILogTag, hErr.Message, hErr.Error, hErr.Code, w, r)
		return
	}

	handleAPIOK(w, 200, event.ID, event)
}

func HandleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, idErr := getAPIID(r)
	if idErr != nil {
		tykerrors.HandleError(constants.APILogTag, "Could not retrieve ID", idErr, 400, w, r)
		return
	}

	if hErr := content.DeleteEvent(id, contentStores().Events, flushStores); hErr != nil {
		tykerrors.HandleError(constants.APILogTag, hErr.Message, hErr.Error, hErr.Code, w, r)
		return
	}

	handleAPIOK(w, 200, id, nil)
}

// --- authors ---

func HandleGetAuthorList(w http.ResponseWriter, r *http.Request) {
	authors := content.AuthorsFromStore(contentStores().Authors)
	handleAPIOK(w, 200, "", authors)
}

func HandleGetAuthor(w http.ResponseWriter, r *http.Request) {
	id, idErr := getAPIID(r)
	if idErr != nil {
		tykerrors.HandleError(constants.APILogTag, "Could not retrieve ID", idErr, 400, w, r)
		return
	}

	author := content.Author{}
	if keyErr := contentStores().Authors.GetKey(id, &author); keyErr != nil {
		tykerrors.HandleError(constants.APILogTag, "Object ID not found", keyErr, 404, w, r)
		return
	}

	handleAPIOK(w, 200, author.ID, author)
}

func HandleAddAuthor(w http.ResponseWriter, r *http.Request) {
	author := content.Author{}
	if decErr := json.NewDecoder(r.Body).Decode(&author); decErr != nil {
		tykerrors.HandleError(constants.APILogTag, "Couldn't decode body", decErr, 400, w, r)
		return
	}

	if hErr := content.AddAuthor(&author, contentStores().Authors, flushStores); hErr != nil {
		tykerrors.HandleError(constants.APILogTag, hErr.Message, hErr.Error, hErr.Code, w, r)
		return
	}

	handleAPIOK(w, 201, author.ID, author)
}

func HandleUpdateAuthor(w http.ResponseWriter, r *http.Request) {
	id, idErr := getAPIID(r)
	if idErr != nil {
		tykerrors.HandleError(constants.APILogTag, "Could not retrieve ID", idErr, 400, w, r)
		return
	}

	author := content.Author{}
	if decErr := json.NewDecoder(r.Body).Decode(&author); decErr != nil {
		tykerrors.HandleError(constants.APILogTag, "Couldn't decode body", decErr, 400, w, r)
		return
	}

	if hErr := content.UpdateAuthor(id, &author, contentStores().Authors, flushStores); hErr != nil {
		tykerrors.HandleError(constants.APILogTag, hErr.Message, hErr.Error, hErr.Code, w, r)
		return
	}

	handleAPIOK(w, 200, author.ID, author)
}

func HandleDeleteAuthor(w http.ResponseWriter, r *http.Request) {
	id, idErr := getAPIID(r)
	if idErr != nil {
		tykerrors.HandleError(constants.APILogTag, "Could not retrieve ID", idErr, 400, w, r)
		return
	}

	if hErr := content.DeleteAuthor(id, contentStores().Authors, flushStores); hErr != nil {
		tykerrors.HandleError(constants.APILogTag, hErr.Message, hErr.Error, hErr.Code, w, r)
		return
	}

	handleAPIOK(w, 200, id, nil)
}
