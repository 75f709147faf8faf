package main

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pyopensci/site-backend/content"
)

func apiRequest(t *testing.T, method, path, secret string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		assert.Nil(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if secret != "" {
		req.Header.Set("Authorization", secret)
	}

	recorder := httptest.NewRecorder()
	setupRouter().ServeHTTP(recorder, req)
	return recorder
}

func decodeAPIResponse(t *testing.T, recorder *httptest.ResponseRecorder) APIOKMessage {
	t.Helper()

	msg := APIOKMessage{}
	assert.Nil(t, json.Unmarshal(recorder.Body.Bytes(), &msg))
	return msg
}

func TestAPIRejectsMissingOrWrongSecret(t *testing.T) {
	setupTestApp(t)

	recorder := apiRequest(t, "GET", "/api/posts", "", nil)
	assert.Equal(t, 401, recorder.Code)

	recorder = apiRequest(t, "GET", "/api/posts", "wrong-secret", nil)
	assert.Equal(t, 401, recorder.Code)
}

func TestAPIRejectsEverythingWithoutConfiguredSecret(t *testing.T) {
	setupTestApp(t)
	config.Secret = ""

	// an empty configured secret must not mean open access
	recorder := apiRequest(t, "GET", "/api/posts", "", nil)
	assert.Equal(t, 401, recorder.Code)
}

func TestAPIPostLifecycle(t *testing.T) {
	setupTestApp(t)

	// create, the ID and slug are generated
	recorder := apiRequest(t, "POST", "/api/posts", "test-secret", content.BlogPost{Title: "Hello World", Live: true})
	assert.Equal(t, 201, recorder.Code)

	created := decodeAPIResponse(t, recorder)
	assert.NotEmpty(t, created.ID)

	// read it back
	recorder = apiRequest(t, "GET", "/api/posts/"+created.ID, "test-secret", nil)
	assert.Equal(t, 200, recorder.Code)

	// update it under the same ID
	recorder = apiRequest(t, "PUT", "/api/posts/"+created.ID, "test-secret",
		content.BlogPost{ID: created.ID, Slug: "hello-world", Title: "Hello Again", Live: true})
	assert.Equal(t, 200, recorder.Code)

	stored := content.BlogPost{}
	assert.Nil(t, stores.Posts.GetKey(created.ID, &stored))
	assert.Equal(t, "Hello Again", stored.Title)

	// list contains exactly the one record
	recorder = apiRequest(t, "GET", "/api/posts", "test-secret", nil)
	assert.Equal(t, 200, recorder.Code)

	// delete it
	recorder = apiRequest(t, "DELETE", "/api/posts/"+created.ID, "test-secret", nil)
	assert.Equal(t, 200, recorder.Code)

	recorder = apiRequest(t, "GET", "/api/posts/"+created.ID, "test-secret", nil)
	assert.Equal(t, 404, recorder.Code)
}

func TestAPIUpdateIDMismatch(t *testing.T) {
	setupTestApp(t)

	seedPost(t, content.BlogPost{ID: "p1", Slug: "hello", Title: "Hello"})

	recorder := apiRequest(t, "PUT", "/api/posts/p1", "test-secret", content.BlogPost{ID: "p2", Title: "Renamed"})
	assert.Equal(t, 400, recorder.Code)
}

func TestAPIAddEventValidatesType(t *testing.T) {
	setupTestApp(t)

	recorder := apiRequest(t, "POST", "/api/events", "test-secret", content.Event{Title: "Bad", EventType: "rave"})
	assert.Equal(t, 400, recorder.Code)

	recorder = apiRequest(t, "POST", "/api/events", "test-secret", content.Event{Title: "Workshop Day", EventType: content.EventWorkshop})
	assert.Equal(t, 201, recorder.Code)
}

func TestAPIAuthorLifecycle(t *testing.T) {
	setupTestApp(t)

	recorder := apiRequest(t, "POST", "/api/authors", "test-secret", content.Author{Name: "Carol Willing"})
	assert.Equal(t, 201, recorder.Code)

	created := decodeAPIResponse(t, recorder)
	assert.NotEmpty(t, created.ID)

	recorder = apiRequest(t, "GET", "/api/authors", "test-secret", nil)
	assert.Equal(t, 200, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "carol-willing")

	recorder = apiRequest(t, "DELETE", "/api/authors/"+created.ID, "test-secret", nil)
	assert.Equal(t, 200, recorder.Code)
}

func TestAPIBadJSONBody(t *testing.T) {
	setupTestApp(t)

	req := httptest.NewRequest("POST", "/api/posts", bytes.NewBufferString("{not json"))
	req.Header.Set("Authorization", "test-secret")

	recorder := httptest.NewRecorder()
	setupRouter().ServeHTTP(recorder, req)

	assert.Equal(t, 400, recorder.Code)
}
