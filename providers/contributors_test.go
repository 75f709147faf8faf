package providers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleContributorsYAML = `
- name: John Doe
  github_username: johndoe
  github_image_id: 12345
  bio: Test contributor
  organization: Test Org
  date_added: "2024-01-01"
- name: Jane Smith
  github_username: janesmith
  github_image_id: 67890
  bio: Another test contributor
  organization: Another Org
  date_added: "2024-01-02"
- github_username: philip
  github_image_id: 11111
  bio: Contributor without name
  date_added: "2024-01-03"
`

func yamlServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func TestFetchContributors(t *testing.T) {
	ts := yamlServer(t, http.StatusOK, sampleContributorsYAML)
	defer ts.Close()

	contributors, err := FetchContributors(ts.URL)

	assert.Nil(t, err)
	assert.Len(t, contributors, 3)
	assert.Equal(t, "John Doe", contributors[0].Name)
	assert.Equal(t, "johndoe", contributors[0].GithubUsername)
	assert.Equal(t, 12345, contributors[0].GithubImageID)
	assert.Equal(t, "2024-01-01", contributors[0].DateAdded)
}

func TestFetchContributorsNetworkError(t *testing.T) {
	// nothing listens here
	_, err := FetchContributors("http://127.0.0.1:1/contributors.yml")

	assert.NotNil(t, err)
	assert.Equal(t, ErrKindNetwork, err.Kind)
}

func TestFetchContributorsBadStatus(t *testing.T) {
	ts := yamlServer(t, http.StatusNotFound, "not here")
	defer ts.Close()

	_, err := FetchContributors(ts.URL)

	assert.NotNil(t, err)
	assert.Equal(t, ErrKindStatus, err.Kind)
}

func TestFetchContributorsParseError(t *testing.T) {
	ts := yamlServer(t, http.StatusOK, "[unclosed sequence\n")
	defer ts.Close()

	_, err := FetchContributors(ts.URL)

	assert.NotNil(t, err)
	assert.Equal(t, ErrKindParse, err.Kind)
}

func TestFetchContributorsNotAList(t *testing.T) {
	ts := yamlServer(t, http.StatusOK, "not: a list\n")
	defer ts.Close()

	_, err := FetchContributors(ts.URL)

	assert.NotNil(t, err)
	assert.Equal(t, ErrKindSchema, err.Kind)
}

func TestRecentContributors(t *testing.T) {
	ts := yamlServer(t, http.StatusOK, sampleContributorsYAML)
	defer ts.Close()

	oldURL := ContributorsURL
	ContributorsURL = ts.URL
	defer func() { ContributorsURL = oldURL }()

	recent := RecentContributors(2)

	// most recent entries sit at the end of the document
	assert.Len(t, recent, 2)
	assert.Equal(t, "philip", recent[0].GithubUsername)
	assert.Equal(t, "janesmith", recent[1].GithubUsername)
}

func TestRecentContributorsCountBeyondData(t *testing.T) {
	ts := yamlServer(t, http.StatusOK, sampleContributorsYAML)
	defer ts.Close()

	oldURL := ContributorsURL
	ContributorsURL = ts.URL
	defer func() { ContributorsURL = oldURL }()

	recent := RecentContributors(10)

	assert.Len(t, recent, 3)
}

func TestRecentContributorsFetchFailure(t *testing.T) {
	oldURL := ContributorsURL
	ContributorsURL = "http://127.0.0.1:1/contributors.yml"
	defer func() { ContributorsURL = oldURL }()

	recent := RecentContributors(4)

	assert.Empty(t, recent)
}

func TestContributorDisplayName(t *testing.T) {
	named := Contributor{Name: "John Doe", GithubUsername: "johndoe"}
	assert.Equal(t, "John Doe", named.DisplayName())

	unnamed := Contributor{GithubUsername: "janesmith"}
	assert.Equal(t, "@janesmith", unnamed.DisplayName())
}

func TestContributorURLs(t *testing.T) {
	c := Contributor{GithubUsername: "johndoe", GithubImageID: 12345}

	assert.Equal(t, "https://avatars.githubusercontent.com/u/12345?s=400&v=4", c.AvatarURL())
	assert.Equal(t, "https://github.com/johndoe", c.ProfileURL())

	noImage := Contributor{GithubUsername: "johndoe"}
	assert.Equal(t, "", noImage.AvatarURL())
}
