package providers

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var contributorLogger = log.WithField("prefix", "CONTRIBUTOR PROVIDER")

// ContributorsURL is the default location of the community contributor listing
var ContributorsURL = "https://raw.githubusercontent.com/pyOpenSci/pyopensci.github.io/main/_data/contributors.yml"

// Contributor mirrors one entry of the contributors YAML document
type Contributor struct {
	Name           string `yaml:"name"`
	GithubUsername string `yaml:"github_username"`
	GithubImageID  int    `yaml:"github_image_id"`
	Bio            string `yaml:"bio"`
	Organization   string `yaml:"organization"`
	Location       string `yaml:"location"`
	Email          string `yaml:"email"`
	DateAdded      string `yaml:"date_added"`

	DeiaAdvisory     bool `yaml:"deia_advisory"`
	EditorialBoard   bool `yaml:"editorial_board"`
	EmeritusEditor   bool `yaml:"emeritus_editor"`
	Advisory         bool `yaml:"advisory"`
	EmeritusAdvisory bool `yaml:"emeritus_advisory"`
	Board            bool `yaml:"board"`

	Twitter  string `yaml:"twitter"`
	Mastodon string `yaml:"mastodon"`
	OrcidID  string `yaml:"orcidid"`
	Website  string `yaml:"website"`

	Title           []string `yaml:"title"`
	Partners        []string `yaml:"partners"`
	ContributorType []string `yaml:"contributor_type"`

	PackagesEic       []string `yaml:"packages_eic"`
	PackagesEditor    []string `yaml:"packages_editor"`
	PackagesSubmitted []string `yaml:"packages_submitted"`
	PackagesReviewed  []string `yaml:"packages_reviewed"`

	Sort int `yaml:"sort"`
}

// DisplayName returns the name if available, otherwise the GitHub handle
func (c Contributor) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return "@" + c.GithubUsername
}

// AvatarURL generates the GitHub avatar URL from the image ID
func (c Contributor) AvatarURL() string {
	if c.GithubImageID == 0 {
		return ""
	}
	return fmt.Sprintf("https://avatars.githubusercontent.com/u/%d?s=400&v=4", c.GithubImageID)
}

// ProfileURL generates the GitHub profile URL
func (c Contributor) ProfileURL() string {
	return "https://github.com/" + c.GithubUsername
}

// FetchContributors fetches and parses the contributor listing at url
func FetchContributors(url string) ([]Contributor, *DataError) {
	body, fetchErr := fetchDocument(url)
	if fetchErr != nil {
		contributorLogger.WithField("url", url).Error("Failed to fetch contributors: ", fetchErr)
		return nil, fetchErr
	}

	// sniff the document shape first so a YAML map doesn't half-decode
	var probe interface{}
	if err := yaml.Unmarshal(body, &probe); err != nil {
		contributorLogger.Error("Failed to parse contributors YAML: ", err)
		return nil, &DataError{Kind: ErrKindParse, Err: err}
	}
	if _, isList := probe.([]interface{}); !isList {
		schemaErr := &DataError{Kind: ErrKindSchema, Err: errors.New("YAML data should be a list of contributors")}
		contributorLogger.Error(schemaErr)
		return nil, schemaErr
	}

	contributors := []Contributor{}
	if err := yaml.Unmarshal(body, &contributors); err != nil {
		contributorLogger.Error("Failed to parse contributors YAML: ", err)
		return nil, &DataError{Kind: ErrKindParse, Err: err}
	}

	contributorLogger.Infof("Successfully fetched %d contributors from %s", len(contributors), url)
	return contributors, nil
}

// RecentContributors returns the count most recent contributors. The source
// document appends new entries, so recency is document order reversed.
// Fetch or parse failures degrade to an empty listing.
func RecentContributors(count int) []Contributor {
	contributors, err := FetchContributors(ContributorsURL)
	if err != nil {
		contributorLogger.Error("Failed to get recent contributors: ", err)
		return []Contributor{}
	}

	reversed := make([]Contributor, 0, len(contributors))
	for i := len(contributors) - 1; i >= 0; i-- {
		reversed = append(reversed, contributors[i])
	}

	if count < len(reversed) {
		reversed = reversed[:count]
	}
	return reversed
}
