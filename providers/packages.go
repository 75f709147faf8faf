package providers

import (
	"encoding/json"
	"errors"
	"sort"

	"github.com/Jeffail/gabs"
	"gopkg.in/yaml.v3"
)

var packageLogger = log.WithField("prefix", "PACKAGE PROVIDER")

// PackagesURL is the default location of the accepted package listing
var PackagesURL = "https://raw.githubusercontent.com/pyOpenSci/pyopensci.github.io/main/_data/packages.yml"

// PackageAuthor is the submitting author block on a package entry
type PackageAuthor struct {
	Name           string `yaml:"name" json:"name"`
	GithubUsername string `yaml:"github_username" json:"github_username"`
}

// Package mirrors one entry of the packages YAML document
type Package struct {
	PackageName        string `yaml:"package_name"`
	PackageDescription string `yaml:"package_description"`
	RepositoryLink     string `yaml:"repository_link"`
	VersionSubmitted   string `yaml:"version_submitted"`
	VersionAccepted    string `yaml:"version_accepted"`
	DateAccepted       string `yaml:"date_accepted"`

	IssueLink string `yaml:"issue_link"`
	Archive   string `yaml:"archive"`
	Joss      string `yaml:"joss"`
	Active    bool   `yaml:"active"`

	SubmittingAuthor PackageAuthor `yaml:"submitting_author"`
	Categories       []string      `yaml:"categories"`

	// GhMeta is a loose blob whose shape drifts with the upstream tooling,
	// it is kept raw and probed on demand
	GhMeta map[string]interface{} `yaml:"gh_meta"`
}

// SubmittingAuthorName returns the submitting author's name or GitHub handle
func (p Package) SubmittingAuthorName() string {
	if p.SubmittingAuthor.Name != "" {
		return p.SubmittingAuthor.Name
	}
	if p.SubmittingAuthor.GithubUsername != "" {
		return "@" + p.SubmittingAuthor.GithubUsername
	}
	return "@Unknown"
}

// DocumentationURL digs the documentation link out of the gh_meta blob
func (p Package) DocumentationURL() string {
	if p.GhMeta == nil {
		return ""
	}

	asJSON, err := json.Marshal(p.GhMeta)
	if err != nil {
		return ""
	}

	parsed, err := gabs.ParseJSON(asJSON)
	if err != nil {
		return ""
	}

	if doc, ok := parsed.Path("documentation").Data().(string); ok {
		return doc
	}
	return ""
}

// FetchPackages fetches and parses the package listing at url
func FetchPackages(url string) ([]Package, *DataError) {
	body, fetchErr := fetchDocument(url)
	if fetchErr != nil {
		packageLogger.WithField("url", url).Error("Failed to fetch packages: ", fetchErr)
		return nil, fetchErr
	}

	var probe interface{}
	if err := yaml.Unmarshal(body, &probe); err != nil {
		packageLogger.Error("Failed to parse packages YAML: ", err)
		return nil, &DataError{Kind: ErrKindParse, Err: err}
	}
	if _, isList := probe.([]interface{}); !isList {
		schemaErr := &DataError{Kind: ErrKindSchema, Err: errors.New("YAML data should be a list of packages")}
		packageLogger.Error(schemaErr)
		return nil, schemaErr
	}

	packages := []Package{}
	if err := yaml.Unmarshal(body, &packages); err != nil {
		packageLogger.Error("Failed to parse packages YAML: ", err)
		return nil, &DataError{Kind: ErrKindParse, Err: err}
	}

	packageLogger.Infof("Successfully fetched %d packages from %s", len(packages), url)
	return packages, nil
}

// RecentPackages returns the count most recently accepted packages, sorted
// by acceptance date descending. Failures degrade to an empty listing.
func RecentPackages(count int) []Package {
	packages, err := FetchPackages(PackagesURL)
	if err != nil {
		packageLogger.Error("Failed to get recent packages: ", err)
		return []Package{}
	}

	// date_accepted is an ISO-8601 string in the source data, so a string
	// sort orders it correctly
	sort.SliceStable(packages, func(i, j int) bool {
		return packages[i].DateAccepted > packages[j].DateAccepted
	})

	if count < len(packages) {
		packages = packages[:count]
	}
	return packages
}
