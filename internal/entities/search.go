// Package entities contains core business entities.
package entities

// SearchResults is a mixed result set bucketed by entity kind.
type SearchResults struct {
	Projects []Project
	Tasks    []Task
	Users    []User
	Teams    []Team
}

// SearchCounts holds bucket sizes of an unpartitioned result set.
type SearchCounts struct {
	Total    int
	Projects int
	Tasks    int
	Users    int
	Teams    int
}

// SearchPage is the response of a mixed search.
type SearchPage struct {
	Query    string
	Category string
	Results  SearchResults
	Counts   SearchCounts
}
