// Package entities contains core business entities.
package entities

// Team groups users under a product owner and a project manager.
type Team struct {
	ID                     int64
	Name                   string
	ProductOwnerUserID     *int64
	ProjectManagerUserID   *int64
	ProductOwnerUsername   string
	ProjectManagerUsername string
}

// SearchFields returns the values matched by free-text queries.
func (t Team) SearchFields() []string {
	return []string{t.Name, t.ProductOwnerUsername, t.ProjectManagerUsername}
}
