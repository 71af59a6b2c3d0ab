package canoe

import (
	"context"
	"fmt"
)

// Organization is the slice of the listing response this pipeline consumes.
type Organization struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ListOrganizations returns every account-type organization visible to the
// client's credential, in the order the API lists them.
func (c *Client) ListOrganizations(ctx context.Context) ([]Organization, error) {
	var orgs []Organization
	if err := c.getJSON(ctx, c.baseURL+"/organizations?type=account", &orgs); err != nil {
		return nil, fmt.Errorf("listing organizations: %w", err)
	}
	return orgs, nil
}

// ResolveOrganization lists all organizations and picks the one whose name
// equals name exactly (case-sensitive). The full listing is returned
// alongside the match so callers can aggregate over more organizations later.
// When several organizations share the name, the first in listing order wins.
func (c *Client) ResolveOrganization(ctx context.Context, name string) ([]Organization, Organization, error) {
	orgs, err := c.ListOrganizations(ctx)
	if err != nil {
		return nil, Organization{}, err
	}

	for _, org := range orgs {
		if org.Name == name {
			return orgs, org, nil
		}
	}

	return orgs, Organization{}, &OrgNotFoundError{Name: name}
}
