package canoe

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orgListingServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/organizations", r.URL.Path)
		assert.Equal(t, "account", r.URL.Query().Get("type"))
		assert.Equal(t, "Bearer tok-abc", r.Header.Get("Authorization"))
		_, _ = fmt.Fprint(w, body)
	}))
}

func TestListOrganizations(t *testing.T) {
	srv := orgListingServer(t, `[
		{"id":"org-1","name":"Acme Capital","type":"account"},
		{"id":"org-2","name":"Beta Partners","type":"account"}
	]`)
	defer srv.Close()

	client := NewClient(srv.URL, "tok-abc", time.Second)
	orgs, err := client.ListOrganizations(context.Background())

	require.NoError(t, err)
	require.Len(t, orgs, 2)
	assert.Equal(t, Organization{ID: "org-1", Name: "Acme Capital"}, orgs[0])
	assert.Equal(t, Organization{ID: "org-2", Name: "Beta Partners"}, orgs[1])
}

func TestResolveOrganization(t *testing.T) {
	srv := orgListingServer(t, `[
		{"id":"org-1","name":"Acme Capital"},
		{"id":"org-2","name":"Beta Partners"}
	]`)
	defer srv.Close()

	client := NewClient(srv.URL, "tok-abc", time.Second)
	all, org, err := client.ResolveOrganization(context.Background(), "Beta Partners")

	require.NoError(t, err)
	assert.Equal(t, "org-2", org.ID)
	assert.Equal(t, "Beta Partners", org.Name)
	assert.Len(t, all, 2) // full listing retained alongside the match
}

func TestResolveOrganizationNotFound(t *testing.T) {
	srv := orgListingServer(t, `[{"id":"org-1","name":"Acme Capital"}]`)
	defer srv.Close()

	client := NewClient(srv.URL, "tok-abc", time.Second)
	_, _, err := client.ResolveOrganization(context.Background(), "Missing LLC")

	var nf *OrgNotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Missing LLC", nf.Name)
}

func TestResolveOrganizationCaseSensitive(t *testing.T) {
	srv := orgListingServer(t, `[{"id":"org-1","name":"Acme Capital"}]`)
	defer srv.Close()

	client := NewClient(srv.URL, "tok-abc", time.Second)
	_, _, err := client.ResolveOrganization(context.Background(), "acme capital")

	var nf *OrgNotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestResolveOrganizationFirstMatchWins(t *testing.T) {
	srv := orgListingServer(t, `[
		{"id":"org-1","name":"Acme Capital"},
		{"id":"org-9","name":"Acme Capital"}
	]`)
	defer srv.Close()

	client := NewClient(srv.URL, "tok-abc", time.Second)
	_, org, err := client.ResolveOrganization(context.Background(), "Acme Capital")

	require.NoError(t, err)
	assert.Equal(t, "org-1", org.ID)
}

func TestListOrganizationsNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "tok-abc", time.Second)
	_, err := client.ListOrganizations(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}
