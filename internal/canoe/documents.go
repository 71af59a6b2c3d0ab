package canoe

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"

	"golang.org/x/sync/errgroup"
)

// Document types partitioned into the export. Anything else under the
// Capital Activity category (statements, notices of other kinds) is dropped.
const (
	TypeCapitalCall         = "Capital Call Notice"
	TypeCapitalDistribution = "Capital Distribution Notice"
)

// Document is one capital-activity notice as returned by the document-data
// endpoint, restricted to the fields the pipeline selects.
type Document struct {
	Name         string       `json:"name"`
	DocumentType string       `json:"document_type"`
	Allocations  []Allocation `json:"allocations"`
}

// Allocation carries the validated financial fields of a document. Only the
// first allocation of each document is consulted downstream.
type Allocation struct {
	ValidatedData ValidatedData `json:"validated_data"`
}

// ValidatedData is the loosely-typed field bag extracted by Canoe's document
// processing. Any field may be absent; absent strings decode to "" and absent
// amounts to 0.
type ValidatedData struct {
	DueDate          string      `json:"dueDate"`
	DistributionDate string      `json:"distributionDate"`
	CapitalCall      json.Number `json:"capitalCall"`
	Distribution     json.Number `json:"distribution"`
	Entity           string      `json:"entity"`
	FundName         string      `json:"fundName"`
}

// DocumentSet holds one organization's (or a whole fan-out's) documents
// partitioned by type.
type DocumentSet struct {
	Call         []Document
	Distribution []Document
}

// FetchOrgDocuments retrieves one organization's Capital Activity documents
// and partitions them into call and distribution notices.
func (c *Client) FetchOrgDocuments(ctx context.Context, orgID string) (DocumentSet, error) {
	q := url.Values{}
	q.Set("fields", "name,document_type,validated_data")
	q.Set("category", "Capital Activity")

	var docs []Document
	u := c.baseURL + "/organizations/" + url.PathEscape(orgID) + "/document-data?" + q.Encode()
	if err := c.getJSON(ctx, u, &docs); err != nil {
		var se *statusError
		if errors.As(err, &se) {
			return DocumentSet{}, &FetchError{OrgID: orgID, Status: se.status, Err: err}
		}
		return DocumentSet{}, &FetchError{OrgID: orgID, Err: err}
	}

	var set DocumentSet
	for _, d := range docs {
		switch d.DocumentType {
		case TypeCapitalCall:
			set.Call = append(set.Call, d)
		case TypeCapitalDistribution:
			set.Distribution = append(set.Distribution, d)
		}
	}
	return set, nil
}

// FetchAllOrgDocuments fans out one fetch per organization, waits for all of
// them, and concatenates the partitions. All fetches share the client's
// connection pool. The aggregate is all-or-nothing: the first failure cancels
// the remaining fetches and fails the whole call, so a partial dataset can
// never be exported silently. Concatenation order follows orgIDs, but callers
// must not rely on any cross-organization ordering.
func (c *Client) FetchAllOrgDocuments(ctx context.Context, orgIDs []string) (DocumentSet, error) {
	sets := make([]DocumentSet, len(orgIDs))

	g, ctx := errgroup.WithContext(ctx)
	for i, orgID := range orgIDs {
		i, orgID := i, orgID
		g.Go(func() error {
			set, err := c.FetchOrgDocuments(ctx, orgID)
			if err != nil {
				return err
			}
			sets[i] = set
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return DocumentSet{}, err
	}

	var all DocumentSet
	for _, set := range sets {
		all.Call = append(all.Call, set.Call...)
		all.Distribution = append(all.Distribution, set.Distribution...)
	}
	return all, nil
}
