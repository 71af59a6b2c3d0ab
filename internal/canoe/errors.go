package canoe

import "fmt"

// AuthError reports a failed credential exchange. Status is zero when the
// request never reached the token endpoint.
type AuthError struct {
	Status int
	Err    error
}

func (e *AuthError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("token endpoint returned status %d: %v", e.Status, e.Err)
	}
	return fmt.Sprintf("token request failed: %v", e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// OrgNotFoundError reports that no listed organization matched the
// configured name exactly.
type OrgNotFoundError struct {
	Name string
}

func (e *OrgNotFoundError) Error() string {
	return fmt.Sprintf("no organization named '%s' found", e.Name)
}

// FetchError reports a failed document-data request for one organization.
type FetchError struct {
	OrgID  string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("document fetch for organization '%s' returned status %d: %v", e.OrgID, e.Status, e.Err)
	}
	return fmt.Sprintf("document fetch for organization '%s' failed: %v", e.OrgID, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
