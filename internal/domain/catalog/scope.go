package catalog

import (
	"strings"

	"pricing-panel/internal/pkg/errs"
)

var (
	ErrCompanyRequired     = errs.New("company id is required")
	ErrApplicationRequired = errs.New("application id is required")
)

// Scope selects which listing endpoint a catalog fetch walks.
type Scope struct {
	CompanyID     string
	ApplicationID string
}

func NewCompanyScope(companyID string) (Scope, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return Scope{}, ErrCompanyRequired
	}
	return Scope{CompanyID: companyID}, nil
}

func NewApplicationScope(companyID, applicationID string) (Scope, error) {
	s, err := NewCompanyScope(companyID)
	if err != nil {
		return Scope{}, err
	}
	applicationID = strings.TrimSpace(applicationID)
	if applicationID == "" {
		return Scope{}, ErrApplicationRequired
	}
	s.ApplicationID = applicationID
	return s, nil
}

func (s Scope) IsApplication() bool {
	return s.ApplicationID != ""
}
