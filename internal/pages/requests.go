package pages

import (
	"linkify/pkg/domain"
)

// CreatePageRequest holds the input of CreatePage.
type CreatePageRequest struct {
	ID      domain.PageID  `json:"id"`
	BioInfo domain.BioInfo `json:"bioInfo"`
}

// Validate checks the identifier syntax and the bio fields.
func (r CreatePageRequest) Validate() error {
	if err := ValidatePageID(r.ID); err != nil {
		return err
	}

	return validateBioInfo(r.BioInfo)
}
