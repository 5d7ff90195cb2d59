package domain

// TaxonomyCode is a resolved species entry from the taxonomy service.
type TaxonomyCode struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
}
