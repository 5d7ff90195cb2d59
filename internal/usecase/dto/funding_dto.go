package dto

import "github.com/restoration-tracker/internal/domain"

// FundingSection is the raw "funding" block of a create/update body.
type FundingSection struct {
	FundingSources []FundingSourceItem `json:"fundingSources"`
}

type FundingSourceItem struct {
	OrganizationName string   `json:"organization_name"`
	FundingProjectID *string  `json:"funding_project_id"`
	FundingAmount    float64  `json:"funding_amount"`
	StartDate        *string  `json:"start_date"`
	EndDate          *string  `json:"end_date"`
	IsPublic         FlexBool `json:"is_public"`
	Description      *string  `json:"description"`
}

type PostFundingData struct {
	FundingSources []PostFundingSource
}

type PostFundingSource struct {
	OrganizationName string
	FundingProjectID *string
	FundingAmount    float64
	StartDate        *string
	EndDate          *string
	IsPublic         bool
	Description      *string
}

func NewPostFundingData(raw *FundingSection) PostFundingData {
	out := PostFundingData{FundingSources: []PostFundingSource{}}
	if raw == nil {
		return out
	}

	for _, fs := range raw.FundingSources {
		out.FundingSources = append(out.FundingSources, PostFundingSource{
			OrganizationName: fs.OrganizationName,
			FundingProjectID: fs.FundingProjectID,
			FundingAmount:    fs.FundingAmount,
			StartDate:        fs.StartDate,
			EndDate:          fs.EndDate,
			IsPublic:         fs.IsPublic.Bool(),
			Description:      fs.Description,
		})
	}

	return out
}

// NewPostFundingSource defaults a single funding source item, used by the
// standalone POST funding-sources endpoint.
func NewPostFundingSource(raw *FundingSourceItem) PostFundingSource {
	if raw == nil {
		return PostFundingSource{}
	}
	return PostFundingSource{
		OrganizationName: raw.OrganizationName,
		FundingProjectID: raw.FundingProjectID,
		FundingAmount:    raw.FundingAmount,
		StartDate:        raw.StartDate,
		EndDate:          raw.EndDate,
		IsPublic:         raw.IsPublic.Bool(),
		Description:      raw.Description,
	}
}

type GetFundingData struct {
	FundingSources []GetFundingSource `json:"fundingSources"`
}

type GetFundingSource struct {
	ID               int64   `json:"project_funding_source_id"`
	OrganizationName string  `json:"organization_name"`
	FundingProjectID *string `json:"funding_project_id"`
	FundingAmount    float64 `json:"funding_amount"`
	StartDate        *string `json:"start_date"`
	EndDate          *string `json:"end_date"`
	IsPublic         string  `json:"is_public"`
	Description      *string `json:"description"`
}

func NewGetFundingData(rows []domain.FundingSource) GetFundingData {
	out := GetFundingData{FundingSources: []GetFundingSource{}}

	for _, row := range rows {
		out.FundingSources = append(out.FundingSources, GetFundingSource{
			ID:               row.ID,
			OrganizationName: row.OrganizationName,
			FundingProjectID: row.FundingProjectID,
			FundingAmount:    row.FundingAmount,
			StartDate:        row.StartDate,
			EndDate:          row.EndDate,
			IsPublic:         YNToString(row.IsPublic),
			Description:      row.DescriptionComments,
		})
	}

	return out
}
