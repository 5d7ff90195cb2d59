package dto

import "github.com/restoration-tracker/internal/domain"

// PartnershipSection is the raw "partnership" block of a create/update body.
type PartnershipSection struct {
	Partnerships []string `json:"partnerships"`
}

type PostPartnershipsData struct {
	Partnerships []string
}

func NewPostPartnershipsData(raw *PartnershipSection) PostPartnershipsData {
	out := PostPartnershipsData{Partnerships: []string{}}
	if raw == nil {
		return out
	}
	out.Partnerships = append(out.Partnerships, raw.Partnerships...)
	return out
}

type GetPartnershipData struct {
	Partnerships []string `json:"partnerships"`
}

func NewGetPartnershipData(rows []domain.Partnership) GetPartnershipData {
	out := GetPartnershipData{Partnerships: []string{}}
	for _, row := range rows {
		out.Partnerships = append(out.Partnerships, row.Partnership)
	}
	return out
}

// ObjectiveSection is the raw "objective" block of a create/update body.
type ObjectiveSection struct {
	Objectives []string `json:"objectives"`
}

type PostObjectivesData struct {
	Objectives []string
}

func NewPostObjectivesData(raw *ObjectiveSection) PostObjectivesData {
	out := PostObjectivesData{Objectives: []string{}}
	if raw == nil {
		return out
	}
	out.Objectives = append(out.Objectives, raw.Objectives...)
	return out
}

type GetObjectiveData struct {
	Objectives []string `json:"objectives"`
}

func NewGetObjectiveData(rows []domain.Objective) GetObjectiveData {
	out := GetObjectiveData{Objectives: []string{}}
	for _, row := range rows {
		out.Objectives = append(out.Objectives, row.Objective)
	}
	return out
}
