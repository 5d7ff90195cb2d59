package dto

import "github.com/restoration-tracker/internal/domain"

// ProjectSection is the raw "project" block of a create/update body.
type ProjectSection struct {
	Name               string   `json:"project_name"`
	IsProject          FlexBool `json:"is_project"`
	StateCode          int      `json:"state_code"`
	StartDate          *string  `json:"start_date"`
	EndDate            *string  `json:"end_date"`
	ActualStartDate    *string  `json:"actual_start_date"`
	ActualEndDate      *string  `json:"actual_end_date"`
	PeopleInvolved     *int64   `json:"people_involved"`
	IsPartOfPublicPlan FlexBool `json:"is_project_part_public_plan"`
	RevisionCount      *int     `json:"revision_count"`
}

// PostProjectData is the defaulted shape used for the root insert.
// Name defaults to "" (not null); missing dates stay null.
type PostProjectData struct {
	Name               string
	IsProject          bool
	StateCode          int
	StartDate          *string
	EndDate            *string
	ActualStartDate    *string
	ActualEndDate      *string
	PeopleInvolved     *int64
	IsPartOfPublicPlan bool
}

func NewPostProjectData(raw *ProjectSection) PostProjectData {
	out := PostProjectData{
		StateCode: domain.StatePlanning,
	}
	if raw == nil {
		return out
	}

	out.Name = raw.Name
	out.IsProject = raw.IsProject.Bool()
	if raw.StateCode != 0 {
		out.StateCode = raw.StateCode
	}
	out.StartDate = raw.StartDate
	out.EndDate = raw.EndDate
	out.ActualStartDate = raw.ActualStartDate
	out.ActualEndDate = raw.ActualEndDate
	out.PeopleInvolved = raw.PeopleInvolved
	out.IsPartOfPublicPlan = raw.IsPartOfPublicPlan.Bool()

	return out
}

// PutProjectData carries the in-place root update. RevisionCount defaults
// to 0 so the optimistic-concurrency comparison is always defined.
type PutProjectData struct {
	Name               string
	IsProject          bool
	StartDate          *string
	EndDate            *string
	ActualStartDate    *string
	ActualEndDate      *string
	PeopleInvolved     *int64
	IsPartOfPublicPlan bool
	RevisionCount      int
}

func NewPutProjectData(raw *ProjectSection) PutProjectData {
	out := PutProjectData{}
	if raw == nil {
		return out
	}

	out.Name = raw.Name
	out.IsProject = raw.IsProject.Bool()
	out.StartDate = raw.StartDate
	out.EndDate = raw.EndDate
	out.ActualStartDate = raw.ActualStartDate
	out.ActualEndDate = raw.ActualEndDate
	out.PeopleInvolved = raw.PeopleInvolved
	out.IsPartOfPublicPlan = raw.IsPartOfPublicPlan.Bool()
	if raw.RevisionCount != nil {
		out.RevisionCount = *raw.RevisionCount
	}

	return out
}

// GetProjectData is the read shape of the root row.
type GetProjectData struct {
	ID                 int64   `json:"project_id"`
	Name               string  `json:"project_name"`
	IsProject          bool    `json:"is_project"`
	StateCode          int     `json:"state_code"`
	StartDate          *string `json:"start_date"`
	EndDate            *string `json:"end_date"`
	ActualStartDate    *string `json:"actual_start_date"`
	ActualEndDate      *string `json:"actual_end_date"`
	PeopleInvolved     *int64  `json:"people_involved"`
	IsPartOfPublicPlan bool    `json:"is_project_part_public_plan"`
	PublishDate        *string `json:"publish_date"`
	RevisionCount      int     `json:"revision_count"`
}

func NewGetProjectData(row *domain.Project) GetProjectData {
	out := GetProjectData{}
	if row == nil {
		return out
	}

	out.ID = row.ID
	out.Name = row.Name
	out.IsProject = row.IsProject
	out.StateCode = row.StateCode
	out.StartDate = row.StartDate
	out.EndDate = row.EndDate
	out.ActualStartDate = row.ActualStartDate
	out.ActualEndDate = row.ActualEndDate
	out.PeopleInvolved = row.PeopleInvolved
	out.IsPartOfPublicPlan = row.IsPartOfPublicPlan
	out.PublishDate = row.PublishTimestamp
	out.RevisionCount = row.RevisionCount

	return out
}
