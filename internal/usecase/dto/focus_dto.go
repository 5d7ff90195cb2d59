package dto

import "github.com/restoration-tracker/internal/domain"

// FocusSection is the raw "focus" block: boolean focus flags plus the
// people-involved count. These land on the root project row.
type FocusSection struct {
	IsHealingLand        FlexBool `json:"is_healing_land"`
	IsHealingPeople      FlexBool `json:"is_healing_people"`
	IsLandInitiative     FlexBool `json:"is_land_initiative"`
	IsCulturalInitiative FlexBool `json:"is_cultural_initiative"`
	PeopleInvolved       *int64   `json:"people_involved"`
}

type PostFocusData struct {
	IsHealingLand        bool
	IsHealingPeople      bool
	IsLandInitiative     bool
	IsCulturalInitiative bool
	PeopleInvolved       *int64
}

func NewPostFocusData(raw *FocusSection) PostFocusData {
	out := PostFocusData{}
	if raw == nil {
		return out
	}

	out.IsHealingLand = raw.IsHealingLand.Bool()
	out.IsHealingPeople = raw.IsHealingPeople.Bool()
	out.IsLandInitiative = raw.IsLandInitiative.Bool()
	out.IsCulturalInitiative = raw.IsCulturalInitiative.Bool()
	out.PeopleInvolved = raw.PeopleInvolved

	return out
}

type GetFocusData struct {
	IsHealingLand        bool   `json:"is_healing_land"`
	IsHealingPeople      bool   `json:"is_healing_people"`
	IsLandInitiative     bool   `json:"is_land_initiative"`
	IsCulturalInitiative bool   `json:"is_cultural_initiative"`
	PeopleInvolved       *int64 `json:"people_involved"`
}

func NewGetFocusData(row *domain.Project) GetFocusData {
	out := GetFocusData{}
	if row == nil {
		return out
	}

	out.IsHealingLand = row.IsHealingLand
	out.IsHealingPeople = row.IsHealingPeople
	out.IsLandInitiative = row.IsLandInitiative
	out.IsCulturalInitiative = row.IsCulturalInitiative
	out.PeopleInvolved = row.PeopleInvolved

	return out
}

// RestPlanSection is the raw "restoration_plan" block: a single flag saying
// whether the project is part of a published public plan.
type RestPlanSection struct {
	IsProjectPartPublicPlan FlexBool `json:"is_project_part_public_plan"`
}

type PostRestPlanData struct {
	IsProjectPartPublicPlan bool
}

func NewPostRestPlanData(raw *RestPlanSection) PostRestPlanData {
	out := PostRestPlanData{}
	if raw == nil {
		return out
	}
	out.IsProjectPartPublicPlan = raw.IsProjectPartPublicPlan.Bool()
	return out
}
