package dto

// ProjectIDResponse is the create/insert success envelope body.
type ProjectIDResponse struct {
	ID int64 `json:"id"`
}

// GetProjectResponse is the assembled read shape of the whole aggregate.
type GetProjectResponse struct {
	Project         GetProjectData       `json:"project"`
	Focus           GetFocusData         `json:"focus"`
	Contact         GetContactData       `json:"contact"`
	Species         GetSpeciesData       `json:"species"`
	IUCN            GetIUCNData          `json:"iucn"`
	Funding         GetFundingData       `json:"funding"`
	Partnership     GetPartnershipData   `json:"partnership"`
	Objective       GetObjectiveData     `json:"objective"`
	Location        GetLocationData      `json:"location"`
	Authorization   GetAuthorizationData `json:"authorization"`
}

// GetParticipantData is one participant row on the read path.
type GetParticipantData struct {
	ProjectParticipationID int64  `json:"project_participation_id"`
	ProjectID              int64  `json:"project_id"`
	SystemUserID           int64  `json:"system_user_id"`
	ProjectRoleID          int64  `json:"project_role_id"`
	ProjectRoleName        string `json:"project_role_name"`
	UserIdentifier         string `json:"user_identifier"`
}
