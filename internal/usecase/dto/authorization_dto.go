package dto

import "github.com/restoration-tracker/internal/domain"

// AuthorizationSection is the raw "authorization" block of a create/update
// body. Each entry is a permit reference plus a type string.
type AuthorizationSection struct {
	Authorizations []AuthorizationItem `json:"authorizations"`
}

type AuthorizationItem struct {
	AuthorizationRef  string `json:"authorization_ref"`
	AuthorizationType string `json:"authorization_type"`
}

type PostAuthorizationData struct {
	Authorizations []AuthorizationItem
}

func NewPostAuthorizationData(raw *AuthorizationSection) PostAuthorizationData {
	out := PostAuthorizationData{Authorizations: []AuthorizationItem{}}
	if raw == nil {
		return out
	}
	out.Authorizations = append(out.Authorizations, raw.Authorizations...)
	return out
}

type GetAuthorizationData struct {
	Authorizations []AuthorizationItem `json:"authorizations"`
}

func NewGetAuthorizationData(rows []domain.Permit) GetAuthorizationData {
	out := GetAuthorizationData{Authorizations: []AuthorizationItem{}}
	for _, row := range rows {
		out.Authorizations = append(out.Authorizations, AuthorizationItem{
			AuthorizationRef:  row.Number,
			AuthorizationType: row.Type,
		})
	}
	return out
}
