package dto

import "github.com/restoration-tracker/internal/domain"

// ContactSection is the raw "contact" block of a create/update body.
type ContactSection struct {
	Contacts []ContactItem `json:"contacts"`
}

type ContactItem struct {
	FirstName     string   `json:"first_name"`
	LastName      string   `json:"last_name"`
	EmailAddress  string   `json:"email_address"`
	Organization  string   `json:"organization"`
	IsPublic      FlexBool `json:"is_public"`
	IsPrimary     FlexBool `json:"is_primary"`
	IsFirstNation *bool    `json:"is_first_nation"`
	PhoneNumber   *string  `json:"phone_number"`
}

// PostContactData holds defaulted write-side contacts. Visibility flags are
// native booleans here; the 'Y'/'N' encoding is applied at the SQL layer.
type PostContactData struct {
	Contacts []PostContactItem
}

type PostContactItem struct {
	FirstName     string
	LastName      string
	EmailAddress  string
	Organization  string
	IsPublic      bool
	IsPrimary     bool
	IsFirstNation *bool
	PhoneNumber   *string
}

func NewPostContactData(raw *ContactSection) PostContactData {
	out := PostContactData{Contacts: []PostContactItem{}}
	if raw == nil {
		return out
	}

	for _, c := range raw.Contacts {
		out.Contacts = append(out.Contacts, PostContactItem{
			FirstName:     c.FirstName,
			LastName:      c.LastName,
			EmailAddress:  c.EmailAddress,
			Organization:  c.Organization,
			IsPublic:      c.IsPublic.Bool(),
			IsPrimary:     c.IsPrimary.Bool(),
			IsFirstNation: c.IsFirstNation,
			PhoneNumber:   c.PhoneNumber,
		})
	}

	return out
}

// GetContactData exposes visibility flags as the strings "true"/"false",
// the inverse of the 'Y'/'N' storage encoding. The asymmetry with the write
// path is intentional; consumers depend on the string form.
type GetContactData struct {
	Contacts []GetContactItem `json:"contacts"`
}

type GetContactItem struct {
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	EmailAddress  string  `json:"email_address"`
	Organization  string  `json:"organization"`
	IsPublic      string  `json:"is_public"`
	IsPrimary     string  `json:"is_primary"`
	IsFirstNation *bool   `json:"is_first_nation"`
	PhoneNumber   *string `json:"phone_number"`
}

func NewGetContactData(rows []domain.Contact) GetContactData {
	out := GetContactData{Contacts: []GetContactItem{}}

	for _, row := range rows {
		out.Contacts = append(out.Contacts, GetContactItem{
			FirstName:     row.FirstName,
			LastName:      row.LastName,
			EmailAddress:  row.EmailAddress,
			Organization:  row.Organization,
			IsPublic:      YNToString(row.IsPublic),
			IsPrimary:     YNToString(row.IsPrimary),
			IsFirstNation: row.IsFirstNation,
			PhoneNumber:   row.Phone,
		})
	}

	return out
}
