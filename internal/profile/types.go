package profile

import "github.com/qawafel/crm-backend/pkg/db/models"

// Profile is the single operator profile.
type Profile struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

func FromModel(m models.UserProfile) Profile {
	return Profile{ID: m.ID, FullName: m.FullName, Email: m.Email, Phone: m.Phone}
}

func (p Profile) ToModel() models.UserProfile {
	return models.UserProfile{ID: models.ProfileID, FullName: p.FullName, Email: p.Email, Phone: p.Phone}
}
