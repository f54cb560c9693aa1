package model

// Citizen is a registration record owned by exactly one user. The owner is
// never serialized; ownership is enforced server-side.
type Citizen struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	LastName         string `json:"last_name"`
	Address          string `json:"address"`
	Phone            int64  `json:"phone"`
	NoIdentification int64  `json:"no_identification"`
	CityID           int64  `json:"city"`
	UserID           int64  `json:"-"`
}

// CitizenDetail is the read shape with the full city/state/country chain
// embedded.
type CitizenDetail struct {
	ID               int64      `json:"id"`
	Name             string     `json:"name"`
	LastName         string     `json:"last_name"`
	Address          string     `json:"address"`
	Phone            int64      `json:"phone"`
	NoIdentification int64      `json:"no_identification"`
	City             CityDetail `json:"city"`
	UserID           int64      `json:"-"`
}

// CitizenRequest is the write payload. Phone and NoIdentification arrive as
// decimal strings and are validated before the record is persisted; any
// client-supplied owner is ignored.
type CitizenRequest struct {
	Name             string `json:"name" binding:"required,max=20"`
	LastName         string `json:"last_name" binding:"required,max=20"`
	Address          string `json:"address" binding:"required,max=30"`
	Phone            string `json:"phone" binding:"required"`
	NoIdentification string `json:"no_identification" binding:"required"`
	City             int64  `json:"city" binding:"required"`
}

// UpdateCitizenRequest carries a partial citizen update.
type UpdateCitizenRequest struct {
	Name             *string `json:"name,omitempty" binding:"omitempty,max=20"`
	LastName         *string `json:"last_name,omitempty" binding:"omitempty,max=20"`
	Address          *string `json:"address,omitempty" binding:"omitempty,max=30"`
	Phone            *string `json:"phone,omitempty"`
	NoIdentification *string `json:"no_identification,omitempty"`
	City             *int64  `json:"city,omitempty"`
}
