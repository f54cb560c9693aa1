package model

// Country is the root of the location hierarchy.
type Country struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code int    `json:"code"`
}

// State belongs to a country. The shallow shape (writes) carries the parent
// as an id under the "country" key.
type State struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Code      int    `json:"code"`
	CountryID int64  `json:"country"`
}

// StateDetail is the read shape: the parent country embedded.
type StateDetail struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Code    int     `json:"code"`
	Country Country `json:"country"`
}

// City belongs to a state.
type City struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Code    int    `json:"code"`
	StateID int64  `json:"state"`
}

// CityDetail embeds the state and, through it, the country.
type CityDetail struct {
	ID    int64       `json:"id"`
	Name  string      `json:"name"`
	Code  int         `json:"code"`
	State StateDetail `json:"state"`
}

// CountryRequest is the write payload for countries. Code is a pointer so a
// present zero survives the required check.
type CountryRequest struct {
	Name string `json:"name" binding:"required"`
	Code *int   `json:"code" binding:"required"`
}

// UpdateCountryRequest carries a partial country update.
type UpdateCountryRequest struct {
	Name *string `json:"name,omitempty"`
	Code *int    `json:"code,omitempty"`
}

// StateRequest is the write payload for states; Country references the
// parent by id.
type StateRequest struct {
	Name    string `json:"name" binding:"required"`
	Code    *int   `json:"code" binding:"required"`
	Country int64  `json:"country" binding:"required"`
}

// UpdateStateRequest carries a partial state update.
type UpdateStateRequest struct {
	Name    *string `json:"name,omitempty"`
	Code    *int    `json:"code,omitempty"`
	Country *int64  `json:"country,omitempty"`
}

// CityRequest is the write payload for cities; State references the parent
// by id.
type CityRequest struct {
	Name  string `json:"name" binding:"required"`
	Code  *int   `json:"code" binding:"required"`
	State int64  `json:"state" binding:"required"`
}

// UpdateCityRequest carries a partial city update.
type UpdateCityRequest struct {
	Name  *string `json:"name,omitempty"`
	Code  *int    `json:"code,omitempty"`
	State *int64  `json:"state,omitempty"`
}
