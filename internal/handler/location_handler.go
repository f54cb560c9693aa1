package handler

import (
	"net/http"

	"citizen_registry/internal/model"
	"citizen_registry/internal/service"

	"github.com/gin-gonic/gin"
)

// LocationHandler handles the country/state/city hierarchy. Reads are open
// to anyone; writes go through the auth and admin middleware.
type LocationHandler struct {
	countries service.CountryService
	states    service.StateService
	cities    service.CityService
}

// NewLocationHandler creates a new LocationHandler
func NewLocationHandler(countries service.CountryService, states service.StateService, cities service.CityService) *LocationHandler {
	return &LocationHandler{countries: countries, states: states, cities: cities}
}

// --- Countries ---

func (h *LocationHandler) ListCountries(c *gin.Context) {
	countries, err := h.countries.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, countries)
}

func (h *LocationHandler) GetCountry(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	country, err := h.countries.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, country)
}

func (h *LocationHandler) CreateCountry(c *gin.Context) {
	var req model.CountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	country, err := h.countries.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, country)
}

func (h *LocationHandler) ReplaceCountry(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req model.CountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	country, err := h.countries.Update(c.Request.Context(), id, model.UpdateCountryRequest{Name: &req.Name, Code: req.Code})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, country)
}

func (h *LocationHandler) UpdateCountry(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req model.UpdateCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	country, err := h.countries.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, country)
}

func (h *LocationHandler) DeleteCountry(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.countries.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --- States ---

func (h *LocationHandler) ListStates(c *gin.Context) {
	states, err := h.states.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, states)
}

func (h *LocationHandler) GetState(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	state, err := h.states.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *LocationHandler) CreateState(c *gin.Context) {
	var req model.StateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	state, err := h.states.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, state)
}

func (h *LocationHandler) ReplaceState(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req model.StateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	state, err := h.states.Update(c.Request.Context(), id, model.UpdateStateRequest{Name: &req.Name, Code: req.Code, Country: &req.Country})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *LocationHandler) UpdateState(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req model.UpdateStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	state, err := h.states.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *LocationHandler) DeleteState(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.states.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Cities ---

func (h *LocationHandler) ListCities(c *gin.Context) {
	cities, err := h.cities.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cities)
}

func (h *LocationHandler) GetCity(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	city, err := h.cities.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, city)
}

func (h *LocationHandler) CreateCity(c *gin.Context) {
	var req model.CityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	city, err := h.cities.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, city)
}

func (h *LocationHandler) ReplaceCity(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req model.CityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	city, err := h.cities.Update(c.Request.Context(), id, model.UpdateCityRequest{Name: &req.Name, Code: req.Code, State: &req.State})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, city)
}

func (h *LocationHandler) UpdateCity(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req model.UpdateCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	city, err := h.cities.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, city)
}

func (h *LocationHandler) DeleteCity(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.cities.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RegisterLocationRoutes registers the hierarchy routes: reads are public,
// writes require authentication plus the admin role.
func (h *LocationHandler) RegisterLocationRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	type resource struct {
		path                                       string
		list, get, create, replace, update, remove gin.HandlerFunc
	}
	resources := []resource{
		{"/countries", h.ListCountries, h.GetCountry, h.CreateCountry, h.ReplaceCountry, h.UpdateCountry, h.DeleteCountry},
		{"/states", h.ListStates, h.GetState, h.CreateState, h.ReplaceState, h.UpdateState, h.DeleteState},
		{"/cities", h.ListCities, h.GetCity, h.CreateCity, h.ReplaceCity, h.UpdateCity, h.DeleteCity},
	}

	for _, r := range resources {
		public := rg.Group(r.path)
		{
			public.GET("", r.list)
			public.GET("/:id", r.get)
		}

		admin := rg.Group(r.path)
		admin.Use(authMW, adminMW)
		{
			admin.POST("", r.create)
			admin.PUT("/:id", r.replace)
			admin.PATCH("/:id", r.update)
			admin.DELETE("/:id", r.remove)
		}
	}
}
