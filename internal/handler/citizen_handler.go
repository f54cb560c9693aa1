package handler

import (
	"net/http"

	"citizen_registry/internal/model"
	"citizen_registry/internal/service"

	"github.com/gin-gonic/gin"
)

// CitizenHandler handles citizen registry requests. Every route requires a
// bearer token; ownership is enforced in the service layer.
type CitizenHandler struct {
	service service.CitizenService
}

// NewCitizenHandler creates a new CitizenHandler
func NewCitizenHandler(s service.CitizenService) *CitizenHandler {
	return &CitizenHandler{service: s}
}

// CreateCitizen registers a citizen owned by the caller; any owner in the
// payload is ignored
func (h *CitizenHandler) CreateCitizen(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req model.CitizenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	citizen, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, citizen)
}

// ListMyCitizens returns only the caller's records, expanded
func (h *CitizenHandler) ListMyCitizens(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	citizens, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, citizens)
}

func (h *CitizenHandler) GetCitizen(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	citizen, err := h.service.Get(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, citizen)
}

func (h *CitizenHandler) ReplaceCitizen(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req model.CitizenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	citizen, err := h.service.Update(c.Request.Context(), id, userID, model.UpdateCitizenRequest{
		Name:             &req.Name,
		LastName:         &req.LastName,
		Address:          &req.Address,
		Phone:            &req.Phone,
		NoIdentification: &req.NoIdentification,
		City:             &req.City,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, citizen)
}

func (h *CitizenHandler) UpdateCitizen(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req model.UpdateCitizenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	citizen, err := h.service.Update(c.Request.Context(), id, userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, citizen)
}

func (h *CitizenHandler) DeleteCitizen(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RegisterCitizenRoutes registers the citizen routes; all of them require
// authentication
func (h *CitizenHandler) RegisterCitizenRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	citizens := rg.Group("/citizens")
	citizens.Use(authMW)
	{
		citizens.POST("", h.CreateCitizen)
		citizens.GET("", h.ListMyCitizens)
		citizens.GET("/:id", h.GetCitizen)
		citizens.PUT("/:id", h.ReplaceCitizen)
		citizens.PATCH("/:id", h.UpdateCitizen)
		citizens.DELETE("/:id", h.DeleteCitizen)
	}
}
