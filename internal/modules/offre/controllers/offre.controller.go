package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"formation-suite-core/internal/modules/offre/dto"
	"formation-suite-core/internal/modules/offre/services"
	authMiddleware "formation-suite-core/internal/shared/middleware/auth"
	"formation-suite-core/internal/shared/utils"
)

// OffreController expose les endpoints des offres de formation
type OffreController struct {
	offreService *services.OffreService
}

func NewOffreController(offreService *services.OffreService) *OffreController {
	return &OffreController{
		offreService: offreService,
	}
}

// Create - POST /api/v1/offres
func (ctrl *OffreController) Create(c *gin.Context) {
	principal, _ := authMiddleware.PrincipalFromContext(c)

	var req dto.CreateOffreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	offre, err := ctrl.offreService.Create(c.Request.Context(), principal, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondData(c, http.StatusCreated, offre)
}

// Close - POST /api/v1/offres/:id/cloture
func (ctrl *OffreController) Close(c *gin.Context) {
	principal, _ := authMiddleware.PrincipalFromContext(c)
	offreID := c.Param("id")

	if err := ctrl.offreService.Close(c.Request.Context(), principal, offreID); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondData(c, http.StatusOK, gin.H{"message": "Offre clôturée"})
}

// ListOwn - GET /api/v1/offres
func (ctrl *OffreController) ListOwn(c *gin.Context) {
	principal, _ := authMiddleware.PrincipalFromContext(c)

	offres, err := ctrl.offreService.ListOwn(c.Request.Context(), principal)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondData(c, http.StatusOK, offres)
}

// ListOpen - GET /api/v1/offres/ouvertes
func (ctrl *OffreController) ListOpen(c *gin.Context) {
	principal, _ := authMiddleware.PrincipalFromContext(c)

	offres, err := ctrl.offreService.ListOpen(c.Request.Context(), principal)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondData(c, http.StatusOK, offres)
}
