package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"formation-suite-core/internal/modules/inscription/dto"
	"formation-suite-core/internal/modules/inscription/services"
	authMiddleware "formation-suite-core/internal/shared/middleware/auth"
	"formation-suite-core/internal/shared/utils"
)

// InscriptionController expose les endpoints d'inscription aux offres
type InscriptionController struct {
	inscriptionService *services.InscriptionService
}

func NewInscriptionController(inscriptionService *services.InscriptionService) *InscriptionController {
	return &InscriptionController{
		inscriptionService: inscriptionService,
	}
}

// Create - POST /api/v1/inscriptions
func (ctrl *InscriptionController) Create(c *gin.Context) {
	principal, _ := authMiddleware.PrincipalFromContext(c)

	var req dto.CreateInscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	inscription, err := ctrl.inscriptionService.Create(c.Request.Context(), principal, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondData(c, http.StatusCreated, inscription)
}

// Decide - POST /api/v1/inscriptions/:id/decision
func (ctrl *InscriptionController) Decide(c *gin.Context) {
	principal, _ := authMiddleware.PrincipalFromContext(c)
	inscriptionID := c.Param("id")

	var req dto.DecideInscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	if err := ctrl.inscriptionService.Decide(c.Request.Context(), principal, inscriptionID, req); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondData(c, http.StatusOK, gin.H{"message": "Décision appliquée"})
}

// Cancel - POST /api/v1/inscriptions/:id/annulation
func (ctrl *InscriptionController) Cancel(c *gin.Context) {
	principal, _ := authMiddleware.PrincipalFromContext(c)
	inscriptionID := c.Param("id")

	if err := ctrl.inscriptionService.Cancel(c.Request.Context(), principal, inscriptionID); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondData(c, http.StatusOK, gin.H{"message": "Inscription annulée"})
}

// ListForOffer - GET /api/v1/inscriptions/offre/:offreId
func (ctrl *InscriptionController) ListForOffer(c *gin.Context) {
	principal, _ := authMiddleware.PrincipalFromContext(c)
	offreID := c.Param("offreId")

	inscriptions, err := ctrl.inscriptionService.ListForOffer(c.Request.Context(), principal, offreID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondData(c, http.StatusOK, inscriptions)
}

// ListOwn - GET /api/v1/inscriptions/miennes
func (ctrl *InscriptionController) ListOwn(c *gin.Context) {
	principal, _ := authMiddleware.PrincipalFromContext(c)

	inscriptions, err := ctrl.inscriptionService.ListOwn(c.Request.Context(), principal)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondData(c, http.StatusOK, inscriptions)
}
