package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"formation-suite-core/internal/modules/affectation/dto"
	"formation-suite-core/internal/modules/affectation/services"
	authMiddleware "formation-suite-core/internal/shared/middleware/auth"
	"formation-suite-core/internal/shared/utils"
)

// AffectationController expose les endpoints d'affectation des modules
type AffectationController struct {
	affectationService *services.AffectationService
}

func NewAffectationController(affectationService *services.AffectationService) *AffectationController {
	return &AffectationController{
		affectationService: affectationService,
	}
}

// AssignModules - PUT /api/v1/affectations
func (ctrl *AffectationController) AssignModules(c *gin.Context) {
	principal, _ := authMiddleware.PrincipalFromContext(c)

	var req dto.AssignModulesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	if err := ctrl.affectationService.AssignModules(c.Request.Context(), principal, req); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondData(c, http.StatusOK, gin.H{"message": "Affectations remplacées"})
}

// RemoveAssignment - DELETE /api/v1/affectations
func (ctrl *AffectationController) RemoveAssignment(c *gin.Context) {
	principal, _ := authMiddleware.PrincipalFromContext(c)

	var req dto.RemoveAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	if err := ctrl.affectationService.RemoveAssignment(c.Request.Context(), principal, req); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondData(c, http.StatusOK, gin.H{"message": "Affectation retirée"})
}

// ListAssignments - GET /api/v1/affectations/:enseignantId
func (ctrl *AffectationController) ListAssignments(c *gin.Context) {
	principal, _ := authMiddleware.PrincipalFromContext(c)
	enseignantID := c.Param("enseignantId")

	affectations, err := ctrl.affectationService.ListAssignments(c.Request.Context(), principal, enseignantID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondData(c, http.StatusOK, affectations)
}
