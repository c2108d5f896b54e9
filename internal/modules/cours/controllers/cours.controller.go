package controllers

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"formation-suite-core/internal/modules/cours/dto"
	"formation-suite-core/internal/modules/cours/services"
	authMiddleware "formation-suite-core/internal/shared/middleware/auth"
	"formation-suite-core/internal/shared/utils"
)

// CoursController expose les endpoints du cycle de vie des cours
type CoursController struct {
	coursService *services.CoursService
}

func NewCoursController(coursService *services.CoursService) *CoursController {
	return &CoursController{
		coursService: coursService,
	}
}

// Create - POST /api/v1/cours
func (ctrl *CoursController) Create(c *gin.Context) {
	principal, _ := authMiddleware.PrincipalFromContext(c)

	var req dto.CreateCoursRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	if fileHeader, err := c.FormFile("fichierpdf"); err == nil {
		data, contentType, filename, err := readUploadedFile(fileHeader)
		if err != nil {
			utils.RespondValidationError(c, err)
			return
		}
		req.FileData = data
		req.FileContentType = contentType
		req.FileName = filename
	}

	cours, err := ctrl.coursService.Create(c.Request.Context(), principal, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondData(c, http.StatusCreated, cours)
}

// Update - PUT /api/v1/cours/:id
func (ctrl *CoursController) Update(c *gin.Context) {
	principal, _ := authMiddleware.PrincipalFromContext(c)
	coursID := c.Param("id")

	var req dto.UpdateCoursRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	if fileHeader, err := c.FormFile("fichierpdf"); err == nil {
		data, contentType, filename, err := readUploadedFile(fileHeader)
		if err != nil {
			utils.RespondValidationError(c, err)
			return
		}
		req.FileData = data
		req.FileContentType = contentType
		req.FileName = filename
	}

	if err := ctrl.coursService.Update(c.Request.Context(), principal, coursID, req); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondData(c, http.StatusOK, gin.H{"message": "Cours mis à jour"})
}

// Delete - DELETE /api/v1/cours/:id
func (ctrl *CoursController) Delete(c *gin.Context) {
	principal, _ := authMiddleware.PrincipalFromContext(c)
	coursID := c.Param("id")

	if err := ctrl.coursService.Delete(c.Request.Context(), principal, coursID); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondData(c, http.StatusOK, gin.H{"message": "Cours supprimé"})
}

// Export - POST /api/v1/cours/:id/export
func (ctrl *CoursController) Export(c *gin.Context) {
	principal, _ := authMiddleware.PrincipalFromContext(c)
	coursID := c.Param("id")

	if err := ctrl.coursService.Export(c.Request.Context(), principal, coursID); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondData(c, http.StatusOK, gin.H{"message": "Cours remis en attente de validation"})
}

// Review - POST /api/v1/cours/:id/review
func (ctrl *CoursController) Review(c *gin.Context) {
	principal, _ := authMiddleware.PrincipalFromContext(c)
	coursID := c.Param("id")

	var req dto.ReviewCoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	if err := ctrl.coursService.Review(c.Request.Context(), principal, coursID, req); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondData(c, http.StatusOK, gin.H{"message": "Revue appliquée"})
}

// List - GET /api/v1/cours
func (ctrl *CoursController) List(c *gin.Context) {
	principal, _ := authMiddleware.PrincipalFromContext(c)

	var filters dto.ListCoursFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	response, err := ctrl.coursService.ListVisible(c.Request.Context(), principal, filters)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondData(c, http.StatusOK, response)
}

func readUploadedFile(fileHeader *multipart.FileHeader) ([]byte, string, string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, "", "", err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", "", err
	}

	return data, fileHeader.Header.Get("Content-Type"), fileHeader.Filename, nil
}
