package controllers

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"formation-suite-core/internal/modules/programme/dto"
	"formation-suite-core/internal/modules/programme/services"
	authMiddleware "formation-suite-core/internal/shared/middleware/auth"
	"formation-suite-core/internal/shared/utils"
)

// ProgrammeController expose les endpoints du cycle de vie des programmes
type ProgrammeController struct {
	programmeService *services.ProgrammeService
}

func NewProgrammeController(programmeService *services.ProgrammeService) *ProgrammeController {
	return &ProgrammeController{
		programmeService: programmeService,
	}
}

// Create - POST /api/v1/programmes
func (ctrl *ProgrammeController) Create(c *gin.Context) {
	principal, _ := authMiddleware.PrincipalFromContext(c)

	var req dto.CreateProgrammeRequest
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

	programme, err := ctrl.programmeService.Create(c.Request.Context(), principal, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondData(c, http.StatusCreated, programme)
}

// Review - POST /api/v1/programmes/:id/review
func (ctrl *ProgrammeController) Review(c *gin.Context) {
	principal, _ := authMiddleware.PrincipalFromContext(c)
	programmeID := c.Param("id")

	var req dto.ReviewProgrammeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	if err := ctrl.programmeService.Review(c.Request.Context(), principal, programmeID, req); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondData(c, http.StatusOK, gin.H{"message": "Revue appliquée"})
}

// Delete - DELETE /api/v1/programmes/:id
func (ctrl *ProgrammeController) Delete(c *gin.Context) {
	principal, _ := authMiddleware.PrincipalFromContext(c)
	programmeID := c.Param("id")

	if err := ctrl.programmeService.Delete(c.Request.Context(), principal, programmeID); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondData(c, http.StatusOK, gin.H{"message": "Programme supprimé"})
}

// ListForTeacher - GET /api/v1/programmes/enseignant
func (ctrl *ProgrammeController) ListForTeacher(c *gin.Context) {
	principal, _ := authMiddleware.PrincipalFromContext(c)

	var filters dto.ListProgrammeFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	response, err := ctrl.programmeService.ListForTeacher(c.Request.Context(), principal, filters)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondData(c, http.StatusOK, response)
}

// ListForRegional - GET /api/v1/programmes
func (ctrl *ProgrammeController) ListForRegional(c *gin.Context) {
	principal, _ := authMiddleware.PrincipalFromContext(c)

	var filters dto.ListProgrammeFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	response, err := ctrl.programmeService.ListForRegional(c.Request.Context(), principal, filters)
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
