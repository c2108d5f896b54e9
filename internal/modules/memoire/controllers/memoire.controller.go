package controllers

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"formation-suite-core/internal/modules/memoire/dto"
	"formation-suite-core/internal/modules/memoire/services"
	authMiddleware "formation-suite-core/internal/shared/middleware/auth"
	"formation-suite-core/internal/shared/utils"
)

// MemoireController expose les endpoints du cycle de vie des mémoires
type MemoireController struct {
	memoireService *services.MemoireService
}

func NewMemoireController(memoireService *services.MemoireService) *MemoireController {
	return &MemoireController{
		memoireService: memoireService,
	}
}

// AssignSupervision - POST /api/v1/memoires/supervision
func (ctrl *MemoireController) AssignSupervision(c *gin.Context) {
	principal, _ := authMiddleware.PrincipalFromContext(c)

	var req dto.AssignSupervisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	memoire, err := ctrl.memoireService.AssignSupervision(c.Request.Context(), principal, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondData(c, http.StatusCreated, memoire)
}

// GetOwn - GET /api/v1/memoires/mien
func (ctrl *MemoireController) GetOwn(c *gin.Context) {
	principal, _ := authMiddleware.PrincipalFromContext(c)

	memoire, err := ctrl.memoireService.GetOwn(c.Request.Context(), principal)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondData(c, http.StatusOK, memoire)
}

// UpdateContent - PUT /api/v1/memoires/mien
func (ctrl *MemoireController) UpdateContent(c *gin.Context) {
	principal, _ := authMiddleware.PrincipalFromContext(c)

	var req dto.UpdateMemoireRequest
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

	if err := ctrl.memoireService.UpdateContent(c.Request.Context(), principal, req); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondData(c, http.StatusOK, gin.H{"message": "Mémoire mis à jour"})
}

// Validate - POST /api/v1/memoires/:id/validate
func (ctrl *MemoireController) Validate(c *gin.Context) {
	principal, _ := authMiddleware.PrincipalFromContext(c)
	memoireID := c.Param("id")

	var req dto.ValidateMemoireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	if err := ctrl.memoireService.Validate(c.Request.Context(), principal, memoireID, req); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondData(c, http.StatusOK, gin.H{"message": "Décision appliquée"})
}

// ListColleagues - GET /api/v1/memoires/collegues
func (ctrl *MemoireController) ListColleagues(c *gin.Context) {
	principal, _ := authMiddleware.PrincipalFromContext(c)

	memoires, err := ctrl.memoireService.ListColleagues(c.Request.Context(), principal)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondData(c, http.StatusOK, memoires)
}

// ListSupervised - GET /api/v1/memoires/encadres
func (ctrl *MemoireController) ListSupervised(c *gin.Context) {
	principal, _ := authMiddleware.PrincipalFromContext(c)

	memoires, err := ctrl.memoireService.ListSupervised(c.Request.Context(), principal)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondData(c, http.StatusOK, memoires)
}

// ListForEstablishment - GET /api/v1/memoires/etablissement
func (ctrl *MemoireController) ListForEstablishment(c *gin.Context) {
	principal, _ := authMiddleware.PrincipalFromContext(c)

	memoires, err := ctrl.memoireService.ListForEstablishment(c.Request.Context(), principal)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondData(c, http.StatusOK, memoires)
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
