package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"formation-suite-core/internal/modules/core-services/services"
	"formation-suite-core/internal/shared/utils"
)

// DocumentController expose le téléchargement des supports PDF
type DocumentController struct {
	documentService *services.DocumentService
}

func NewDocumentController(documentService *services.DocumentService) *DocumentController {
	return &DocumentController{
		documentService: documentService,
	}
}

// Download - GET /api/v1/documents/:reference
func (ctrl *DocumentController) Download(c *gin.Context) {
	reference := c.Param("reference")

	document, err := ctrl.documentService.Retrieve(c.Request.Context(), reference)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="%s"`, document.Filename))
	c.Data(http.StatusOK, document.ContentType, document.Data)
}
