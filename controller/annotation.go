package controller

import (
	"encoding/json"
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/annothem/annothem-backend/controller/dto"
	"github.com/annothem/annothem-backend/repository"
	"github.com/annothem/annothem-backend/utils"
)

// GetAnnotations returns the stored payload for an image verbatim. An image
// without saved annotations yields an empty array, not an error.
func (ctrl *Controller) GetAnnotations(c *gin.Context) {
	ctx := c.Request.Context()

	imageID, err := parseImageID(c.Param("image_id"))
	if err != nil {
		utils.JSON400(c, "Invalid image_id")
		return
	}

	annotation, err := ctrl.Repository.AnnotationRepo.GetByImageID(imageID)
	if err != nil {
		if errors.Is(err, repository.ErrAnnotationNotFound) {
			c.JSON(200, []interface{}{})
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Annotation] Failed to load annotations for image %d: %v", imageID, err)
		utils.JSON500(c, "Failed to load annotations")
		return
	}

	// Stored bytes are returned as-is to preserve element order and keys.
	c.Data(200, "application/json; charset=utf-8", annotation.Data)
}

// SaveAnnotations upserts the payload for an image wholesale. The image is
// not checked for existence; a save racing a delete can leave a stray row,
// which the delete ordering otherwise prevents.
func (ctrl *Controller) SaveAnnotations(c *gin.Context) {
	ctx := c.Request.Context()

	imageID, err := parseImageID(c.Param("image_id"))
	if err != nil {
		utils.JSON400(c, "Invalid image_id")
		return
	}

	var req dto.SaveAnnotationRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Annotation] Failed to bind save request for image %d: %v", imageID, err)
		utils.JSON400(c, "Invalid request payload")
		return
	}

	data, err := json.Marshal(req.Data)
	if err != nil {
		utils.JSON400(c, "Invalid annotation data")
		return
	}

	if _, err := ctrl.Repository.AnnotationRepo.Upsert(imageID, datatypes.JSON(data)); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Annotation] Failed to save annotations for image %d: %v", imageID, err)
		utils.JSON500(c, "Failed to save annotations")
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Annotation] Saved %d annotation objects for image %d", len(req.Data), imageID)

	c.JSON(200, gin.H{"status": "success", "message": "Annotations saved"})
}
