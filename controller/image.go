package controller

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/annothem/annothem-backend/entity"
	"github.com/annothem/annothem-backend/infra/produce"
	"github.com/annothem/annothem-backend/repository"
	"github.com/annothem/annothem-backend/utils"
)

const (
	DefaultListLimit = 100
)

// ListImages returns images newest first, paginated by skip/limit.
func (ctrl *Controller) ListImages(c *gin.Context) {
	ctx := c.Request.Context()

	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		skip = 0
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultListLimit)))
	if err != nil || limit <= 0 {
		limit = DefaultListLimit
	}

	images, err := ctrl.Repository.ImageRepo.List(skip, limit)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Image] Failed to list images: %v", err)
		utils.JSON500(c, "Failed to list images")
		return
	}

	c.JSON(200, images)
}

// UploadImage writes the file to the blob store first and records metadata
// only once the blob write succeeded, so a failed upload leaves no row
// behind. The blob is not rolled back if the metadata write fails.
func (ctrl *Controller) UploadImage(c *gin.Context) {
	ctx := c.Request.Context()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Image] Failed to get file from form data")
		utils.JSON400(c, "Failed to get file: "+err.Error())
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Image] Failed to open uploaded file: %v", err)
		utils.JSON500(c, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	storagePath := utils.StorageKeyFor(fileHeader.Filename)

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Image] Uploading '%s' (%d bytes) as '%s'",
		fileHeader.Filename, fileHeader.Size, storagePath)

	if err := ctrl.Storage.PutObject(ctx, storagePath, file, fileHeader.Size, contentType); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Image] Storage upload failed: %v", err)
		utils.JSON500(c, "Storage upload failed: "+err.Error())
		return
	}

	image := &entity.Image{
		Filename:    fileHeader.Filename,
		StoragePath: storagePath,
		PublicURL:   ctrl.Storage.PublicURL(storagePath),
	}

	if err := ctrl.Repository.ImageRepo.Create(image); err != nil {
		// The blob stays behind; see the delete path for the matching policy.
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Image] Failed to create image record for '%s': %v", storagePath, err)
		utils.JSON500(c, "Failed to save image metadata")
		return
	}

	c.JSON(200, image)
}

// DeleteImage removes the blob best-effort, then the annotation row and the
// image row in one transaction. A failed blob removal is logged and handed
// to the cleanup queue but never aborts the delete: orphaned blobs are
// preferred over zombie rows.
func (ctrl *Controller) DeleteImage(c *gin.Context) {
	ctx := c.Request.Context()

	imageID, err := parseImageID(c.Param("image_id"))
	if err != nil {
		utils.JSON400(c, "Invalid image_id")
		return
	}

	image, err := ctrl.Repository.ImageRepo.GetByID(imageID)
	if err != nil {
		if errors.Is(err, repository.ErrImageNotFound) {
			utils.JSON404(c, "Image not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Image] Failed to look up image %d: %v", imageID, err)
		utils.JSON500(c, "Failed to look up image")
		return
	}

	if err := ctrl.Storage.RemoveObject(ctx, image.StoragePath); err != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Image] Failed to delete blob '%s' for image %d: %v",
			image.StoragePath, imageID, err)
		ctrl.publishOrphanedBlob(c, image, err)
	}

	tx := ctrl.Repository.BeginTransaction()
	if tx.Error != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, tx.Error, "[Image] Failed to begin transaction: %v", tx.Error)
		utils.JSON500(c, "Failed to delete image")
		return
	}
	txRepo := ctrl.Repository.WithTransaction(tx)

	if err := txRepo.AnnotationRepo.DeleteByImageID(imageID); err != nil {
		tx.Rollback()
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Image] Failed to delete annotations for image %d: %v", imageID, err)
		utils.JSON500(c, "Failed to delete image")
		return
	}

	if err := txRepo.ImageRepo.Delete(imageID); err != nil {
		tx.Rollback()
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Image] Failed to delete image %d: %v", imageID, err)
		utils.JSON500(c, "Failed to delete image")
		return
	}

	if err := tx.Commit().Error; err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Image] Failed to commit delete of image %d: %v", imageID, err)
		utils.JSON500(c, "Failed to delete image")
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Image] Deleted image %d ('%s')", imageID, image.Filename)

	c.JSON(200, gin.H{"status": "success", "message": "Image deleted"})
}

func (ctrl *Controller) publishOrphanedBlob(c *gin.Context, image *entity.Image, cause error) {
	if ctrl.Infra.Produce == nil {
		return
	}

	ctx := c.Request.Context()
	msg := produce.OrphanedBlobMessage{
		Bucket:  ctrl.Config.EnvConfig.Minio.Bucket,
		Path:    image.StoragePath,
		ImageID: image.ID,
		Reason:  cause.Error(),
	}
	if err := ctrl.Infra.Produce.Cleanup.PublishOrphanedBlob(ctx, msg); err != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Image] Failed to publish cleanup event for '%s': %v",
			image.StoragePath, err)
	}
}

func parseImageID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
