package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/annothem/annothem-backend/utils"
)

// StorageInfo reports blob store server status. Admin only.
func (ctrl *Controller) StorageInfo(c *gin.Context) {
	ctx := c.Request.Context()

	info, err := ctrl.Infra.Minio.ServerInfo(ctx)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Storage] Failed to get server info: %v", err)
		utils.JSON500(c, "Failed to get storage server info")
		return
	}

	c.JSON(200, gin.H{
		"mode":    info.Mode,
		"region":  info.Region,
		"buckets": info.Buckets,
		"objects": info.Objects,
		"usage":   info.Usage,
	})
}
