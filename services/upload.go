package services

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"HealisPortal/util"
)

const (
	UploadDir     = "uploads"
	maxUploadSize = 5 << 20 // 5MB
)

var allowedUploadExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".pdf":  true,
}

// EnsureUploadDir creates the upload directory at startup.
func EnsureUploadDir() error {
	return os.MkdirAll(UploadDir, 0o755)
}

/*
* Pull the named file out of the multipart form; absent files are not an error
* Reject anything but jpeg/jpg/png/pdf and anything over 5MB
* Store under uploads/ with a generated timestamp filename
 */
func SaveUpload(c *gin.Context, field string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedUploadExts[ext] {
		return "", errors.New(util.INVALID_FILE_TYPE)
	}
	if file.Size > maxUploadSize {
		return "", errors.New(util.FILE_TOO_LARGE)
	}

	name := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)
	dst := filepath.Join(UploadDir, name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", err
	}
	return dst, nil
}
