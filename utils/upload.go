package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// SaveUploadedImage writes a multipart image into baseDir/folder with a
// uuid-prefixed filename and returns the public path ("/uploads/folder/name"),
// matching the static mount of the upload dir.
func SaveUploadedImage(fh *multipart.FileHeader, baseDir, folder string) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dir := filepath.Join(baseDir, folder)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s_%s", uuid.NewString(), filepath.Base(fh.Filename))
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return "/uploads/" + folder + "/" + name, nil
}
