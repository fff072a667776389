package utils

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func imageFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("image", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if err := req.ParseMultipartForm(1 << 20); err != nil {
		t.Fatalf("parse multipart: %v", err)
	}
	return req.MultipartForm.File["image"][0]
}

func TestSaveUploadedImageServedFromStaticMount(t *testing.T) {
	uploadDir := t.TempDir()
	fh := imageFileHeader(t, "pic.png", []byte("png-bytes"))

	publicPath, err := SaveUploadedImage(fh, uploadDir, "menuImages")
	if err != nil {
		t.Fatalf("save image: %v", err)
	}
	if !strings.HasPrefix(publicPath, "/uploads/menuImages/") {
		t.Fatalf("expected path under /uploads/menuImages/, got %q", publicPath)
	}
	if !strings.HasSuffix(publicPath, "_pic.png") {
		t.Fatalf("expected original filename suffix, got %q", publicPath)
	}

	// the stored path must resolve through the same mount the server uses
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Static("/uploads", uploadDir)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, publicPath, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected stored path to resolve, got %d for %s", w.Code, publicPath)
	}
	if w.Body.String() != "png-bytes" {
		t.Fatalf("unexpected served content %q", w.Body.String())
	}
}
