package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestWriteJSONUsesThreeSpaceIndentation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	writeJSON(c, http.StatusOK, gin.H{"topic": "math"})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Body.String(); got != "{\n   \"topic\": \"math\"\n}" {
		t.Fatalf("unexpected body: %q", got)
	}
}

func TestRespondWithErrorEmitsGenericBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondWithError(c, http.StatusInternalServerError, "GET /lessons", "db error")

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "db error") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
	if !c.IsAborted() {
		t.Fatal("expected the context to be aborted")
	}
}

func TestServeImageMissingFileReturnsJSON404(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/images/*file", ServeImage(t.TempDir()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/images/missing.png", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "image not found") {
		t.Fatalf("expected a JSON error body, got %s", w.Body.String())
	}
}

func TestServeImageRejectsTraversal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/images/*file", ServeImage(t.TempDir()))

	req := httptest.NewRequest(http.MethodGet, "/images/%2e%2e%2fsecret.txt", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
