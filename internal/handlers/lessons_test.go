package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

func TestUpdateByIDRejectsInvalidIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PUT("/lessons/:id", UpdateByID())

	req := httptest.NewRequest(http.MethodPut, "/lessons/not-an-objectid", strings.NewReader(`{"spaces":4}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "invalid id") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestUpdateByIDRejectsEmptyPatch(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PUT("/lessons/:id", UpdateByID())

	req := httptest.NewRequest(http.MethodPut, "/lessons/64f0b0a1c2d3e4f5a6b7c8d9", strings.NewReader(`{"_id":"whatever"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestBuildSetPatchDropsIdentityFields(t *testing.T) {
	patch := bson.M{
		"_id":         "abc",
		"orderNumber": 99,
		"phone":       "555",
		"spaces":      3,
	}

	clean := buildSetPatch(patch, "orderNumber")
	if _, ok := clean["_id"]; ok {
		t.Fatal("expected _id to be stripped")
	}
	if _, ok := clean["orderNumber"]; ok {
		t.Fatal("expected protected orderNumber to be stripped")
	}
	if clean["phone"] != "555" || clean["spaces"] != 3 {
		t.Fatalf("expected remaining fields untouched, got %#v", clean)
	}
	if patch["_id"] != "abc" {
		t.Fatal("expected the input patch to be left unmodified")
	}
}
