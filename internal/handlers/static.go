package handlers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

func Home() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to the lesson store API")
	}
}

// ServeImage serves files from the configured image directory. Anything that
// does not resolve to an existing file inside that directory is a JSON 404,
// including traversal attempts.
func ServeImage(dir string) gin.HandlerFunc {
	base := filepath.Clean(dir)

	return func(c *gin.Context) {
		const route = "GET /images"
		defer handlePanic(c, route)

		rel := strings.TrimPrefix(path.Clean("/"+c.Param("file")), "/")
		if rel == "" {
			respondWithError(c, http.StatusNotFound, route, "image not found")
			return
		}

		target := filepath.Join(base, filepath.FromSlash(rel))
		if target != base && !strings.HasPrefix(target, base+string(os.PathSeparator)) {
			respondWithError(c, http.StatusNotFound, route, "image not found")
			return
		}

		info, err := os.Stat(target)
		if err != nil || info.IsDir() {
			respondWithError(c, http.StatusNotFound, route, "image not found")
			return
		}

		c.File(target)
	}
}
