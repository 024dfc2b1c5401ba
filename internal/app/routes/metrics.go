package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupMetrics exposes a Prometheus handler at path
func SetupMetrics(router *gin.Engine, path string, handler http.Handler) {
	router.GET(path, gin.WrapH(handler))
}
