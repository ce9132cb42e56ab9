package server

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// Run serves the router on addr. PORT overrides the configured address so the
// binary works unchanged on platforms that inject the port.
func Run(router *gin.Engine, addr string) {
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	if addr == "" {
		addr = ":8080"
	}
	if err := router.Run(addr); err != nil && err != http.ErrServerClosed {
		panic(err)
	}
}
