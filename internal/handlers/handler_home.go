package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getHome reports that the API is up.
func getHome(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "MTrack API v1"})
}

// getHealth is the unauthenticated liveness check.
func getHealth(ctx *gin.Context) {
	ctx.String(http.StatusOK, "OK")
}
