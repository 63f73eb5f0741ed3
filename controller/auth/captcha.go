package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"planora/dto"
	"planora/services"
)

func CaptchaController(router *gin.Engine) {
	routes := router.Group("/auth")
	{
		routes.POST("/captcha", VerifyCaptcha)
	}
}

func VerifyCaptcha(c *gin.Context) {
	var req dto.CaptchaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request format"})
		return
	}

	result, err := services.CreateAssessment(c.Request.Context(), req.Token, req.Action, getClientIP(c), c.Request.UserAgent())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}
	if result == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "reCAPTCHA verification failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"score":   result.Score,
		"action":  result.Action,
		"reasons": result.Reasons,
		"message": "Captcha verified successfully",
	})
}

func getClientIP(c *gin.Context) string {
	ip := c.ClientIP()
	if ip == "" {
		ip = c.Request.RemoteAddr
	}
	// keep the first address when proxies appended more
	if idx := strings.Index(ip, ","); idx != -1 {
		ip = strings.TrimSpace(ip[:idx])
	}
	return ip
}
