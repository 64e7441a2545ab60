package controllers

import (
	"FeedbackGo/models"
	"FeedbackGo/utils"
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	adminPassword string
}

func NewAuthController(adminPassword string) *AuthController {
	return &AuthController{
		adminPassword: adminPassword,
	}
}

// AdminLogin 管理员登录，密码校验通过后签发JWT
func (ac *AuthController) AdminLogin(ctx *gin.Context) {
	var request models.AdminLoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request: " + err.Error(),
		})
		return
	}

	if ac.adminPassword == "" {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "管理员登录未启用"})
		return
	}

	if subtle.ConstantTimeCompare([]byte(request.Password), []byte(ac.adminPassword)) != 1 {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "密码错误"})
		return
	}

	token, err := utils.GenerateToken("admin")
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "生成令牌失败"})
		return
	}

	ctx.JSON(http.StatusOK, models.AdminLoginResponse{Token: token})
}
