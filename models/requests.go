package models

import (
	"fmt"
)

// SubmitFeedbackRequest 反馈提交请求结构体
type SubmitFeedbackRequest struct {
	Rating        int    `json:"rating" binding:"required"`
	Review        string `json:"review"`
	PromptVersion string `json:"promptVersion"` // A, B, C，默认A
}

// Validate 校验评分范围和提示词版本
func (r *SubmitFeedbackRequest) Validate() error {
	if r.Rating < 1 || r.Rating > 5 {
		return fmt.Errorf("invalid rating, must be between 1 and 5")
	}

	if r.PromptVersion == "" {
		r.PromptVersion = "A"
	}

	validVersions := map[string]bool{"A": true, "B": true, "C": true}
	if !validVersions[r.PromptVersion] {
		return fmt.Errorf("invalid promptVersion, must be one of: A, B, C")
	}
	return nil
}

// ChatRequest 数据问答请求结构体
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// AdminLoginRequest 管理员登录请求结构体
type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}
