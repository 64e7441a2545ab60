package models

import (
	"time"
)

// Review 用户反馈记录，创建后不再修改
type Review struct {
	ID            string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	Rating        int       `json:"rating"`
	Content       string    `gorm:"type:text" json:"content"`
	Response      string    `gorm:"type:text" json:"response"`
	Summary       string    `gorm:"type:varchar(100)" json:"summary"`
	Action        string    `gorm:"type:varchar(100)" json:"action"`
	PromptVersion string    `gorm:"type:varchar(10)" json:"promptVersion"`
	Metadata      string    `gorm:"type:text" json:"metadata"` // JSON序列化的附加信息（来源、UA等）
	CreatedAt     time.Time `gorm:"index" json:"createdAt"`
}

func (Review) TableName() string {
	return "reviews"
}

// AnalysisResult 分析结果的结构化契约：三个字符串字段，缺一不可
type AnalysisResult struct {
	Summary  string `json:"summary"`
	Response string `json:"response"`
	Action   string `json:"action"`
}

// Valid 检查结果是否满足契约（三个字段均非空）
func (r AnalysisResult) Valid() bool {
	return r.Summary != "" && r.Response != "" && r.Action != ""
}
