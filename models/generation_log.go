package models

import (
	"time"
)

// GenerationLog 每次分析调用的提示词与原始输出记录，用于排查与提示词评估
type GenerationLog struct {
	ID        string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	Prompt    string    `gorm:"type:text" json:"prompt"`
	Output    string    `gorm:"type:text" json:"output"`
	Version   string    `gorm:"type:varchar(10)" json:"version"`
	CreatedAt time.Time `json:"createdAt"`
}

func (GenerationLog) TableName() string {
	return "generation_logs"
}
