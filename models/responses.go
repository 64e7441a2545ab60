package models

// ChatResponse 数据问答响应结构体
type ChatResponse struct {
	Reply string `json:"reply"`
}

// StarBucket 单个星级的评分分布
type StarBucket struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// StatsResponse 统计分析响应结构体
type StatsResponse struct {
	Total         int64        `json:"total"`
	AverageRating float64      `json:"averageRating"`
	NegativeCount int64        `json:"negativeCount"` // 评分<=2的数量
	Distribution  []StarBucket `json:"distribution"`
}

// AdminLoginResponse 管理员登录响应结构体
type AdminLoginResponse struct {
	Token string `json:"token"`
}
