package services

import (
	"fmt"
	"strconv"
	"strings"
)

// 提示词模板注册表。模板在进程启动时定义，按版本号查找，不可变。
// 替换是字面量的单次替换：评价文本里若包含占位符本身会破坏替换结果，
// 这是已知限制，不在此处修正。

var promptTemplates = map[string]string{
	"A": `Analyze the following customer review. Return JSON with summary (max 5 words), response (polite), and action (team recommendation). Review: "{REVIEW}" Rating: {RATING}/5.`,

	"B": `You are an expert Customer Experience Manager.
    Task: Analyze this review to improve our NPS score.
    Context: User rated us {RATING}/5.
    Review: "{REVIEW}"

    Output JSON:
    - summary: Short punchy title.
    - response: Empathetic, professional reply.
    - action: Specific operational step to take.`,

	"C": `JSON Output Only.
    Schema: { summary: string, response: string, action: string }

    Input:
    Review: "{REVIEW}" (Rating: {RATING})

    Rules:
    - Summary must be < 5 words.
    - Action must be actionable.`,
}

// analysisContract 固定附加在每个模板变体之后，保证输出契约一致
const analysisContract = `
Return the response in valid JSON format with keys: "summary", "response", "action".
Do not use Markdown code blocks. Just the raw JSON.`

// RenderTemplate 渲染指定版本的分析提示词。
// 未注册的版本号返回ErrTemplateNotFound，由调用方处理，不做静默兜底。
func RenderTemplate(version string, rating int, review string) (string, error) {
	template, ok := promptTemplates[version]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, version)
	}

	prompt := strings.Replace(template, "{REVIEW}", review, 1)
	prompt = strings.Replace(prompt, "{RATING}", strconv.Itoa(rating), 1)
	return prompt, nil
}

// BuildAnalysisPrompt 渲染模板并附加输出契约说明
func BuildAnalysisPrompt(version string, rating int, review string) (string, error) {
	prompt, err := RenderTemplate(version, rating, review)
	if err != nil {
		return "", err
	}
	return prompt + analysisContract, nil
}

// BuildChatPrompt 将上下文数据块和用户问题嵌入固定的问答提示词
func BuildChatPrompt(context, question string) string {
	return fmt.Sprintf(`
      You are a Data Analyst Assistant. You have access to the following customer reviews:

      %s

      User Question: "%s"

      Based ONLY on the data above, answer the user's question.
      If you can't answer, say so.
      Be concise, professional, and cite specific examples if useful.
    `, context, question)
}
