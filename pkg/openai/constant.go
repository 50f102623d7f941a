package openai

import "time"

const (
	// QwenBaseURL is the OpenAI-compatible endpoint of Alibaba DashScope.
	QwenBaseURL = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"
	// DeepSeekBaseURL is the DeepSeek API endpoint.
	DeepSeekBaseURL = "https://api.deepseek.com/v1"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	roleSystem = "system"
	roleUser   = "user"

	responseFormatJSON = "json_object"
)
