package config

const (
	envGroqAPIKey    = "GROQ_API_KEY"
	envGroqBaseURL   = "GROQ_BASE_URL"
	envGroqModel     = "GROQ_MODEL"
	envOpenAIAPIKey  = "OPENAI_API_KEY"
	envOpenAIBaseURL = "OPENAI_BASE_URL"
	envOpenAIModel   = "OPENAI_MODEL"
	envPromptPath    = "CHAT_PROMPT_PATH"

	defaultGroqBaseURL   = "https://api.groq.com/openai/v1"
	defaultGroqModel     = "llama3-8b-8192"
	defaultOpenAIBaseURL = "https://api.openai.com/v1"
	defaultOpenAIModel   = "gpt-3.5-turbo"
)

// ChatConfig holds the primary/fallback LLM provider settings for the
// support-chat relay.
type ChatConfig struct {
	GroqAPIKey    string
	GroqBaseURL   string
	GroqModel     string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string
	// PromptPath optionally overrides the embedded system prompt.
	PromptPath string
}

func loadChat() ChatConfig {
	return ChatConfig{
		GroqAPIKey:    envOrDefault(envGroqAPIKey, ""),
		GroqBaseURL:   envOrDefault(envGroqBaseURL, defaultGroqBaseURL),
		GroqModel:     envOrDefault(envGroqModel, defaultGroqModel),
		OpenAIAPIKey:  envOrDefault(envOpenAIAPIKey, ""),
		OpenAIBaseURL: envOrDefault(envOpenAIBaseURL, defaultOpenAIBaseURL),
		OpenAIModel:   envOrDefault(envOpenAIModel, defaultOpenAIModel),
		PromptPath:    envOrDefault(envPromptPath, ""),
	}
}
