package config

const (
	envCricBaseURL = "CRICTEZ_BASE_URL"
	envCricAPIKey  = "CRICTEZ_API_KEY"

	defaultCricBaseURL = "https://api.crictez.in/v7"
)

// CrictezConfig controls how we talk to the crictez match data API.
// The API key is part of the URL path upstream, so there is no default.
type CrictezConfig struct {
	BaseURL string
	APIKey  string
}

func loadCrictez() CrictezConfig {
	return CrictezConfig{
		BaseURL: envOrDefault(envCricBaseURL, defaultCricBaseURL),
		APIKey:  envOrDefault(envCricAPIKey, ""),
	}
}
