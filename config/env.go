package config

import (
	"os"
	"strconv"
)

// App holds the enumerated environment configuration. Provider credentials
// are optional: empty API keys fall back to application default credentials.
type App struct {
	Port string

	LLMAPIKey    string
	LLMProjectID string
	LLMLocation  string
	LLMModel     string
	STTAPIKey    string
	TTSAPIKey    string

	AudioBucket string

	// SessionTurnHistoryWindow caps how many history turns feed the adaptive
	// prompt in non-project modes.
	SessionTurnHistoryWindow int
	// TechnicalSessionMaxMinutes caps technical interview wall time.
	TechnicalSessionMaxMinutes int
}

func Load() App {
	return App{
		Port:                       getenv("PORT", "8080"),
		LLMAPIKey:                  os.Getenv("LLM_API_KEY"),
		LLMProjectID:               os.Getenv("LLM_PROJECT_ID"),
		LLMLocation:                getenv("LLM_LOCATION", "us-central1"),
		LLMModel:                   os.Getenv("LLM_MODEL"),
		STTAPIKey:                  os.Getenv("STT_API_KEY"),
		TTSAPIKey:                  os.Getenv("TTS_API_KEY"),
		AudioBucket:                os.Getenv("AUDIO_BUCKET"),
		SessionTurnHistoryWindow:   getint("SESSION_TURN_HISTORY_WINDOW", 6),
		TechnicalSessionMaxMinutes: getint("TECHNICAL_SESSION_MAX_MINUTES", 10),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getint(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
