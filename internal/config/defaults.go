package config

const (
	defaultOutputDir       = "output"
	defaultBilibiliBaseURL = "https://api.bilibili.com"
	defaultUserAgent       = "Mozilla/5.0"
	defaultBilibiliTimeout = 30
	defaultYtDlpBinary     = "yt-dlp"
	defaultYtDlpFormat     = "ba"
	defaultWhisperBaseURL  = "https://api.openai.com/v1/audio/transcriptions"
	defaultWhisperModel    = "whisper-1"
	defaultWhisperTimeout  = 600
	defaultPrefer          = "ai"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir: defaultOutputDir,
		},
		Bilibili: Bilibili{
			BaseURL:        defaultBilibiliBaseURL,
			UserAgent:      defaultUserAgent,
			TimeoutSeconds: defaultBilibiliTimeout,
		},
		YtDlp: YtDlp{
			Binary: defaultYtDlpBinary,
			Format: defaultYtDlpFormat,
		},
		Whisper: Whisper{
			BaseURL:        defaultWhisperBaseURL,
			Model:          defaultWhisperModel,
			TimeoutSeconds: defaultWhisperTimeout,
		},
		Transcript: Transcript{
			Page:   0,
			Prefer: defaultPrefer,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
