package pipeline

import "errors"

// Terminal failure reasons. Every failed run resolves to exactly one of
// these; callers discriminate with errors.Is. None are retried internally.
var (
	// ErrReferenceNotFound: the input contains no BV identifier.
	ErrReferenceNotFound = errors.New("no video reference found in input")
	// ErrContentIDNotFound: metadata lookup failed or yielded no content id.
	ErrContentIDNotFound = errors.New("no content id resolved for video")
	// ErrAudioExtractionFailed: the download tool failed or is not installed.
	ErrAudioExtractionFailed = errors.New("audio download failed or tool missing")
	// ErrNoAudioFile: extraction reported success but produced no
	// recognized audio file.
	ErrNoAudioFile = errors.New("no audio file found after extraction")
	// ErrMissingCredential: no transcription credential was provided.
	ErrMissingCredential = errors.New("missing transcription credential")
	// ErrTranscriptionFailed: the transcription call failed or returned
	// empty text.
	ErrTranscriptionFailed = errors.New("transcription failed")
)

// userMessages maps each failure reason to the message printed for users.
var userMessages = []struct {
	err     error
	message string
}{
	{ErrReferenceNotFound, "未识别到BV号"},
	{ErrContentIDNotFound, "未获取到CID"},
	{ErrAudioExtractionFailed, "音频下载失败或未安装yt-dlp"},
	{ErrNoAudioFile, "未找到音频文件"},
	{ErrMissingCredential, "未提供OpenAI API密钥"},
	{ErrTranscriptionFailed, "转写失败"},
}

// UserMessage returns the human-readable message for a terminal failure, or
// ok=false when the error is not one of the pipeline's failure reasons.
func UserMessage(err error) (string, bool) {
	for _, entry := range userMessages {
		if errors.Is(err, entry.err) {
			return entry.message, true
		}
	}
	return "", false
}
