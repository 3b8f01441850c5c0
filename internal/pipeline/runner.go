package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"biliscribe/internal/bili"
	"biliscribe/internal/bvid"
	"biliscribe/internal/fileutil"
	"biliscribe/internal/logging"
	"biliscribe/internal/render"
	"biliscribe/internal/subtitle"
	"biliscribe/internal/transcript"
)

// Options is the immutable per-run configuration handed to the orchestrator.
// Environment and flag parsing happen at the CLI boundary, never here.
type Options struct {
	// Page is the zero-based part index for multi-part videos; clamped
	// downstream, never rejected.
	Page int
	// Prefer selects the subtitle track family.
	Prefer subtitle.Preference
	// OutputDir receives the rendered document; audio is staged under
	// OutputDir/audio during the fallback path.
	OutputDir string
	// APIKey is the transcription credential. Empty means the fallback path
	// terminates with a missing-credential failure.
	APIKey string
}

// MetadataService is the Bilibili lookup surface the runner needs.
type MetadataService interface {
	View(ctx context.Context, bvid string) (bili.VideoView, error)
	SubtitleCatalog(ctx context.Context, bvid string, cid int64) ([]subtitle.Track, error)
	SubtitleBody(ctx context.Context, url string) (transcript.SubtitleBody, error)
}

// AudioExtractor downloads the audio stream for the fallback path.
type AudioExtractor interface {
	DownloadAudio(ctx context.Context, videoURL, destDir string) error
}

// Transcriber converts an audio file into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// Result reports the terminal state of one run.
type Result struct {
	Status     Status
	BVID       string
	OutputPath string
	Source     transcript.Source
	Segments   int
}

// Runner drives one acquisition run to a terminal state.
type Runner struct {
	opts        Options
	service     MetadataService
	audio       AudioExtractor
	transcriber Transcriber
	logger      *slog.Logger
}

// NewRunner constructs a runner. A nil logger is replaced with a no-op one.
func NewRunner(opts Options, service MetadataService, audio AudioExtractor, transcriber Transcriber, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{
		opts:        opts,
		service:     service,
		audio:       audio,
		transcriber: transcriber,
		logger:      logger,
	}
}

// Run executes the acquisition state machine for one input string. The
// returned Result always carries a terminal status; err is non-nil exactly
// when that status is StatusFailed. Known failure reasons are
// errors.Is-matchable; anything else is the underlying call's failure
// propagated as-is.
func (r *Runner) Run(ctx context.Context, input string) (Result, error) {
	result := Result{Status: StatusStart}

	reference, ok := bvid.Extract(input)
	if !ok {
		return r.fail(result, ErrReferenceNotFound)
	}
	result.Status = StatusReferenceResolved
	result.BVID = reference
	r.logger.Info("resolved video reference", logging.String("bvid", reference))

	view, err := r.service.View(ctx, reference)
	if err != nil {
		return r.fail(result, fmt.Errorf("%w: %s", ErrContentIDNotFound, err))
	}
	cid, ok := bili.ResolveCID(view, r.opts.Page)
	if !ok {
		return r.fail(result, ErrContentIDNotFound)
	}
	result.Status = StatusContentResolved
	r.logger.Info("resolved content id",
		logging.String("title", view.Title),
		logging.Int64("cid", cid),
		logging.Int("pages", len(view.Pages)))

	tracks, err := r.service.SubtitleCatalog(ctx, reference, cid)
	if err != nil {
		return r.fail(result, err)
	}

	meta := render.Metadata{
		Title:     view.Title,
		Owner:     view.Owner,
		BVID:      reference,
		SourceURL: input,
	}

	if len(tracks) > 0 {
		result.Status = StatusSubtitleAvailable
		return r.finishFromSubtitle(ctx, result, meta, tracks)
	}
	result.Status = StatusSubtitleUnavailable
	r.logger.Info("no subtitle track published, falling back to audio", logging.String("bvid", reference))
	return r.finishFromAudio(ctx, result, meta, input)
}

func (r *Runner) finishFromSubtitle(ctx context.Context, result Result, meta render.Metadata, tracks []subtitle.Track) (Result, error) {
	chosen := subtitle.Select(tracks, r.opts.Prefer)
	r.logger.Info("chose subtitle track",
		logging.String("lan", chosen.Lan),
		logging.String("lan_doc", chosen.LanDoc))

	body, err := r.service.SubtitleBody(ctx, chosen.URL)
	if err != nil {
		return r.fail(result, err)
	}
	segments := transcript.FromSubtitleBody(body)
	source := transcript.SourceSubtitle(subtitle.SourceTag(chosen))
	return r.write(result, meta, segments, source)
}

func (r *Runner) finishFromAudio(ctx context.Context, result Result, meta render.Metadata, input string) (Result, error) {
	audioDir := filepath.Join(r.opts.OutputDir, "audio")
	if err := fileutil.EnsureDir(audioDir); err != nil {
		return r.fail(result, fmt.Errorf("%w: %s", ErrAudioExtractionFailed, err))
	}
	if err := r.audio.DownloadAudio(ctx, input, audioDir); err != nil {
		return r.fail(result, fmt.Errorf("%w: %s", ErrAudioExtractionFailed, err))
	}
	result.Status = StatusAudioExtracted

	files, err := fileutil.AudioFiles(audioDir)
	if err != nil || len(files) == 0 {
		return r.fail(result, ErrNoAudioFile)
	}
	audioPath := files[0]
	r.logger.Info("extracted audio", logging.String("path", audioPath))

	if r.opts.APIKey == "" {
		return r.fail(result, ErrMissingCredential)
	}
	text, err := r.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		return r.fail(result, fmt.Errorf("%w: %s", ErrTranscriptionFailed, err))
	}
	segments := transcript.FromTranscriptionText(text)
	if len(segments) == 0 {
		return r.fail(result, ErrTranscriptionFailed)
	}
	result.Status = StatusTranscribed
	return r.write(result, meta, segments, transcript.SourceTranscription())
}

func (r *Runner) write(result Result, meta render.Metadata, segments []transcript.Segment, source transcript.Source) (Result, error) {
	if err := fileutil.EnsureDir(r.opts.OutputDir); err != nil {
		return r.fail(result, err)
	}
	doc := render.Document(meta, segments, source)
	path := filepath.Join(r.opts.OutputDir, meta.BVID+".md")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return r.fail(result, fmt.Errorf("write document: %w", err))
	}

	result.Status = StatusDone
	result.OutputPath = path
	result.Source = source
	result.Segments = len(segments)
	r.logger.Info("wrote transcript document",
		logging.String("path", path),
		logging.String("source", source.Tag()),
		logging.Int("segments", len(segments)))
	return result, nil
}

func (r *Runner) fail(result Result, err error) (Result, error) {
	result.Status = StatusFailed
	r.logger.Error("run failed", logging.Error(err))
	return result, err
}
