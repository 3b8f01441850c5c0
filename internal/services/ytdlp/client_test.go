package ytdlp

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func TestDownloadAudioBuildsArgs(t *testing.T) {
	var gotName string
	var gotArgs []string
	cli := NewCLI(WithCommandRunner(func(ctx context.Context, name string, args ...string) error {
		gotName = name
		gotArgs = args
		return nil
	}))

	if err := cli.DownloadAudio(context.Background(), "https://www.bilibili.com/video/BV1xx411c7mD", "/tmp/audio"); err != nil {
		t.Fatalf("DownloadAudio: %v", err)
	}
	if gotName != "yt-dlp" {
		t.Fatalf("unexpected binary %q", gotName)
	}
	want := []string{"-f", "ba", "-o", filepath.Join("/tmp/audio", "%(id)s.%(ext)s"), "https://www.bilibili.com/video/BV1xx411c7mD"}
	if len(gotArgs) != len(want) {
		t.Fatalf("args = %v, want %v", gotArgs, want)
	}
	for i := range want {
		if gotArgs[i] != want[i] {
			t.Fatalf("args[%d] = %q, want %q", i, gotArgs[i], want[i])
		}
	}
}

func TestDownloadAudioOptions(t *testing.T) {
	var gotName string
	var gotArgs []string
	cli := NewCLI(
		WithBinary("/opt/tools/yt-dlp"),
		WithFormat("bestaudio"),
		WithCommandRunner(func(ctx context.Context, name string, args ...string) error {
			gotName = name
			gotArgs = args
			return nil
		}),
	)

	if err := cli.DownloadAudio(context.Background(), "BV1xx411c7mD", "/tmp/a"); err != nil {
		t.Fatalf("DownloadAudio: %v", err)
	}
	if gotName != "/opt/tools/yt-dlp" {
		t.Fatalf("binary override ignored: %q", gotName)
	}
	if gotArgs[1] != "bestaudio" {
		t.Fatalf("format override ignored: %v", gotArgs)
	}
}

func TestDownloadAudioValidation(t *testing.T) {
	cli := NewCLI(WithCommandRunner(func(ctx context.Context, name string, args ...string) error {
		t.Fatal("runner must not be called")
		return nil
	}))
	if err := cli.DownloadAudio(context.Background(), "", "/tmp/a"); err == nil {
		t.Fatal("expected error for empty url")
	}
	if err := cli.DownloadAudio(context.Background(), "url", ""); err == nil {
		t.Fatal("expected error for empty destination")
	}
}

func TestDownloadAudioPropagatesFailure(t *testing.T) {
	wantErr := errors.New("exit status 1")
	cli := NewCLI(WithCommandRunner(func(ctx context.Context, name string, args ...string) error {
		return wantErr
	}))
	if err := cli.DownloadAudio(context.Background(), "url", "/tmp/a"); !errors.Is(err, wantErr) {
		t.Fatalf("expected runner error, got %v", err)
	}
}

func TestDownloadAudioMissingBinary(t *testing.T) {
	cli := NewCLI(WithBinary("definitely-not-a-real-downloader"))
	if err := cli.DownloadAudio(context.Background(), "url", t.TempDir()); err == nil {
		t.Fatal("expected error for missing binary")
	}
}
