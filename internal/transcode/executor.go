package transcode

import (
	"context"
	"fmt"
	"log"
	"os/exec"
)

// Executor runs one transcode job against the local filesystem. The state
// machine in the video service only sees success or failure; swapping the
// implementation (background worker, remote runner) must not change it.
type Executor interface {
	Run(ctx context.Context, inputPath, outputPath string) error
}

// FFmpeg shells out to the ffmpeg binary for a 720p H.264/AAC rendition.
type FFmpeg struct {
	bin string
}

func NewFFmpeg(bin string) *FFmpeg {
	if bin == "" {
		bin = "ffmpeg"
	}
	return &FFmpeg{bin: bin}
}

func (f *FFmpeg) Run(ctx context.Context, inputPath, outputPath string) error {
	cmd := exec.CommandContext(ctx, f.bin,
		"-y",
		"-i", inputPath,
		"-c:v", "libx264",
		"-preset", "veryfast",
		"-crf", "28",
		"-vf", "scale=-2:720",
		"-c:a", "aac",
		"-b:a", "128k",
		outputPath,
	)
	outb, err := cmd.CombinedOutput()
	if err != nil {
		// full output stays in the server log only
		log.Printf("ffmpeg failed input=%s error=%v output=%s", inputPath, err, truncate(string(outb), 2000))
		if ctx.Err() != nil {
			return fmt.Errorf("ffmpeg timed out: %w", ctx.Err())
		}
		return fmt.Errorf("ffmpeg exited with error: %w", err)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
