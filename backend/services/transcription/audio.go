package transcription

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ErrNoAudioTrack is returned when the source video has no audio stream.
var ErrNoAudioTrack = errors.New("no audio track found in video")

// ExtractAudio pulls the audio track out of a video file with FFmpeg, using
// settings tuned for speech recognition (WAV, mono, 16 kHz).
func ExtractAudio(videoPath string) (string, error) {
	tmp, err := os.CreateTemp("", "audio-*.wav")
	if err != nil {
		return "", err
	}
	audioPath := tmp.Name()
	tmp.Close()

	args := []string{
		"-y", "-i", videoPath,
		"-vn", "-acodec", "pcm_s16le",
		"-ac", "1", "-ar", "16000",
		audioPath,
	}

	if err := runFFmpeg(args, audioPath); err != nil {
		return "", err
	}
	return audioPath, nil
}

// ConvertToMP3 re-encodes an audio file as mp3. AssemblyAI handles mp3
// uploads better than raw WAV.
func ConvertToMP3(audioPath string) (string, error) {
	tmp, err := os.CreateTemp("", "audio-*.mp3")
	if err != nil {
		return "", err
	}
	mp3Path := tmp.Name()
	tmp.Close()

	args := []string{
		"-y", "-i", audioPath,
		"-acodec", "libmp3lame", "-q:a", "4",
		mp3Path,
	}

	if err := runFFmpeg(args, mp3Path); err != nil {
		return "", err
	}
	return mp3Path, nil
}

func runFFmpeg(args []string, outputPath string) error {
	cmd := exec.Command("ffmpeg", args...)
	var stderr strings.Builder
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		os.Remove(outputPath)
		if strings.Contains(stderr.String(), "Output file does not contain any stream") {
			return ErrNoAudioTrack
		}
		return fmt.Errorf("ffmpeg failed: %s", stderr.String())
	}
	return nil
}
