package fs

import (
	"context"
	"encoding/hex"
	"os"
	"path/filepath"

	"github.com/fwojciec/transdoc"
	"github.com/google/uuid"
)

// DefaultAudioDir is where audio is written when no directory is configured.
const DefaultAudioDir = "tmp_audio"

// Ensure AudioStore implements transdoc.AudioStore at compile time.
var _ transdoc.AudioStore = (*AudioStore)(nil)

// AudioStore writes MP3 files with random names into a directory.
type AudioStore struct {
	dir string
}

// NewAudioStore creates a new AudioStore that writes to dir.
// An empty dir falls back to DefaultAudioDir.
func NewAudioStore(dir string) *AudioStore {
	if dir == "" {
		dir = DefaultAudioDir
	}
	return &AudioStore{dir: dir}
}

// SaveAudio writes data to <dir>/<random hex>.mp3 and returns the path.
func (s *AudioStore) SaveAudio(ctx context.Context, data []byte) (string, error) {
	if len(data) == 0 {
		return "", transdoc.Errorf(transdoc.EINVALID, "audio data required")
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", err
	}

	id := uuid.New()
	path := filepath.Join(s.dir, hex.EncodeToString(id[:])+".mp3")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}
