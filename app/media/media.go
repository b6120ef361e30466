package media

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gopkg.in/ini.v1"
)

// ResolvePath returns the directory flashcard media is written to. An
// explicit override wins; otherwise the Anki profile's collection.media is
// autodetected, and when even that fails a local ./media folder is used.
// The returned directory exists.
func ResolvePath(override string) string {
	if override != "" {
		if err := os.MkdirAll(override, 0o755); err == nil {
			return override
		}
		log.Warn().Str("path", override).Msg("cannot create configured media path, autodetecting")
	}
	if detected, err := detectCollectionMedia(); err == nil {
		return detected
	} else {
		log.Warn().Err(err).Msg("cannot locate Anki media directory, using local fallback")
	}
	fallback := "media"
	_ = os.MkdirAll(fallback, 0o755)
	return fallback
}

// ankiBasePath returns the per-OS Anki2 data directory.
func ankiBasePath() (string, error) {
	switch runtime.GOOS {
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			return "", fmt.Errorf("APPDATA is not set")
		}
		return filepath.Join(appData, "Anki2"), nil
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "Library", "Application Support", "Anki2"), nil
	default:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share", "Anki2"), nil
	}
}

func detectCollectionMedia() (string, error) {
	base, err := ankiBasePath()
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(base); err != nil {
		return "", fmt.Errorf("no Anki2 directory at %s", base)
	}

	// profiles.ini names the current profile when it exists.
	if profile := currentProfile(filepath.Join(base, "profiles.ini")); profile != "" {
		mediaDir := filepath.Join(base, profile, "collection.media")
		if _, err := os.Stat(mediaDir); err == nil {
			return mediaDir, nil
		}
	}

	// Otherwise pick the profile whose collection was modified most
	// recently.
	profile, err := newestProfile(base)
	if err != nil {
		return "", err
	}
	return filepath.Join(base, profile, "collection.media"), nil
}

func currentProfile(iniPath string) string {
	file, err := ini.Load(iniPath)
	if err != nil {
		return ""
	}
	for _, section := range file.Sections() {
		if section.Key("isCurrent").String() == "true" {
			return section.Key("name").String()
		}
	}
	return ""
}

func newestProfile(base string) (string, error) {
	entries, err := os.ReadDir(base)
	if err != nil {
		return "", err
	}
	var newest string
	var newestMod time.Time
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		info, err := os.Stat(filepath.Join(base, entry.Name(), "collection.anki2"))
		if err != nil {
			continue
		}
		if newest == "" || info.ModTime().After(newestMod) {
			newest = entry.Name()
			newestMod = info.ModTime()
		}
	}
	if newest == "" {
		return "", fmt.Errorf("no profile with collection.anki2 under %s", base)
	}
	return newest, nil
}

// Store persists images into the media directory.
type Store struct {
	dir    string
	client *http.Client
}

func NewStore(dir string, timeout time.Duration) Store {
	return Store{dir: dir, client: &http.Client{Timeout: timeout}}
}

func (s Store) Dir() string { return s.dir }

// SaveFromURL downloads rawURL into the media directory under a fresh
// name preserving the URL's extension, and returns that filename.
func (s Store) SaveFromURL(ctx context.Context, rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse image url: %w", err)
	}
	ext := filepath.Ext(parsed.Path)
	if ext == "" {
		ext = ".jpg"
	}
	filename := uuid.New().String() + ext

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("download image: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unsuccessfull image response %v", resp.StatusCode)
	}
	if err := s.write(filename, resp.Body); err != nil {
		return "", err
	}
	return filename, nil
}

// SaveUpload stores an uploaded file under a fresh name preserving the
// original extension.
func (s Store) SaveUpload(reader io.Reader, originalName string) (string, error) {
	ext := filepath.Ext(originalName)
	if ext == "" {
		ext = ".jpg"
	}
	filename := uuid.New().String() + ext
	if err := s.write(filename, reader); err != nil {
		return "", err
	}
	return filename, nil
}

func (s Store) write(filename string, reader io.Reader) error {
	dest, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return fmt.Errorf("create media file: %w", err)
	}
	defer dest.Close()
	if _, err := io.Copy(dest, reader); err != nil {
		return fmt.Errorf("write media file: %w", err)
	}
	return nil
}
