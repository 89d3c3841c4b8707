package runtime

import (
	"bufio"
	"bytes"
	"chat-notifier/errors"
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

//go:embed assets/*
var assetsFolder embed.FS

// BuiltinAssets returns the embedded phrases and ascii art.
func BuiltinAssets() fs.FS {
	sub, err := fs.Sub(assetsFolder, "assets")
	if err != nil {
		// The embed directive guarantees the directory exists.
		panic(err)
	}
	return sub
}

// Assets carries everything the built-in actions need from disk.
type Assets struct {
	Phrases []string
	Art     map[string]string
	Sounds  map[string]string // sound name -> file path
}

// AssetLoader reads phrases and ascii art from a filesystem and discovers
// playable sounds in a directory.
type AssetLoader struct {
	fs fs.FS
}

func NewAssetLoader(f fs.FS) *AssetLoader {
	return &AssetLoader{fs: f}
}

// LoadPhrases parses one phrase per line, keeping file order and dropping
// blank lines and duplicates.
func (l *AssetLoader) LoadPhrases(path string) ([]string, error) {
	data, err := fs.ReadFile(l.fs, path)
	if err != nil {
		return nil, err
	}

	var phrases []string
	seen := make(map[string]struct{})

	// Scanner handles \n and \r\n line endings alike
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		phrases = append(phrases, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(phrases) == 0 {
		return nil, errors.ErrEmptyWords
	}
	return phrases, nil
}

// LoadArt reads every .txt file of dir. The key is the file name without extension.
func (l *AssetLoader) LoadArt(dir string) (map[string]string, error) {
	entries, err := fs.ReadDir(l.fs, dir)
	if err != nil {
		return nil, err
	}
	art := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".txt" {
			continue
		}
		data, err := fs.ReadFile(l.fs, dir+"/"+entry.Name())
		if err != nil {
			return nil, err
		}
		art[strings.TrimSuffix(entry.Name(), ".txt")] = string(data)
	}
	return art, nil
}

// FindSounds walks dir on disk and keeps files sniffed as audio.
// A missing directory yields no sound rather than an error.
func FindSounds(dir string) (map[string]string, error) {
	sounds := make(map[string]string)
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return sounds, nil
	}
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if !IsAudio(path) {
			continue
		}
		name := strings.ToLower(strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name())))
		sounds[name] = path
	}
	return sounds, nil
}

// IsAudio sniffs the file content, the extension is not trusted.
func IsAudio(path string) bool {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return false
	}
	for m := mtype; m != nil; m = m.Parent() {
		if strings.HasPrefix(m.String(), "audio/") {
			return true
		}
	}
	return false
}

// LoadAll loads the embedded assets and discovers sounds in soundDir.
func (l *AssetLoader) LoadAll(soundDir string) (*Assets, error) {
	phrases, err := l.LoadPhrases("phrases.txt")
	if err != nil {
		return nil, err
	}
	art, err := l.LoadArt("art")
	if err != nil {
		return nil, err
	}
	sounds, err := FindSounds(soundDir)
	if err != nil {
		return nil, err
	}
	return &Assets{Phrases: phrases, Art: art, Sounds: sounds}, nil
}
