package gofurigana

import (
	"encoding/json"
	"io"
	"path/filepath"
)

// BaseConfig holds the resolved toolkit settings. Relative paths are
// resolved against the settings base directory.
type BaseConfig struct {
	AccentCorpus      string
	AccentDatabase    string
	AccentCache       string
	ReadingsSeparator string
}

type SettingsJSON struct {
	BaseConfig
	path string
}

func NewSettingsJSON() *SettingsJSON {
	return &SettingsJSON{}
}

func (settings *SettingsJSON) GetBaseConfig() *BaseConfig {
	return &settings.BaseConfig
}

// ParseSettingsJSON reads settings from reader. defpath is the base
// directory used when the settings themselves do not name one. Missing
// database and cache paths derive from the corpus path.
func (settings *SettingsJSON) ParseSettingsJSON(defpath string, reader io.Reader) error {
	internalBaseConfig := &struct {
		Path              *string
		AccentCorpus      *string
		AccentDatabase    *string
		AccentCache       *string
		ReadingsSeparator *string
	}{}

	decoder := json.NewDecoder(reader)
	err := decoder.Decode(internalBaseConfig)
	if err != nil {
		return err
	}
	if internalBaseConfig.Path == nil {
		settings.path = defpath
	} else {
		settings.path = *internalBaseConfig.Path
	}
	if internalBaseConfig.AccentCorpus != nil {
		settings.AccentCorpus = settings.getPath(*internalBaseConfig.AccentCorpus)
	}
	if internalBaseConfig.AccentDatabase != nil {
		settings.AccentDatabase = settings.getPath(*internalBaseConfig.AccentDatabase)
	}
	if internalBaseConfig.AccentCache != nil {
		settings.AccentCache = settings.getPath(*internalBaseConfig.AccentCache)
	}
	if internalBaseConfig.ReadingsSeparator != nil {
		settings.ReadingsSeparator = *internalBaseConfig.ReadingsSeparator
	}

	if settings.AccentDatabase == "" && settings.AccentCorpus != "" {
		settings.AccentDatabase = replaceExt(settings.AccentCorpus, ".tsv")
	}
	if settings.AccentCache == "" && settings.AccentDatabase != "" {
		settings.AccentCache = replaceExt(settings.AccentDatabase, ".bin")
	}
	if settings.ReadingsSeparator == "" {
		settings.ReadingsSeparator = DefaultReadingSep
	}
	return nil
}

func (settings *SettingsJSON) getPath(path string) string {
	if path == "" || filepath.IsAbs(path) || settings.path == "" {
		return path
	}
	return filepath.Join(settings.path, path)
}

func replaceExt(path, ext string) string {
	return path[:len(path)-len(filepath.Ext(path))] + ext
}
