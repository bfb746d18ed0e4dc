package config

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Tuning     *TuningConfig
	Archetypes *ArchetypesConfig
	Waves      *WavesConfig
}

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadTuning loads tuning.yaml
func (l *Loader) LoadTuning() (*TuningConfig, error) {
	data, err := fs.ReadFile(l.fsys, "tuning.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning.yaml: %w", err)
	}

	var cfg TuningConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse tuning.yaml: %w", err)
	}

	return &cfg, nil
}

// LoadArchetypes loads archetypes.yaml
func (l *Loader) LoadArchetypes() (*ArchetypesConfig, error) {
	data, err := fs.ReadFile(l.fsys, "archetypes.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read archetypes.yaml: %w", err)
	}

	var cfg ArchetypesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse archetypes.yaml: %w", err)
	}

	return &cfg, nil
}

// LoadWaves loads waves.yaml
func (l *Loader) LoadWaves() (*WavesConfig, error) {
	data, err := fs.ReadFile(l.fsys, "waves.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read waves.yaml: %w", err)
	}

	var cfg WavesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse waves.yaml: %w", err)
	}

	return &cfg, nil
}

// LoadAll loads all configurations (tuning, archetypes, waves)
func (l *Loader) LoadAll() (*GameConfig, error) {
	tuning, err := l.LoadTuning()
	if err != nil {
		return nil, err
	}

	archetypes, err := l.LoadArchetypes()
	if err != nil {
		return nil, err
	}

	waves, err := l.LoadWaves()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Tuning:     tuning,
		Archetypes: archetypes,
		Waves:      waves,
	}, nil
}
