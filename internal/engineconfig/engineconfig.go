package engineconfig

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// EngineConfigPath is the path to the engine config file, relative to the process working directory.
const EngineConfigPath = "config/engine.json"

// Prefs holds engine preferences (window, vsync, asset locations, stats logging). Persisted across runs.
// Scene content itself is not persisted; it is rebuilt from the placement list every run.
type Prefs struct {
	WindowWidth   int    `json:"window_width"`
	WindowHeight  int    `json:"window_height"`
	WindowTitle   string `json:"window_title"`
	VSync         bool   `json:"vsync"`
	AssetDir      string `json:"asset_dir"`
	SceneFile     string `json:"scene_file,omitempty"`
	LogFrameStats bool   `json:"log_frame_stats"`
}

// Default returns default engine preferences (1000x800 window, vsync on, assets/ tree).
func Default() Prefs {
	return Prefs{
		WindowWidth:   1000,
		WindowHeight:  800,
		WindowTitle:   "3D Scene",
		VSync:         true,
		AssetDir:      "assets",
		SceneFile:     "assets/scene.yaml",
		LogFrameStats: false,
	}
}

// Load reads engine preferences from config/engine.json. If the file is missing or invalid,
// returns Default() and does not create a file. The SCENE_ASSETS_DIR and SCENE_FILE
// environment variables override the corresponding fields when set (see LoadEnv).
func Load() (Prefs, error) {
	p := Default()
	if data, err := os.ReadFile(EngineConfigPath); err == nil {
		var file Prefs
		if err := json.Unmarshal(data, &file); err == nil {
			p = file
		}
	}
	if dir := os.Getenv("SCENE_ASSETS_DIR"); dir != "" {
		p.AssetDir = dir
	}
	if scene := os.Getenv("SCENE_FILE"); scene != "" {
		p.SceneFile = scene
	}
	return p, nil
}

// Save writes engine preferences to config/engine.json, creating the config directory if needed.
func Save(p Prefs) error {
	dir := filepath.Dir(EngineConfigPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(EngineConfigPath, data, 0644)
}

// LoadEnv reads the given file (e.g. ".env") and sets environment variables for each
// line of the form KEY=VALUE. Empty lines and lines starting with # are skipped.
// The file may be missing; that is not an error. Call before Load so overrides apply.
func LoadEnv(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		i := strings.Index(line, "=")
		if i <= 0 {
			continue
		}
		key := strings.TrimSpace(line[:i])
		value := strings.TrimSpace(line[i+1:])
		if key == "" {
			continue
		}
		// Remove surrounding quotes if present
		if len(value) >= 2 && (value[0] == '"' && value[len(value)-1] == '"' || value[0] == '\'' && value[len(value)-1] == '\'') {
			value = value[1 : len(value)-1]
		}
		_ = os.Setenv(key, value)
	}
	return scanner.Err()
}
