package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/Hari20032005/assignment-nudge/internal/flagx"
	"github.com/Hari20032005/assignment-nudge/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations
// rely on timex.Duration so JSON can specify them either as strings like
// "10m" or as integer nanoseconds.
type JsonConfig struct {
	DatabasePath string         `json:"database_path"`
	ExportDir    string         `json:"export_dir"`
	CodeTTL      timex.Duration `json:"code_ttl"`
	SessionTTL   timex.Duration `json:"session_ttl"`
}

// parseJson overlays cfg with values from the JSON file named by -c/-config.
// When no file is named, cfg is left alone. Read and unmarshal errors panic:
// a config file that exists but cannot be used is a startup defect.
//
// Only fields present in the JSON override cfg; absent fields keep the
// values from earlier layers.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.ExportDir != "" {
		cfg.ExportDir = jc.ExportDir
	}
	if jc.CodeTTL.Duration != 0 {
		cfg.CodeTTL = time.Duration(jc.CodeTTL.Duration)
	}
	if jc.SessionTTL.Duration != 0 {
		cfg.SessionTTL = time.Duration(jc.SessionTTL.Duration)
	}
}
