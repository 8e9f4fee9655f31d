package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/diillson/aws-storage-audit-go/internal/domain/repository"
	"github.com/diillson/aws-storage-audit-go/internal/shared/types"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

type decodeFunc func([]byte, interface{}) error

// Formatos aceitos por extensão do arquivo.
var decoders = map[string]struct {
	name   string
	decode decodeFunc
}{
	".toml": {"TOML", toml.Unmarshal},
	".yaml": {"YAML", yaml.Unmarshal},
	".yml":  {"YAML", yaml.Unmarshal},
	".json": {"JSON", json.Unmarshal},
}

// ConfigRepositoryImpl lê a configuração da CLI de arquivo local.
type ConfigRepositoryImpl struct{}

func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// LoadConfigFile carrega um arquivo TOML, YAML ou JSON conforme a extensão.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	ext := strings.ToLower(filepath.Ext(filePath))
	format, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", types.ErrUnsupportedConfigFormat, ext)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var cfg types.Config
	if err := format.decode(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing %s file: %w", format.name, err)
	}
	return &cfg, nil
}
