package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/diillson/aws-storage-audit-go/internal/shared/types"
)

// LoadEnvConfig lê BUCKET_NAME, AWS_REGION, AWS_PROFILE e LOG_LEVEL do ambiente.
// A ausência do bucket não é erro aqui; o caso de uso a rejeita antes de qualquer chamada.
func LoadEnvConfig() (types.EnvConfig, error) {
	var cfg types.EnvConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return types.EnvConfig{}, fmt.Errorf("error reading environment: %w", err)
	}
	return cfg, nil
}
