package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/diillson/aws-reservation-summary/internal/domain/repository"
	"github.com/diillson/aws-reservation-summary/internal/shared/types"
	"github.com/goccy/go-json"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct{}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
// Chaves ausentes ficam com o valor zero e são preenchidas depois pelos padrões.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	fileExtension := filepath.Ext(filePath)
	fileExtension = strings.ToLower(fileExtension)

	// Verifica se o arquivo existe
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}

	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	// Lê o arquivo
	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config types.Config

	switch fileExtension {
	case ".toml":
		if err := toml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", fileExtension)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", filePath, err)
	}

	return &config, nil
}

// validateConfig rejeita valores que nunca seriam aceitos, antes de mesclar com as flags.
func validateConfig(config *types.Config) error {
	if config.ExchangeRate < 0 {
		return fmt.Errorf("%w: exchange_rate must not be negative", types.ErrInvalidOptions)
	}
	if config.TaxRate < 0 || config.TaxRate > 100 {
		return fmt.Errorf("%w: tax_rate must be between 0 and 100", types.ErrInvalidOptions)
	}
	for _, reportType := range config.ReportType {
		if !types.IsSupportedReportType(reportType) {
			return fmt.Errorf("%w: unsupported report_type %q", types.ErrInvalidOptions, reportType)
		}
	}
	return nil
}
