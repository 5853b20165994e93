package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/unlimited-inventories/internal/domain"
	"github.com/osse101/unlimited-inventories/internal/validation"
)

// Settings are the gameplay options of the snapshot store. They are read at
// startup and written back at shutdown. Field names match the file the game
// server plugin has always written.
type Settings struct {
	InventoryLimit   int    `json:"InventoryLimit" validate:"min=0"`
	BypassPermission string `json:"BypassPermission" validate:"required"`
}

// DefaultSettings returns the settings used when no file exists
func DefaultSettings() Settings {
	return Settings{
		InventoryLimit:   domain.DefaultInventoryLimit,
		BypassPermission: domain.DefaultBypassPermission,
	}
}

// LoadSettings reads settings from path. A missing file yields the defaults;
// fields absent from the file keep their default values.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := schemaValidator.ValidateBytes(data, validation.SchemaSettings); err != nil {
		return Settings{}, fmt.Errorf("%w: settings file %s: %v", domain.ErrInvalidInput, path, err)
	}

	if err := json.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}

	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// SaveSettings writes settings to path as indented JSON
func SaveSettings(path string, settings Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if err := os.WriteFile(path, data, SettingsFileMode); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

// Validate checks field constraints
func (s Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: settings field %s failed %q", domain.ErrInvalidInput, verrs[0].Field(), verrs[0].Tag())
		}
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}
