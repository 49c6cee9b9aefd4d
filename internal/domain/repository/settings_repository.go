package repository

import "github.com/csaassociates/ca-admin-api/internal/domain/entity"

// SettingsRepository is the store port for the singleton firm settings.
type SettingsRepository interface {
	Get() (*entity.FirmSettings, error)
	Update(s *entity.FirmSettings) error
}
