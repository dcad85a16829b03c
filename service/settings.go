package service

import (
	"github.com/warp/attendance-engine/hr"
	"github.com/warp/attendance-engine/state"
)

// SettingsService exposes the configuration singleton.
type SettingsService struct {
	store *state.Store
}

func NewSettingsService(store *state.Store) *SettingsService {
	return &SettingsService{store: store}
}

func (s *SettingsService) Get() hr.Settings {
	return s.store.Settings()
}

// Update validates and applies a partial settings update.
func (s *SettingsService) Update(patch hr.SettingsPatch) error {
	if patch.WorkStartTime != nil {
		if _, err := hr.ParseClock(*patch.WorkStartTime); err != nil {
			return err
		}
	}
	if patch.WorkEndTime != nil {
		if _, err := hr.ParseClock(*patch.WorkEndTime); err != nil {
			return err
		}
	}
	if patch.LateToleranceMinutes != nil {
		if err := hr.NonNegative(float64(*patch.LateToleranceMinutes), "lateToleranceMinutes"); err != nil {
			return err
		}
	}
	if patch.BaseHourlyRate != nil {
		if err := hr.NonNegative(*patch.BaseHourlyRate, "baseHourlyRate"); err != nil {
			return err
		}
	}
	if patch.TaxPercentage != nil {
		if err := hr.NonNegative(*patch.TaxPercentage, "taxPercentage"); err != nil {
			return err
		}
	}
	if patch.OvertimeBonus != nil {
		if err := hr.NonNegative(*patch.OvertimeBonus, "overtimeBonus"); err != nil {
			return err
		}
	}
	if patch.OvertimeThreshold != nil {
		if err := hr.NonNegative(*patch.OvertimeThreshold, "overtimeThreshold"); err != nil {
			return err
		}
	}
	s.store.UpdateSettings(patch)
	return nil
}
