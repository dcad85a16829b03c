package hr

// =============================================================================
// SETTINGS - Singleton configuration governing work hours and pay rules
// =============================================================================

// Settings is the company-wide configuration. It is persisted separately
// from the domain collections and merged over defaults on load, so fields
// added in later versions backfill on old saved data.
type Settings struct {
	CompanyName          string  `json:"companyName"`
	WorkStartTime        string  `json:"workStartTime"`
	WorkEndTime          string  `json:"workEndTime"`
	LateToleranceMinutes int     `json:"lateToleranceMinutes"`
	BaseHourlyRate       float64 `json:"baseHourlyRate"`
	TaxPercentage        float64 `json:"taxPercentage"`
	OvertimeBonus        float64 `json:"overtimeBonus"`
	OvertimeThreshold    float64 `json:"overtimeThreshold"`
	OvertimeApproval     bool    `json:"overtimeApproval"`
}

// DefaultSettings returns the first-run configuration.
func DefaultSettings() Settings {
	return Settings{
		CompanyName:          "My Company Inc.",
		WorkStartTime:        "09:00",
		WorkEndTime:          "18:00",
		LateToleranceMinutes: 15,
		BaseHourlyRate:       1500,
		TaxPercentage:        13,
		OvertimeBonus:        5000,
		OvertimeThreshold:    160,
		OvertimeApproval:     false,
	}
}

// SettingsPatch is a partial settings update. Nil fields are left untouched.
type SettingsPatch struct {
	CompanyName          *string  `json:"companyName,omitempty"`
	WorkStartTime        *string  `json:"workStartTime,omitempty"`
	WorkEndTime          *string  `json:"workEndTime,omitempty"`
	LateToleranceMinutes *int     `json:"lateToleranceMinutes,omitempty"`
	BaseHourlyRate       *float64 `json:"baseHourlyRate,omitempty"`
	TaxPercentage        *float64 `json:"taxPercentage,omitempty"`
	OvertimeBonus        *float64 `json:"overtimeBonus,omitempty"`
	OvertimeThreshold    *float64 `json:"overtimeThreshold,omitempty"`
	OvertimeApproval     *bool    `json:"overtimeApproval,omitempty"`
}

// Apply merges the patch into s, field by field.
func (p SettingsPatch) Apply(s Settings) Settings {
	if p.CompanyName != nil {
		s.CompanyName = *p.CompanyName
	}
	if p.WorkStartTime != nil {
		s.WorkStartTime = *p.WorkStartTime
	}
	if p.WorkEndTime != nil {
		s.WorkEndTime = *p.WorkEndTime
	}
	if p.LateToleranceMinutes != nil {
		s.LateToleranceMinutes = *p.LateToleranceMinutes
	}
	if p.BaseHourlyRate != nil {
		s.BaseHourlyRate = *p.BaseHourlyRate
	}
	if p.TaxPercentage != nil {
		s.TaxPercentage = *p.TaxPercentage
	}
	if p.OvertimeBonus != nil {
		s.OvertimeBonus = *p.OvertimeBonus
	}
	if p.OvertimeThreshold != nil {
		s.OvertimeThreshold = *p.OvertimeThreshold
	}
	if p.OvertimeApproval != nil {
		s.OvertimeApproval = *p.OvertimeApproval
	}
	return s
}
