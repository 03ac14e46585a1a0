package dto

import (
	setModel "edurisk_backend/internals/features/settings/model"
)

// UpdateSettingRequest — partial update (pointers distinguish omit vs zero)
type UpdateSettingRequest struct {
	AttendanceCutoff *float64 `json:"attendance_cutoff,omitempty" validate:"omitempty,gte=0,lte=100"`
	MarksCutoff      *float64 `json:"marks_cutoff,omitempty" validate:"omitempty,gte=0,lte=100"`
	FeeDelayDays     *int     `json:"fee_delay_days,omitempty" validate:"omitempty,gte=0"`
}

// Apply copies the provided fields onto the settings row.
func (r *UpdateSettingRequest) Apply(m *setModel.SettingModel) {
	if r.AttendanceCutoff != nil {
		m.AttendanceCutoff = *r.AttendanceCutoff
	}
	if r.MarksCutoff != nil {
		m.MarksCutoff = *r.MarksCutoff
	}
	if r.FeeDelayDays != nil {
		m.FeeDelayDays = *r.FeeDelayDays
	}
}
