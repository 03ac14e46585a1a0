package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	sModel "edurisk_backend/internals/features/students/model"
)

func TestToStudentDetailResponseFormatting(t *testing.T) {
	s := &sModel.StudentModel{
		StudentID:      "S1001",
		Name:           "Aarav Sharma",
		Email:          "aarav.sharma@test.com",
		MLRiskScore:    45,
		RiskLevel:      sModel.RiskLevelYellow,
		AvgAttendance:  62.25,
		AvgPerformance: 48.5,
		SemesterGPA:    5.4,
	}

	resp := ToStudentDetailResponse(s)
	assert.Equal(t, "45.0%", resp.MLRiskScore)
	assert.Equal(t, "62.2%", resp.AvgAttendance)
	assert.Equal(t, "48.5", resp.AvgPerformance)
	assert.Equal(t, 5.4, resp.GPA)
	assert.Equal(t, sModel.RiskLevelYellow, resp.RiskLevel)
}

func TestToStudentSummaryResponse(t *testing.T) {
	s := &sModel.StudentModel{
		StudentID:      "S1002",
		Name:           "Priya Nair",
		Email:          "priya.nair@test.com",
		AvgAttendance:  62,
		AvgPerformance: 48.5,
		FeeStatus:      "Pending",
		RiskLevel:      sModel.RiskLevelYellow,
		MLRiskScore:    45,
		RiskReason:     "Academic, Financial",
	}

	resp := ToStudentSummaryResponse(s)
	assert.Equal(t, "S1002", resp.StudentID)
	assert.Equal(t, 62.0, resp.Attendance)
	assert.Equal(t, 48.5, resp.Marks)
	assert.Equal(t, "Pending", resp.FeeStatus)
	assert.Equal(t, 45.0, resp.MLRiskScore)
}
