package dto

import (
	"fmt"

	sModel "edurisk_backend/internals/features/students/model"

	"github.com/google/uuid"
)

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

// StudentSummaryResponse is one dashboard row.
type StudentSummaryResponse struct {
	ID          uuid.UUID `json:"id"`
	StudentID   string    `json:"student_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Attendance  float64   `json:"attendance"`
	Marks       float64   `json:"marks"`
	FeeStatus   string    `json:"fee_status"`
	RiskLevel   string    `json:"risk_level"`
	MLRiskScore float64   `json:"ml_risk_score"`
	RiskReason  string    `json:"risk_reason"`
}

func ToStudentSummaryResponse(s *sModel.StudentModel) StudentSummaryResponse {
	return StudentSummaryResponse{
		ID:          s.ID,
		StudentID:   s.StudentID,
		Name:        s.Name,
		Email:       s.Email,
		Attendance:  s.AvgAttendance,
		Marks:       s.AvgPerformance,
		FeeStatus:   s.FeeStatus,
		RiskLevel:   s.RiskLevel,
		MLRiskScore: s.MLRiskScore,
		RiskReason:  s.RiskReason,
	}
}

// StudentDetailResponse is the full projection for the detail endpoint.
// Percentages are formatted to one decimal.
type StudentDetailResponse struct {
	Name                string  `json:"name"`
	StudentID           string  `json:"student_id"`
	Email               string  `json:"email"`
	RiskLevel           string  `json:"risk_level"`
	RiskReason          string  `json:"risk_reason"`
	MLRiskScore         string  `json:"ml_risk_score"`
	Age                 int     `json:"age"`
	Gender              string  `json:"gender"`
	YearOfStudy         int     `json:"year_of_study"`
	GPA                 float64 `json:"gpa"`
	AvgAttendance       string  `json:"avg_attendance"`
	AvgPerformance      string  `json:"avg_performance"`
	Scholarship         string  `json:"scholarship"`
	Loan                string  `json:"loan"`
	FeeStatus           string  `json:"fee_status"`
	HealthIssue         string  `json:"health_issue"`
	TotalLeaves         int     `json:"total_leaves"`
	DisciplinaryActions int     `json:"disciplinary_actions"`
	LMSLogins           float64 `json:"lms_logins"`
	CounselingSessions  int     `json:"counseling_sessions"`
	ClassParticipation  string  `json:"class_participation"`
	MarksMath           float64 `json:"marks_math"`
	MarksPhysics        float64 `json:"marks_physics"`
	MarksChemistry      float64 `json:"marks_chemistry"`
	MarksCS             float64 `json:"marks_cs"`
	MarksLab1           float64 `json:"marks_lab1"`
	MarksLab2           float64 `json:"marks_lab2"`
}

func ToStudentDetailResponse(s *sModel.StudentModel) StudentDetailResponse {
	return StudentDetailResponse{
		Name:                s.Name,
		StudentID:           s.StudentID,
		Email:               s.Email,
		RiskLevel:           s.RiskLevel,
		RiskReason:          s.RiskReason,
		MLRiskScore:         fmt.Sprintf("%.1f%%", s.MLRiskScore),
		Age:                 s.Age,
		Gender:              s.Gender,
		YearOfStudy:         s.YearOfStudy,
		GPA:                 s.SemesterGPA,
		AvgAttendance:       fmt.Sprintf("%.1f%%", s.AvgAttendance),
		AvgPerformance:      fmt.Sprintf("%.1f", s.AvgPerformance),
		Scholarship:         s.ScholarshipStatus,
		Loan:                s.LoanStatus,
		FeeStatus:           s.FeeStatus,
		HealthIssue:         s.ChronicHealthIssue,
		TotalLeaves:         s.TotalLeaves,
		DisciplinaryActions: s.DisciplinaryActions,
		LMSLogins:           s.LMSLoginsPerWeek,
		CounselingSessions:  s.CounselingSessionsAttended,
		ClassParticipation:  s.ClassParticipation,
		MarksMath:           s.MarksMath,
		MarksPhysics:        s.MarksPhysics,
		MarksChemistry:      s.MarksChemistry,
		MarksCS:             s.MarksCS,
		MarksLab1:           s.MarksLab1,
		MarksLab2:           s.MarksLab2,
	}
}
