package model

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Validator instance
var validate = validator.New()

// Risk tiers written by the evaluator.
const (
	RiskLevelGreen  = "Green"
	RiskLevelYellow = "Yellow"
	RiskLevelRed    = "Red"
)

// StudentModel represents the students table. The derived risk columns
// (ml_risk_score, risk_level, risk_reason, risk_factors, evaluated_at) are
// written only by the risk evaluator and always in the same pass.
type StudentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	StudentID string    `gorm:"size:50;unique;not null" json:"student_id" validate:"required,max=50"`
	Name      string    `gorm:"size:100" json:"name"`
	Email     string    `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	Password  string    `gorm:"not null" json:"-"`

	// Academic
	AvgAttendance  float64 `gorm:"default:75" json:"avg_attendance" validate:"gte=0,lte=100"`
	AvgPerformance float64 `gorm:"default:50" json:"avg_performance" validate:"gte=0,lte=100"`
	SemesterGPA    float64 `gorm:"column:semester_gpa;default:6" json:"semester_gpa" validate:"gte=0,lte=10"`
	MarksMath      float64 `gorm:"default:50" json:"marks_math"`
	MarksPhysics   float64 `gorm:"default:50" json:"marks_physics"`
	MarksChemistry float64 `gorm:"default:50" json:"marks_chemistry"`
	MarksCS        float64 `gorm:"column:marks_cs;default:50" json:"marks_cs"`
	MarksLab1      float64 `gorm:"column:marks_lab1;default:50" json:"marks_lab1"`
	MarksLab2      float64 `gorm:"column:marks_lab2;default:50" json:"marks_lab2"`

	// Behavioral
	DisciplinaryActions            int     `gorm:"default:0" json:"disciplinary_actions" validate:"gte=0"`
	TotalLeaves                    int     `gorm:"default:0" json:"total_leaves" validate:"gte=0"`
	LMSLoginsPerWeek               float64 `gorm:"column:lms_logins_per_week;default:5" json:"lms_logins_per_week" validate:"gte=0"`
	ClassParticipation             string  `gorm:"size:20;default:'Medium'" json:"class_participation"`
	ExtracurricularActivitiesScore float64 `gorm:"default:50" json:"extracurricular_activities_score" validate:"gte=0,lte=100"`

	// Financial
	FeeStatus          string  `gorm:"size:50;default:'Paid'" json:"fee_status"`
	ScholarshipStatus  string  `gorm:"size:20;default:'No'" json:"scholarship_status"`
	LoanStatus         string  `gorm:"size:20;default:'No'" json:"loan_status"`
	ParentAnnualIncome float64 `gorm:"default:50000" json:"parent_annual_income" validate:"gte=0"`

	// Personal
	Age                        int    `gorm:"default:20" json:"age"`
	Gender                     string `gorm:"size:10;default:'Male'" json:"gender"`
	YearOfStudy                int    `gorm:"default:1" json:"year_of_study"`
	ChronicHealthIssue         string `gorm:"size:10;default:'No'" json:"chronic_health_issue"`
	HealthIssueType            string `gorm:"size:50;default:'None'" json:"health_issue_type"`
	CounselingSessionsAttended int    `gorm:"default:0" json:"counseling_sessions_attended" validate:"gte=0"`

	// Derived risk columns
	MLRiskScore float64        `gorm:"column:ml_risk_score;default:0" json:"ml_risk_score"`
	RiskLevel   string         `gorm:"size:20;default:'Green'" json:"risk_level"`
	RiskReason  string         `gorm:"size:255;default:''" json:"risk_reason"`
	RiskFactors datatypes.JSON `gorm:"column:risk_factors" json:"risk_factors"`
	EvaluatedAt *time.Time     `json:"evaluated_at,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName keeps the table name in line with the database schema
func (StudentModel) TableName() string {
	return "students"
}

// SetDefaultValues fills categorical defaults before validation
func (s *StudentModel) SetDefaultValues() {
	if s.RiskLevel == "" {
		s.RiskLevel = RiskLevelGreen
	}
	if s.FeeStatus == "" {
		s.FeeStatus = "Paid"
	}
	if s.ClassParticipation == "" {
		s.ClassParticipation = "Medium"
	}
}

// Validate checks the record against the field rules
func (s *StudentModel) Validate() error {
	s.SetDefaultValues()
	return validate.Struct(s)
}

// PreviousRiskLevel returns the level written by the last evaluation pass,
// defaulting to Green for a never-evaluated record.
func (s *StudentModel) PreviousRiskLevel() string {
	if s.RiskLevel == "" {
		return RiskLevelGreen
	}
	return s.RiskLevel
}

// AtRisk reports whether the student was flagged by the last evaluation pass.
func (s *StudentModel) AtRisk() bool {
	return s.RiskLevel == RiskLevelYellow || s.RiskLevel == RiskLevelRed
}
