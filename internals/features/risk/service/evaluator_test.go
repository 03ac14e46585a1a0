package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	sModel "edurisk_backend/internals/features/students/model"
)

// newTestDB opens an in-memory store with the students schema. The table is
// created by hand because the production DDL uses postgres-only defaults.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.Exec(`CREATE TABLE students (
		id TEXT PRIMARY KEY,
		student_id TEXT NOT NULL UNIQUE,
		name TEXT,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		avg_attendance REAL,
		avg_performance REAL,
		semester_gpa REAL,
		marks_math REAL,
		marks_physics REAL,
		marks_chemistry REAL,
		marks_cs REAL,
		marks_lab1 REAL,
		marks_lab2 REAL,
		disciplinary_actions INTEGER,
		total_leaves INTEGER,
		lms_logins_per_week REAL,
		class_participation TEXT,
		extracurricular_activities_score REAL,
		fee_status TEXT,
		scholarship_status TEXT,
		loan_status TEXT,
		parent_annual_income REAL,
		age INTEGER,
		gender TEXT,
		year_of_study INTEGER,
		chronic_health_issue TEXT,
		health_issue_type TEXT,
		counseling_sessions_attended INTEGER,
		ml_risk_score REAL,
		risk_level TEXT,
		risk_reason TEXT,
		risk_factors TEXT,
		evaluated_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	)`).Error)

	return db
}

// newStudent builds a record no scoring rule fires on; mutate adjusts it.
func newStudent(studentID string, mutate func(*sModel.StudentModel)) *sModel.StudentModel {
	s := &sModel.StudentModel{
		ID:                             uuid.New(),
		StudentID:                      studentID,
		Name:                           "Student " + studentID,
		Email:                          studentID + "@test.com",
		Password:                       "x",
		AvgAttendance:                  90,
		AvgPerformance:                 80,
		SemesterGPA:                    8.0,
		LMSLoginsPerWeek:               5,
		ClassParticipation:             "Medium",
		ExtracurricularActivitiesScore: 60,
		FeeStatus:                      "Paid",
		ScholarshipStatus:              "No",
		LoanStatus:                     "No",
		ChronicHealthIssue:             "No",
		HealthIssueType:                "None",
		CounselingSessionsAttended:     2,
		RiskLevel:                      sModel.RiskLevelGreen,
	}
	if mutate != nil {
		mutate(s)
	}
	return s
}

func TestEvaluateAllEmptyStore(t *testing.T) {
	db := newTestDB(t)

	count, err := EvaluateAll(db)
	require.NoError(t, err)
	require.Equal(t, 0, count)
}

func TestEvaluateAllWritesDerivedColumns(t *testing.T) {
	db := newTestDB(t)

	healthy := newStudent("S1", nil)
	risky := newStudent("S2", func(s *sModel.StudentModel) {
		s.AvgAttendance = 49      // +20
		s.AvgPerformance = 35     // +15
		s.FeeStatus = "Overdue"   // +15
		s.DisciplinaryActions = 1 // +15
	})
	require.NoError(t, db.Create(healthy).Error)
	require.NoError(t, db.Create(risky).Error)

	count, err := EvaluateAll(db)
	require.NoError(t, err)
	require.Equal(t, 2, count)

	var got sModel.StudentModel
	require.NoError(t, db.Where("student_id = ?", "S1").First(&got).Error)
	require.Equal(t, 0.0, got.MLRiskScore)
	require.Equal(t, sModel.RiskLevelGreen, got.RiskLevel)
	require.Equal(t, NoIssuesTag, got.RiskReason)
	require.JSONEq(t, `["No specific issues detected"]`, string(got.RiskFactors))
	require.NotNil(t, got.EvaluatedAt)

	var got2 sModel.StudentModel
	require.NoError(t, db.Where("student_id = ?", "S2").First(&got2).Error)
	require.Equal(t, 65.0, got2.MLRiskScore)
	require.Equal(t, sModel.RiskLevelYellow, got2.RiskLevel)
	require.Equal(t, "Academic, Financial, Behavioral", got2.RiskReason)
	require.NotNil(t, got2.EvaluatedAt)
}

func TestEvaluateAllCounselingFeedback(t *testing.T) {
	db := newTestDB(t)

	// First pass lands on Yellow; the second pass adds the no-counseling
	// points because the stored level is no longer Green.
	s := newStudent("S3", func(s *sModel.StudentModel) {
		s.AvgAttendance = 60    // +10
		s.AvgPerformance = 50   // +5
		s.TotalLeaves = 8       // +5
		s.LMSLoginsPerWeek = 1  // +5
		s.FeeStatus = "Pending" // +15
		s.CounselingSessionsAttended = 0
	})
	require.NoError(t, db.Create(s).Error)

	_, err := EvaluateAll(db)
	require.NoError(t, err)

	var got sModel.StudentModel
	require.NoError(t, db.Where("student_id = ?", "S3").First(&got).Error)
	require.Equal(t, 40.0, got.MLRiskScore)
	require.Equal(t, sModel.RiskLevelYellow, got.RiskLevel)

	_, err = EvaluateAll(db)
	require.NoError(t, err)
	require.NoError(t, db.Where("student_id = ?", "S3").First(&got).Error)
	require.Equal(t, 45.0, got.MLRiskScore)
	require.Equal(t, sModel.RiskLevelYellow, got.RiskLevel)
}

func TestEvaluateAllWriteFailureKeepsPriorColumns(t *testing.T) {
	db := newTestDB(t)

	s := newStudent("S5", func(s *sModel.StudentModel) {
		s.AvgAttendance = 49
		s.MLRiskScore = 33
		s.RiskLevel = sModel.RiskLevelYellow
		s.RiskReason = FactorAcademic
	})
	require.NoError(t, db.Create(s).Error)

	require.NoError(t, db.Exec(`CREATE TRIGGER fail_update BEFORE UPDATE ON students
		BEGIN SELECT RAISE(ABORT, 'boom'); END;`).Error)

	count, err := EvaluateAll(db)
	require.Error(t, err)
	require.Equal(t, 0, count)

	// The failed pass must not leave partial results behind.
	var got sModel.StudentModel
	require.NoError(t, db.Where("student_id = ?", "S5").First(&got).Error)
	require.Equal(t, 33.0, got.MLRiskScore)
	require.Equal(t, sModel.RiskLevelYellow, got.RiskLevel)
	require.Equal(t, FactorAcademic, got.RiskReason)
	require.Nil(t, got.EvaluatedAt)
}

func TestEvaluateAllStablePassForHealthyStudent(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(newStudent("S4", nil)).Error)

	for i := 0; i < 2; i++ {
		_, err := EvaluateAll(db)
		require.NoError(t, err)
	}

	var got sModel.StudentModel
	require.NoError(t, db.Where("student_id = ?", "S4").First(&got).Error)
	require.Equal(t, 0.0, got.MLRiskScore)
	require.Equal(t, sModel.RiskLevelGreen, got.RiskLevel)
	require.Equal(t, NoIssuesTag, got.RiskReason)
}
