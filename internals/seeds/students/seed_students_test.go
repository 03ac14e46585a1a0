package students

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"edurisk_backend/internals/features/students/model"
	authHelper "edurisk_backend/internals/features/users/auth/helper"
)

func newSeedDB(t *testing.T) *gorm.DB {
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

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data_students.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const seedCSV = `Student_ID,Student_Name,Email_ID,Age,Gender,Year_of_Study,Fee_Status,Avg_Attendance,Avg_Performance,Semester_GPA,Total_Leaves,LMS_Logins_Per_Week
S1001,Aarav Sharma,aarav@test.com,19,Male,2,Paid,88.5,74.2,7.8,3,6
S1002,Priya Nair,priya@test.com,20,Female,3,Pending,62,48.5,5.4,12,1.5
`

func TestSeedStudentsFromCSV(t *testing.T) {
	db := newSeedDB(t)

	SeedStudentsFromCSV(db, writeSeedFile(t, seedCSV))

	var students []model.StudentModel
	require.NoError(t, db.Order("student_id").Find(&students).Error)
	require.Len(t, students, 2)

	s := students[0]
	assert.Equal(t, "S1001", s.StudentID)
	assert.Equal(t, "Aarav Sharma", s.Name)
	assert.Equal(t, "aarav@test.com", s.Email)
	assert.Equal(t, 88.5, s.AvgAttendance)
	assert.Equal(t, 7.8, s.SemesterGPA)
	assert.Equal(t, "Paid", s.FeeStatus)
	// Columns missing from the file fall back to zero / categorical defaults.
	assert.Equal(t, 0.0, s.MarksMath)
	assert.Equal(t, "Medium", s.ClassParticipation)

	// Initial password is the student ID, stored hashed.
	assert.NotEqual(t, "S1001", s.Password)
	assert.True(t, authHelper.CheckPassword(s.Password, "S1001"))
}

func TestSeedStudentsSkipsDuplicates(t *testing.T) {
	db := newSeedDB(t)
	path := writeSeedFile(t, seedCSV)

	SeedStudentsFromCSV(db, path)
	SeedStudentsFromCSV(db, path)

	var count int64
	require.NoError(t, db.Model(&model.StudentModel{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestSeedStudentsSkipsIncompleteRows(t *testing.T) {
	db := newSeedDB(t)
	csv := "Student_ID,Student_Name,Email_ID\n" +
		",No ID,noid@test.com\n" +
		"S2001,No Email,\n" +
		"S2002,Complete,complete@test.com\n"

	SeedStudentsFromCSV(db, writeSeedFile(t, csv))

	var students []model.StudentModel
	require.NoError(t, db.Find(&students).Error)
	require.Len(t, students, 1)
	assert.Equal(t, "S2002", students[0].StudentID)
}

func TestSeedStudentsMissingFile(t *testing.T) {
	db := newSeedDB(t)

	SeedStudentsFromCSV(db, filepath.Join(t.TempDir(), "nope.csv"))

	var count int64
	require.NoError(t, db.Model(&model.StudentModel{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
