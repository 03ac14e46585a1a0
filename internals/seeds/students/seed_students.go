package students

import (
	"encoding/csv"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"edurisk_backend/internals/features/students/model"
	authHelper "edurisk_backend/internals/features/users/auth/helper"
)

// SeedStudentsFromCSV loads the student dataset. Each student gets their
// student ID as the initial password. Rows whose email already exists are
// skipped so reseeding stays safe.
func SeedStudentsFromCSV(db *gorm.DB, filePath string) {
	f, err := os.Open(filePath)
	if err != nil {
		log.Printf("❌ Failed to open student seed file %s: %v", filePath, err)
		return
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		log.Printf("❌ Failed to read student seed header: %v", err)
		return
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}

	rows, err := reader.ReadAll()
	if err != nil {
		log.Printf("❌ Failed to read student seed rows: %v", err)
		return
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	inserted, skipped := 0, 0
	for _, row := range rows {
		studentID := field(row, "Student_ID")
		email := field(row, "Email_ID")
		if studentID == "" || email == "" {
			skipped++
			continue
		}

		var count int64
		if err := db.Model(&model.StudentModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
			log.Printf("❌ Failed to check existing student %s: %v", email, err)
			continue
		}
		if count > 0 {
			log.Printf("ℹ️ Student %s already exists, skipping.", email)
			skipped++
			continue
		}

		hashed, err := authHelper.HashPassword(studentID)
		if err != nil {
			log.Printf("❌ Failed to hash password for %s: %v", studentID, err)
			continue
		}

		student := model.StudentModel{
			ID:        uuid.New(),
			StudentID: studentID,
			Name:      field(row, "Student_Name"),
			Email:     email,
			Password:  hashed,

			AvgAttendance:  parseFloat(field(row, "Avg_Attendance")),
			AvgPerformance: parseFloat(field(row, "Avg_Performance")),
			SemesterGPA:    parseFloat(field(row, "Semester_GPA")),
			MarksMath:      parseFloat(field(row, "Marks_Math")),
			MarksPhysics:   parseFloat(field(row, "Marks_Physics")),
			MarksChemistry: parseFloat(field(row, "Marks_Chemistry")),
			MarksCS:        parseFloat(field(row, "Marks_CS")),
			MarksLab1:      parseFloat(field(row, "Marks_Lab1")),
			MarksLab2:      parseFloat(field(row, "Marks_Lab2")),

			DisciplinaryActions:            parseInt(field(row, "Disciplinary_Actions")),
			TotalLeaves:                    parseInt(field(row, "Total_Leaves")),
			LMSLoginsPerWeek:               parseFloat(field(row, "LMS_Logins_Per_Week")),
			ClassParticipation:             field(row, "Class_Participation"),
			ExtracurricularActivitiesScore: parseFloat(field(row, "Extracurricular_Activities_Score")),

			FeeStatus:          field(row, "Fee_Status"),
			ScholarshipStatus:  field(row, "Scholarship_Status"),
			LoanStatus:         field(row, "Loan_Status"),
			ParentAnnualIncome: parseFloat(field(row, "Parent_Annual_Income")),

			Age:                        parseInt(field(row, "Age")),
			Gender:                     field(row, "Gender"),
			YearOfStudy:                parseInt(field(row, "Year_of_Study")),
			ChronicHealthIssue:         field(row, "Chronic_Health_Issue"),
			HealthIssueType:            field(row, "Health_Issue_Type"),
			CounselingSessionsAttended: parseInt(field(row, "Counseling_Sessions_Attended")),
		}
		student.SetDefaultValues()

		if err := db.Create(&student).Error; err != nil {
			log.Printf("❌ Failed to insert student %s: %v", studentID, err)
			continue
		}
		inserted++
	}

	log.Printf("✅ Student seeding done: %d inserted, %d skipped.", inserted, skipped)
}

func parseFloat(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseInt(s string) int {
	if s == "" {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}
