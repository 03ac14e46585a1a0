package service

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/gorm"

	sModel "edurisk_backend/internals/features/students/model"
)

// ReportFilename is the fixed name of the generated CSV report.
const ReportFilename = "report.csv"

var reportHeader = []string{
	"Student ID", "Name", "Attendance", "Marks", "Fee Status",
	"Risk Level", "ML Risk Score", "Reason",
}

// GenerateCSVReport writes the at-risk report (every student whose level is
// not Green, highest score first) to <dir>/report.csv and returns the path.
// A store with no flagged students yields a header-only file.
func GenerateCSVReport(db *gorm.DB, dir string) (string, error) {
	var students []sModel.StudentModel
	if err := db.
		Where("risk_level <> ?", sModel.RiskLevelGreen).
		Order("ml_risk_score DESC").
		Find(&students).Error; err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, ReportFilename)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(reportHeader); err != nil {
		return "", err
	}
	for i := range students {
		if err := w.Write(reportRow(&students[i])); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return path, nil
}

func reportRow(s *sModel.StudentModel) []string {
	score := "N/A"
	if s.MLRiskScore > 0 {
		score = fmt.Sprintf("%.1f%%", s.MLRiskScore)
	}
	return []string{
		s.StudentID,
		s.Name,
		fmt.Sprintf("%.1f", s.AvgAttendance),
		fmt.Sprintf("%.1f", s.AvgPerformance),
		s.FeeStatus,
		s.RiskLevel,
		score,
		s.RiskReason,
	}
}
