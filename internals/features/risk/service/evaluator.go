package service

import (
	"encoding/json"
	"log"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	sModel "edurisk_backend/internals/features/students/model"
)

// EvaluateAll runs one evaluation pass: every student is scored, the tier is
// derived from the score, and the derived columns are written back in a
// single transaction. Returns the number of students evaluated.
//
// An empty store is a no-op, not an error. A commit failure is returned to
// the caller; the controller is responsible for surfacing it.
func EvaluateAll(db *gorm.DB) (int, error) {
	var students []sModel.StudentModel
	if err := db.Find(&students).Error; err != nil {
		return 0, err
	}
	if len(students) == 0 {
		log.Println("[WARN] No students to evaluate.")
		return 0, nil
	}

	log.Printf("[INFO] Starting rule-based risk evaluation for %d students...", len(students))

	now := time.Now().UTC()
	for i := range students {
		score, tags := scoreStudent(&students[i])
		students[i].MLRiskScore = score
		students[i].RiskLevel = LevelForScore(score)
		students[i].RiskReason = strings.Join(tags, ", ")
		students[i].RiskFactors = mustJSON(tags)
		students[i].EvaluatedAt = &now
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		for i := range students {
			if err := tx.Model(&sModel.StudentModel{}).
				Where("id = ?", students[i].ID).
				Updates(map[string]interface{}{
					"ml_risk_score": students[i].MLRiskScore,
					"risk_level":    students[i].RiskLevel,
					"risk_reason":   students[i].RiskReason,
					"risk_factors":  students[i].RiskFactors,
					"evaluated_at":  students[i].EvaluatedAt,
				}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Println("[INFO] Risk evaluation completed.")
	return len(students), nil
}

// scoreStudent wraps Score with the sentinel fallback: a record the scorer
// cannot handle yields (0, ["Prediction error"]) instead of aborting the pass.
func scoreStudent(s *sModel.StudentModel) (score float64, tags []string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[ERROR] Error in rule-based prediction for %s: %v", s.StudentID, r)
			score, tags = 0.0, []string{PredictionErrorTag}
		}
	}()
	score, tags = Score(InputFromStudent(s))
	return score, tags
}

func mustJSON(v interface{}) datatypes.JSON {
	b, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(b)
}
