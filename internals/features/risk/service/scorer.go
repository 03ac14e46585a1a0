package service

import (
	sModel "edurisk_backend/internals/features/students/model"
)

// Factor tags reported alongside the score.
const (
	FactorAcademic   = "Academic"
	FactorFinancial  = "Financial"
	FactorBehavioral = "Behavioral"
	FactorHealth     = "Health"
	FactorEngagement = "Engagement"

	// NoIssuesTag is reported when no factor rule matches.
	NoIssuesTag = "No specific issues detected"

	// PredictionErrorTag is the sentinel reason for a record that could not
	// be scored.
	PredictionErrorTag = "Prediction error"
)

const maxRiskScore = 100.0

// ScoreInput carries the raw features consumed by the scoring rules.
// PreviousRiskLevel is the risk level written by the last evaluation pass
// (seed default "Green" for a never-evaluated record); the counseling rule
// reads it on purpose, so scoring feeds back on prior results.
type ScoreInput struct {
	AvgAttendance                  float64
	AvgPerformance                 float64
	SemesterGPA                    float64
	DisciplinaryActions            int
	TotalLeaves                    int
	LMSLoginsPerWeek               float64
	ExtracurricularActivitiesScore float64
	FeeStatus                      string
	ScholarshipStatus              string
	LoanStatus                     string
	ChronicHealthIssue             string
	CounselingSessionsAttended     int
	PreviousRiskLevel              string
}

// InputFromStudent builds the scorer input from a student record, taking the
// record's current risk_level as the previous level.
func InputFromStudent(s *sModel.StudentModel) ScoreInput {
	return ScoreInput{
		AvgAttendance:                  s.AvgAttendance,
		AvgPerformance:                 s.AvgPerformance,
		SemesterGPA:                    s.SemesterGPA,
		DisciplinaryActions:            s.DisciplinaryActions,
		TotalLeaves:                    s.TotalLeaves,
		LMSLoginsPerWeek:               s.LMSLoginsPerWeek,
		ExtracurricularActivitiesScore: s.ExtracurricularActivitiesScore,
		FeeStatus:                      s.FeeStatus,
		ScholarshipStatus:              s.ScholarshipStatus,
		LoanStatus:                     s.LoanStatus,
		ChronicHealthIssue:             s.ChronicHealthIssue,
		CounselingSessionsAttended:     s.CounselingSessionsAttended,
		PreviousRiskLevel:              s.PreviousRiskLevel(),
	}
}

// Score applies the rule-based heuristic to one student and returns the risk
// score in [0,100] together with the contributing factor tags. Every rule is
// an independent additive check; within the attendance, performance and
// leaves pairs only the higher-point branch fires. The tag thresholds differ
// from the point thresholds on purpose.
func Score(in ScoreInput) (float64, []string) {
	score := 0.0

	// Academic factors (max 40 points)
	if in.AvgAttendance < 50 {
		score += 20
	} else if in.AvgAttendance < 75 {
		score += 10
	}
	if in.AvgPerformance < 40 {
		score += 15
	} else if in.AvgPerformance < 60 {
		score += 5
	}
	if in.SemesterGPA < 5.0 {
		score += 5
	}

	// Behavioral factors (max 30 points)
	if in.DisciplinaryActions > 0 {
		score += 15
	}
	if in.TotalLeaves > 10 {
		score += 10
	} else if in.TotalLeaves > 5 {
		score += 5
	}
	if in.LMSLoginsPerWeek < 2 {
		score += 5
	}

	// Financial factors (max 20 points)
	if in.FeeStatus != "Paid" {
		score += 15
	}
	if in.LoanStatus == "Yes" && in.ScholarshipStatus == "No" {
		score += 5
	}

	// Personal factors (max 10 points)
	if in.ChronicHealthIssue == "Yes" {
		score += 5
	}
	if in.CounselingSessionsAttended == 0 && in.PreviousRiskLevel != sModel.RiskLevelGreen {
		score += 5
	}

	if score > maxRiskScore {
		score = maxRiskScore
	}

	return score, factorTags(in)
}

func factorTags(in ScoreInput) []string {
	var tags []string
	if in.AvgAttendance < 75 || in.AvgPerformance < 50 || in.SemesterGPA < 6.0 {
		tags = append(tags, FactorAcademic)
	}
	if in.FeeStatus != "Paid" {
		tags = append(tags, FactorFinancial)
	}
	if in.DisciplinaryActions > 0 || in.TotalLeaves > 10 {
		tags = append(tags, FactorBehavioral)
	}
	if in.ChronicHealthIssue == "Yes" {
		tags = append(tags, FactorHealth)
	}
	if in.LMSLoginsPerWeek < 3 || in.ExtracurricularActivitiesScore < 40 {
		tags = append(tags, FactorEngagement)
	}

	if len(tags) == 0 {
		return []string{NoIssuesTag}
	}
	return tags
}

// LevelForScore maps a score onto the non-overlapping tier partition.
func LevelForScore(score float64) string {
	switch {
	case score >= 70:
		return sModel.RiskLevelRed
	case score >= 40:
		return sModel.RiskLevelYellow
	default:
		return sModel.RiskLevelGreen
	}
}
