package service

import (
	"fmt"
	"time"

	"Muploader/internal/database"
	"Muploader/internal/types"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

// HistoryService stores the outcome of every run
type HistoryService struct {
	db *gorm.DB
}

func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{db: db}
}

// Record saves one row per platform outcome. taskID is nil for runs that
// were not scheduled.
func (s *HistoryService) Record(taskID *uint, videos []types.VideoPayload, outcomes []types.UploadOutcome) (string, error) {
	if len(outcomes) == 0 {
		return "", nil
	}
	runID := fmt.Sprintf("%d", time.Now().UnixNano())
	title := ""
	if len(videos) > 0 {
		title = videos[0].Title
	}

	records := lo.Map(outcomes, func(o types.UploadOutcome, _ int) database.UploadRecord {
		return database.UploadRecord{
			RunID:      runID,
			TaskID:     taskID,
			Platform:   o.Platform.String(),
			Title:      title,
			Videos:     len(videos),
			Posts:      o.Posts,
			Success:    o.Success,
			Error:      o.Error,
			StartedAt:  o.StartedAt,
			FinishedAt: o.FinishedAt,
		}
	})
	if err := s.db.Create(&records).Error; err != nil {
		return "", fmt.Errorf("save upload history failed: %w", err)
	}
	return runID, nil
}

// Recent returns the latest records, newest first. platform filters when
// not empty.
func (s *HistoryService) Recent(platform string, limit int) ([]database.UploadRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	q := s.db.Order("id DESC").Limit(limit)
	if platform != "" {
		q = q.Where("platform = ?", platform)
	}
	var records []database.UploadRecord
	if err := q.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("query upload history failed: %w", err)
	}
	return records, nil
}
