package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/alperyazir/dream-lms-sub000/internal/models"
	"github.com/alperyazir/dream-lms-sub000/internal/utils"
)

// ExportService renders stored reviews as spreadsheet scorecards for
// teachers.
type ExportService interface {
	ExportReviewToExcel(ctx context.Context, reviewID string) ([]byte, error)
}

type exportService struct {
	reviews ReviewService
	logger  utils.Logger
}

func NewExportService(reviews ReviewService, logger utils.Logger) ExportService {
	return &exportService{
		reviews: reviews,
		logger:  logger,
	}
}

func (s *exportService) ExportReviewToExcel(ctx context.Context, reviewID string) ([]byte, error) {
	record, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	var result map[string]any
	if err := json.Unmarshal(record.Result, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReviewResultUnmarshaling, err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := s.writeSummarySheet(f, record, result); err != nil {
		return nil, err
	}
	if err := s.writeItemsSheet(f, result); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render scorecard: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *exportService) writeSummarySheet(f *excelize.File, record *models.SubmissionReview, result map[string]any) error {
	const sheet = "Summary"
	f.SetSheetName("Sheet1", sheet)

	rows := [][]any{
		{"Review ID", record.ID},
		{"Activity ID", record.ActivityID},
		{"Activity Type", string(record.ActivityType)},
		{"Student ID", record.StudentID},
		{"Score", result["score"]},
		{"Total", result["total"]},
		{"Percentage", result["percentage"]},
		{"Reviewed At", record.CreatedAt.Format("2006-01-02 15:04:05")},
	}

	// Activity-specific aggregates appear only when the review carries them.
	for _, key := range []string{"perfect_words", "average_attempts", "auto_scored", "auto_correct", "pending_review"} {
		if v, ok := result[key]; ok {
			rows = append(rows, []any{key, v})
		}
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}
	return nil
}

func (s *exportService) writeItemsSheet(f *excelize.File, result map[string]any) error {
	const sheet = "Items"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	header := []any{"Item ID", "Correct Answer", "Student Answer", "Correct", "Pending Review"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write items header: %w", err)
	}

	for i, item := range itemRows(result) {
		row := []any{
			firstString(item, "question_id", "item_id", "word_id", "pair_id"),
			firstValue(item, "correct_answer", "correct_sentence", "word", "correct_index"),
			firstValue(item, "student_answer", "student_match", "submitted_sentence", "student_index"),
			item["is_correct"],
			item["pending_review"],
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write item row: %w", err)
		}
	}
	return nil
}

// itemRows pulls the per-item slice out of a review result regardless of
// activity type. Reading comprehension nests its questions under passages;
// everything else keeps a flat slice under a type-specific key.
func itemRows(result map[string]any) []map[string]any {
	var items []map[string]any

	if passages, ok := result["passage_results"].([]any); ok {
		for _, p := range passages {
			if passage, ok := p.(map[string]any); ok {
				items = append(items, objectSlice(passage["question_results"])...)
			}
		}
		return items
	}

	for _, key := range []string{"question_results", "word_results", "sentence_results", "pair_results", "item_results", "responses"} {
		if rows := objectSlice(result[key]); rows != nil {
			return rows
		}
	}
	return items
}

func objectSlice(v any) []map[string]any {
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(raw))
	for _, e := range raw {
		if m, ok := e.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

func firstString(item map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := item[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func firstValue(item map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := item[k]; ok && v != nil {
			return v
		}
	}
	return nil
}
