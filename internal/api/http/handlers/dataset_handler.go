package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-board/internal/api/dto"
	"github.com/spec-kit/employee-board/internal/domain"
	"github.com/spec-kit/employee-board/internal/service"
	apperrors "github.com/spec-kit/employee-board/pkg/util/errorutil"
)

const uploadField = "file"

// DatasetHandler manages the session's uploaded roster.
type DatasetHandler struct {
	datasets *service.DatasetService
	audit    *service.AuditService
}

// NewDatasetHandler constructs handler.
func NewDatasetHandler(datasets *service.DatasetService, audit *service.AuditService) *DatasetHandler {
	return &DatasetHandler{datasets: datasets, audit: audit}
}

// Upload POST /datasets.
func (h *DatasetHandler) Upload(c *fiber.Ctx) error {
	sid, err := sessionID(c)
	if err != nil {
		return err
	}
	header, err := c.FormFile(uploadField)
	if err != nil {
		return apperrors.NewValidationError("multipart field \"file\" required", map[string]any{"field": uploadField})
	}
	file, err := header.Open()
	if err != nil {
		return h.datasets.Reject(c.UserContext(), sid, header.Filename, apperrors.NewLoadError("failed to open uploaded file", err))
	}
	defer file.Close()

	info, err := h.datasets.Upload(c.UserContext(), sid, header.Filename, file)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": datasetResponse(info)})
}

// Current GET /datasets/current.
func (h *DatasetHandler) Current(c *fiber.Ctx) error {
	sid, err := sessionID(c)
	if err != nil {
		return err
	}
	ds, err := h.datasets.Current(c.UserContext(), sid)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": datasetResponse(&ds.Info)})
}

// Discard DELETE /datasets/current.
func (h *DatasetHandler) Discard(c *fiber.Ctx) error {
	sid, err := sessionID(c)
	if err != nil {
		return err
	}
	if err := h.datasets.Discard(c.UserContext(), sid); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// History GET /datasets/history.
func (h *DatasetHandler) History(c *fiber.Ctx) error {
	sid, err := sessionID(c)
	if err != nil {
		return err
	}
	records, err := h.audit.History(c.UserContext(), sid)
	if err != nil {
		return err
	}
	items := make([]dto.UploadRecordResponse, 0, len(records))
	for _, rec := range records {
		items = append(items, dto.UploadRecordResponse{
			ID:          rec.ID,
			FileName:    rec.FileName,
			Format:      rec.Format,
			SizeBytes:   rec.SizeBytes,
			RowCount:    rec.RowCount,
			Fingerprint: rec.Fingerprint,
			Outcome:     rec.Outcome,
			ErrorDetail: rec.ErrorDetail,
			CreatedAt:   rec.CreatedAt,
		})
	}
	return c.JSON(fiber.Map{"data": items})
}

func datasetResponse(info *domain.DatasetInfo) dto.DatasetResponse {
	return dto.DatasetResponse{
		ID:          info.ID,
		FileName:    info.FileName,
		Format:      info.Format,
		SizeBytes:   info.SizeBytes,
		RowCount:    info.RowCount,
		Fingerprint: info.Fingerprint,
		LoadedAt:    info.LoadedAt,
	}
}
