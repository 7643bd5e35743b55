package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"diary/internal/delivery/http/middleware"
	"diary/internal/delivery/http/response"
	"diary/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultListLimit = 20
	maxImageBytes    = 10 << 20 // 10 MiB per attached image
)

// JournalHandlerParams holds dependencies for JournalHandler, injected by Fx.
type JournalHandlerParams struct {
	fx.In

	JournalUC usecase.JournalUsecase
	Logger    *slog.Logger
}

// JournalHandler holds dependencies for diary entry handlers.
type JournalHandler struct {
	journalUC usecase.JournalUsecase
	logger    *slog.Logger
}

// NewJournalHandler is the constructor for JournalHandler.
func NewJournalHandler(params JournalHandlerParams) *JournalHandler {
	return &JournalHandler{
		journalUC: params.JournalUC,
		logger:    params.Logger,
	}
}

// EntryRequest represents the request body for creating or updating an entry.
type EntryRequest struct {
	Title   string `json:"title" validate:"required,max=255"`
	Content string `json:"content" validate:"required"`
}

// ResolveForDate tells the client whether to open a blank editor or an
// existing entry for the requested local calendar day.
func (h *JournalHandler) ResolveForDate(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	ref, err := refFromQuery(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	resolution, err := h.journalUC.ResolveForDate(c.Request().Context(), userID, ref)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, resolution, "Entry resolved successfully")
}

// CreateEntry persists a new diary entry.
func (h *JournalHandler) CreateEntry(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req EntryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid entry input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	entry, err := h.journalUC.CreateEntry(c.Request().Context(), userID, &usecase.CreateEntryInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, entry, "Entry created successfully")
}

// GetEntry returns a single entry owned by the caller.
func (h *JournalHandler) GetEntry(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid entry ID")
	}

	entry, err := h.journalUC.GetEntry(c.Request().Context(), userID, entryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entry, "Entry retrieved successfully")
}

// UpdateEntry overwrites the title and content of an existing entry.
func (h *JournalHandler) UpdateEntry(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid entry ID")
	}

	var req EntryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid entry input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	entry, err := h.journalUC.UpdateEntry(c.Request().Context(), userID, entryID, &usecase.UpdateEntryInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entry, "Entry updated successfully")
}

// DeleteEntry removes an entry owned by the caller.
func (h *JournalHandler) DeleteEntry(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid entry ID")
	}

	if err := h.journalUC.DeleteEntry(c.Request().Context(), userID, entryID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Entry deleted"}, "Entry deleted successfully")
}

// ListEntries returns the caller's entries, newest first, paginated.
func (h *JournalHandler) ListEntries(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	limit := defaultListLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return response.BadRequest(c, "INVALID_INPUT", "limit must be a positive integer")
		}
		limit = parsed
	}

	offset := 0
	if raw := c.QueryParam("offset"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return response.BadRequest(c, "INVALID_INPUT", "offset must be a non-negative integer")
		}
		offset = parsed
	}

	entries, err := h.journalUC.ListEntries(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries, "Entries retrieved successfully")
}

// ListByDay returns the entries created on the requested local calendar day.
func (h *JournalHandler) ListByDay(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	ref, err := refFromQuery(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	entries, err := h.journalUC.ListByDay(c.Request().Context(), userID, ref)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries, "Entries retrieved successfully")
}

// AttachImage stores an uploaded image and returns its public URL.
func (h *JournalHandler) AttachImage(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "image file is required")
	}
	if fileHeader.Size > maxImageBytes {
		return response.BadRequest(c, "IMAGE_TOO_LARGE", "image exceeds the maximum allowed size")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.WithStack(err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
	if err != nil {
		return errors.WithStack(err)
	}

	contentType := fileHeader.Header.Get("Content-Type")

	url, err := h.journalUC.AttachImage(c.Request().Context(), userID, data, contentType)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"url": url}, "Image stored successfully")
}

// refFromQuery builds the reference instant for day resolution. The client
// passes its wall-clock moment as RFC3339 in "ref" and, optionally, its IANA
// zone in "timezone" so daylight saving transitions resolve correctly.
func refFromQuery(c echo.Context) (time.Time, error) {
	ref := time.Now()
	if raw := c.QueryParam("ref"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return time.Time{}, errors.New("ref must be an RFC3339 timestamp")
		}
		ref = parsed
	}

	if tz := c.QueryParam("timezone"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return time.Time{}, errors.New("timezone must be a valid IANA zone name")
		}
		ref = ref.In(loc)
	}

	return ref, nil
}
