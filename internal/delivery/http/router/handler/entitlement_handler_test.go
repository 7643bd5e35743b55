package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"diary/internal/delivery/http/middleware"
	"diary/internal/delivery/http/validator"
	"diary/internal/domain/entity"
	mockUsecase "diary/internal/mocks/usecase"
	"diary/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newEntitlementTestContext(t *testing.T, method, body string) (echo.Context, *httptest.ResponseRecorder, *mockUsecase.MockEntitlementUsecase, *EntitlementHandler) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, "/entitlement", reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	uc := mockUsecase.NewMockEntitlementUsecase(t)
	h := &EntitlementHandler{
		entitlementUC: uc,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	return c, rec, uc, h
}

func TestEntitlementHandler_Resolve_ReturnsVerdict(t *testing.T) {
	c, rec, uc, h := newEntitlementTestContext(t, http.MethodGet, "")
	userID := uuid.New()
	c.Set(middleware.ContextKeyUserID, userID)

	uc.EXPECT().Resolve(mock.Anything, userID).Return(entity.VerdictSubscribed).Once()

	require.NoError(t, h.Resolve(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"verdict":"subscribed"`)
}

func TestEntitlementHandler_Resolve_MissingAuthContext(t *testing.T) {
	c, rec, _, h := newEntitlementTestContext(t, http.MethodGet, "")

	require.NoError(t, h.Resolve(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestEntitlementHandler_ReportReceipt_RecordsPurchase(t *testing.T) {
	body := `{
		"product_id": "diary.premium.monthly",
		"transaction_id": "txn-100",
		"platform": "android",
		"payload": "opaque-token",
		"purchased_at": "2025-06-01T10:00:00Z"
	}`
	c, rec, uc, h := newEntitlementTestContext(t, http.MethodPost, body)
	userID := uuid.New()
	c.Set(middleware.ContextKeyUserID, userID)

	uc.EXPECT().
		RegisterPurchase(mock.Anything, userID, mock.MatchedBy(func(input *usecase.ReportReceiptInput) bool {
			return input.TransactionID == "txn-100" && input.ProductID == "diary.premium.monthly"
		})).
		Return(entity.VerdictSubscribed, nil).
		Once()

	require.NoError(t, h.ReportReceipt(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"verdict":"subscribed"`)
}

func TestEntitlementHandler_ReportReceipt_RejectsIncompletePayload(t *testing.T) {
	body := `{"product_id": "diary.premium.monthly"}`
	c, rec, _, h := newEntitlementTestContext(t, http.MethodPost, body)
	c.Set(middleware.ContextKeyUserID, uuid.New())

	require.NoError(t, h.ReportReceipt(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
