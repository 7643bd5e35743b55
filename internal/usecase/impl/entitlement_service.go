// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"diary/config"
	deliverycontext "diary/internal/delivery/context"
	"diary/internal/domain/entity"
	domainerrors "diary/internal/domain/errors"
	"diary/internal/domain/repository"
	"diary/internal/domain/service"
	"diary/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// recordOutcome is the result of loading the backend subscription record.
// A missing record and a failed lookup are different states: the first is a
// definite "no subscription", the second leaves the record unknown.
type recordOutcome struct {
	record *entity.SubscriptionRecord
	known  bool
}

// receiptOutcome is the result of querying the billing subsystem. known is
// false when the query timed out or errored; an empty slice with known=true
// is a definite "no purchases".
type receiptOutcome struct {
	receipts []*entity.PurchaseReceipt
	known    bool
}

type entitlementService struct {
	subscriptionRepo repository.SubscriptionRepository
	receiptRepo      repository.ReceiptRepository
	billing          service.BillingGateway
	cache            service.EntitlementCache
	publisher        service.EventPublisher
	receiptTimeout   time.Duration
	logger           *slog.Logger
}

// EntitlementServiceParams holds dependencies for EntitlementService, injected by Fx.
type EntitlementServiceParams struct {
	fx.In

	SubscriptionRepo repository.SubscriptionRepository
	ReceiptRepo      repository.ReceiptRepository
	Billing          service.BillingGateway
	Cache            service.EntitlementCache
	Publisher        service.EventPublisher `optional:"true"`
	Config           *config.Config
	Logger           *slog.Logger
}

// NewEntitlementService is the constructor for entitlementService.
func NewEntitlementService(params EntitlementServiceParams) usecase.EntitlementUsecase {
	receiptTimeout := config.DefaultReceiptTimeout
	if params.Config != nil && params.Config.Billing != nil && params.Config.Billing.ReceiptTimeout > 0 {
		receiptTimeout = params.Config.Billing.ReceiptTimeout
	}

	return &entitlementService{
		subscriptionRepo: params.SubscriptionRepo,
		receiptRepo:      params.ReceiptRepo,
		billing:          params.Billing,
		cache:            params.Cache,
		publisher:        params.Publisher,
		receiptTimeout:   receiptTimeout,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *entitlementService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Resolve determines the user's entitlement verdict. It never returns an
// error: lookups may fail or hang, and the caller is a mobile client that
// needs a yes/no/pending answer either way.
//
// The verdict is computed from two independent sources, each of which can be
// unavailable:
//
//   - the backend subscription record (trial or active status)
//   - the store receipts for the configured subscription product
//
// Receipts are the source of truth when they disagree with the record: the
// record is upserted to match them, and the receipt-derived boolean is what
// gets cached for offline fallback. When receipts are unknown (timeout or
// store error) the record alone decides, and nothing is reconciled or
// cached. Only when both sources are unknown does the last cached value
// apply; with no cache either, the verdict is Pending.
func (srv *entitlementService) Resolve(ctx context.Context, userID uuid.UUID) entity.Verdict {
	if userID == uuid.Nil {
		return entity.VerdictNotSubscribed
	}

	record := srv.loadRecord(ctx, userID)
	receipts := srv.loadReceipts(ctx, userID)

	if !receipts.known {
		if !record.known {
			return srv.fallbackToCache(ctx, userID)
		}

		// The record alone decides. The cache is not updated: a verdict
		// computed without receipt confirmation is not worth remembering.
		return srv.verdictFromRecord(record.record)
	}

	hasActive := srv.hasActiveSubscriptionReceipt(receipts.receipts)

	if record.known {
		srv.reconcile(ctx, userID, record.record, hasActive)
	}

	// The verdict uses the record as fetched; a downgrade written by
	// reconcile lands on the next resolve. The cache stores only the
	// receipt answer, never the record's, so an expired record can't keep
	// granting access offline.
	verdict := entity.VerdictFor(hasActive || srv.recordGrantsAccess(record.record))

	if err := srv.cache.Set(ctx, userID, hasActive); err != nil {
		srv.log(ctx).Warn("Failed to update entitlement cache", slog.Any("userID", userID), slog.Any("error", err))
	}

	return verdict
}

// RegisterPurchase stores a receipt reported by the client after checkout,
// activates the subscription record and returns the resulting verdict.
func (srv *entitlementService) RegisterPurchase(ctx context.Context, userID uuid.UUID, input *usecase.ReportReceiptInput) (entity.Verdict, error) {
	if userID == uuid.Nil {
		return entity.VerdictNotSubscribed, errors.Wrap(domainerrors.ErrValidationFailed, "missing user id")
	}
	if input == nil || input.TransactionID == "" {
		return entity.VerdictNotSubscribed, errors.Wrap(domainerrors.ErrReceiptInvalid, "missing transaction id")
	}
	if input.ProductID != srv.billing.SubscriptionProductID() {
		srv.log(ctx).Warn("Receipt for unknown product", slog.Any("userID", userID), slog.String("productID", input.ProductID))

		return entity.VerdictNotSubscribed, errors.Wrap(domainerrors.ErrReceiptInvalid, "unknown product")
	}

	purchasedAt := input.PurchasedAt
	if purchasedAt.IsZero() {
		purchasedAt = time.Now()
	}

	receipt := &entity.PurchaseReceipt{
		ID:            uuid.New(),
		UserID:        userID,
		ProductID:     input.ProductID,
		TransactionID: input.TransactionID,
		Platform:      input.Platform,
		Payload:       input.Payload,
		PurchasedAt:   purchasedAt,
	}

	if err := srv.receiptRepo.SaveReceipt(ctx, receipt); err != nil {
		if errors.Is(err, repository.ErrDuplicateReceipt) {
			// Replayed report after a flaky network. The purchase is already
			// on file, so just make sure the record reflects it.
			srv.log(ctx).Info("Duplicate receipt report", slog.Any("userID", userID), slog.String("transactionID", input.TransactionID))
		} else {
			return entity.VerdictNotSubscribed, errors.Wrap(err, "failed to save receipt")
		}
	}

	if err := srv.activateSubscription(ctx, userID); err != nil {
		return entity.VerdictNotSubscribed, err
	}

	if err := srv.cache.Set(ctx, userID, true); err != nil {
		srv.log(ctx).Warn("Failed to update entitlement cache", slog.Any("userID", userID), slog.Any("error", err))
	}

	srv.publishChange(ctx, userID, entity.VerdictSubscribed, "receipt")

	return entity.VerdictSubscribed, nil
}

// loadRecord fetches the backend subscription record. "No record" is a known
// outcome; only a failed query leaves the record unknown.
func (srv *entitlementService) loadRecord(ctx context.Context, userID uuid.UUID) recordOutcome {
	record, err := srv.subscriptionRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return recordOutcome{record: nil, known: true}
		}
		srv.log(ctx).Warn("Subscription record lookup failed", slog.Any("userID", userID), slog.Any("error", err))

		return recordOutcome{known: false}
	}

	return recordOutcome{record: record, known: true}
}

// loadReceipts queries the billing subsystem under the configured timeout.
// The query runs in its own goroutine because gateway implementations talk to
// the platform store and are allowed to hang well past any deadline.
func (srv *entitlementService) loadReceipts(ctx context.Context, userID uuid.UUID) receiptOutcome {
	type result struct {
		receipts []*entity.PurchaseReceipt
		err      error
	}

	queryCtx, cancel := context.WithTimeout(ctx, srv.receiptTimeout)
	defer cancel()

	resultCh := make(chan result, 1)
	go func() {
		receipts, err := srv.billing.AvailablePurchases(queryCtx, userID)
		resultCh <- result{receipts: receipts, err: err}
	}()

	select {
	case res := <-resultCh:
		if res.err != nil {
			srv.log(ctx).Warn("Billing query failed", slog.Any("userID", userID), slog.Any("error", res.err))

			return receiptOutcome{known: false}
		}

		return receiptOutcome{receipts: res.receipts, known: true}
	case <-queryCtx.Done():
		srv.log(ctx).Warn("Billing query timed out", slog.Any("userID", userID), slog.Duration("timeout", srv.receiptTimeout))

		return receiptOutcome{known: false}
	}
}

// hasActiveSubscriptionReceipt reports whether any receipt covers the
// configured subscription product.
func (srv *entitlementService) hasActiveSubscriptionReceipt(receipts []*entity.PurchaseReceipt) bool {
	productID := srv.billing.SubscriptionProductID()
	for _, receipt := range receipts {
		if receipt != nil && receipt.ProductID == productID {
			return true
		}
	}

	return false
}

// recordGrantsAccess reports whether the backend record alone grants access.
func (srv *entitlementService) recordGrantsAccess(record *entity.SubscriptionRecord) bool {
	if record == nil {
		return false
	}

	return record.Status == entity.SubscriptionStatusTrial || record.Status == entity.SubscriptionStatusActive
}

// verdictFromRecord maps a known backend record to a verdict when receipts
// are unavailable.
func (srv *entitlementService) verdictFromRecord(record *entity.SubscriptionRecord) entity.Verdict {
	return entity.VerdictFor(srv.recordGrantsAccess(record))
}

// reconcile pushes the backend record toward what the store receipts say.
// Receipts win in both directions: a receipt upgrades any record that is not
// already active (including a trial, which the purchase supersedes), and a
// definite "no purchases" deactivates an active record. A trial record with
// no receipt is left alone; trials are granted by the backend, not the store.
func (srv *entitlementService) reconcile(ctx context.Context, userID uuid.UUID, record *entity.SubscriptionRecord, hasActive bool) {
	now := time.Now()

	switch {
	case hasActive && (record == nil || record.Status != entity.SubscriptionStatusActive):
		update := &entity.SubscriptionRecord{
			UserID:    userID,
			Status:    entity.SubscriptionStatusActive,
			StartDate: &now,
		}
		if err := srv.subscriptionRepo.Upsert(ctx, update); err != nil {
			srv.log(ctx).Warn("Failed to activate subscription record", slog.Any("userID", userID), slog.Any("error", err))

			return
		}
		srv.log(ctx).Info("Subscription record activated from receipt", slog.Any("userID", userID))
		srv.publishChange(ctx, userID, entity.VerdictSubscribed, "reconciliation")

	case !hasActive && record != nil && record.Status == entity.SubscriptionStatusActive:
		update := &entity.SubscriptionRecord{
			UserID:  userID,
			Status:  entity.SubscriptionStatusInactive,
			EndDate: &now,
		}
		if err := srv.subscriptionRepo.Upsert(ctx, update); err != nil {
			srv.log(ctx).Warn("Failed to deactivate subscription record", slog.Any("userID", userID), slog.Any("error", err))

			return
		}
		srv.log(ctx).Info("Subscription record deactivated, no matching receipt", slog.Any("userID", userID))
		srv.publishChange(ctx, userID, entity.VerdictNotSubscribed, "reconciliation")
	}
}

// fallbackToCache is the last resort when neither the record nor the store
// answered. An absent or unreadable cache yields Pending, never a guess.
func (srv *entitlementService) fallbackToCache(ctx context.Context, userID uuid.UUID) entity.Verdict {
	subscribed, ok, err := srv.cache.Get(ctx, userID)
	if err != nil {
		srv.log(ctx).Warn("Entitlement cache read failed", slog.Any("userID", userID), slog.Any("error", err))

		return entity.VerdictPending
	}
	if !ok {
		return entity.VerdictPending
	}

	srv.log(ctx).Info("Entitlement resolved from cache", slog.Any("userID", userID), slog.Bool("subscribed", subscribed))

	return entity.VerdictFor(subscribed)
}

// activateSubscription upserts the record to active with the current time as
// the start date.
func (srv *entitlementService) activateSubscription(ctx context.Context, userID uuid.UUID) error {
	now := time.Now()
	update := &entity.SubscriptionRecord{
		UserID:    userID,
		Status:    entity.SubscriptionStatusActive,
		StartDate: &now,
	}

	if err := srv.subscriptionRepo.Upsert(ctx, update); err != nil {
		return errors.Wrap(err, "failed to activate subscription record")
	}

	return nil
}

// publishChange emits an entitlement change event for async consumers. Event
// delivery is best-effort and never affects the verdict.
func (srv *entitlementService) publishChange(ctx context.Context, userID uuid.UUID, verdict entity.Verdict, source string) {
	if srv.publisher == nil {
		return
	}

	event := &service.EntitlementEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		UserID:    userID.String(),
		Verdict:   string(verdict),
		ProductID: srv.billing.SubscriptionProductID(),
		Source:    source,
	}

	if err := srv.publisher.PublishEntitlementEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish entitlement event", slog.Any("userID", userID), slog.Any("error", err))
	}
}
