// Package billing implements the billing gateway against stored store receipts,
// optionally verifying them through the Google Play Developer API.
package billing

import (
	"context"
	"log/slog"

	"diary/config"
	"diary/internal/domain/entity"
	"diary/internal/domain/repository"
	"diary/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// receiptVerifier checks a stored receipt against the platform store.
// An error means the verification outcome is unknown, not that the
// receipt is invalid.
type receiptVerifier interface {
	verify(ctx context.Context, receipt *entity.PurchaseReceipt) (bool, error)
}

// storeBillingGateway implements service.BillingGateway on top of the receipt
// store. Receipts reported by the client are replayed through the verifier on
// every entitlement check; a nil verifier trusts stored receipts as-is.
type storeBillingGateway struct {
	receiptRepo repository.ReceiptRepository
	verifier    receiptVerifier
	productID   string
	logger      *slog.Logger
}

// GatewayParams holds dependencies for the billing gateway, injected by Fx.
type GatewayParams struct {
	fx.In

	Ctx         context.Context
	Config      *config.Config
	Logger      *slog.Logger
	ReceiptRepo repository.ReceiptRepository
}

// NewBillingGateway creates the billing gateway from configuration. Receipt
// verification against the Play Developer API is enabled by
// billing.verifyReceipts; without it stored receipts are trusted (development
// mode).
func NewBillingGateway(params GatewayParams) (service.BillingGateway, error) {
	cfg := params.Config.Billing
	if cfg == nil || cfg.ProductID == "" {
		return nil, errors.New("billing product ID must be configured")
	}

	var verifier receiptVerifier
	if cfg.VerifyReceipts {
		playVerifier, err := newPlayVerifier(params.Ctx, cfg)
		if err != nil {
			return nil, err
		}
		verifier = playVerifier

		params.Logger.Info("Billing gateway verifying receipts via Play Developer API",
			slog.String("package_name", cfg.PackageName),
		)
	} else {
		params.Logger.Info("Billing gateway trusting stored receipts without remote verification")
	}

	return &storeBillingGateway{
		receiptRepo: params.ReceiptRepo,
		verifier:    verifier,
		productID:   cfg.ProductID,
		logger:      params.Logger,
	}, nil
}

// AvailablePurchases returns the user's currently valid purchase receipts.
// Any failure along the way means the purchase state is unknown, so the error
// is surfaced instead of an empty slice.
func (g *storeBillingGateway) AvailablePurchases(ctx context.Context, userID uuid.UUID) ([]*entity.PurchaseReceipt, error) {
	receipts, err := g.receiptRepo.FindReceiptsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load stored receipts")
	}

	if g.verifier == nil {
		return receipts, nil
	}

	valid := make([]*entity.PurchaseReceipt, 0, len(receipts))
	for _, receipt := range receipts {
		ok, err := g.verifier.verify(ctx, receipt)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to verify receipt %s", receipt.TransactionID)
		}
		if !ok {
			g.logger.Debug("Dropping receipt rejected by store verification",
				slog.String("transaction_id", receipt.TransactionID),
				slog.String("user_id", userID.String()),
			)

			continue
		}

		valid = append(valid, receipt)
	}

	return valid, nil
}

// SubscriptionProductID returns the configured subscription product identifier.
func (g *storeBillingGateway) SubscriptionProductID() string {
	return g.productID
}

// Module provides the billing FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewBillingGateway),
)
