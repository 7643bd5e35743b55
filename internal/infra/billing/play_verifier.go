package billing

import (
	"context"
	"net/http"

	"diary/config"
	"diary/internal/domain/entity"

	"github.com/pkg/errors"
	"google.golang.org/api/androidpublisher/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// Subscription states from the Play Developer API that still grant access.
// A grace-period subscription keeps its entitlement while the store retries
// the payment.
const (
	subscriptionStateActive      = "SUBSCRIPTION_STATE_ACTIVE"
	subscriptionStateGracePeriod = "SUBSCRIPTION_STATE_IN_GRACE_PERIOD"
)

// playVerifier verifies Android purchase tokens through the Play Developer API.
type playVerifier struct {
	service     *androidpublisher.Service
	packageName string
}

func newPlayVerifier(ctx context.Context, cfg *config.BillingConfig) (*playVerifier, error) {
	if cfg.PackageName == "" {
		return nil, errors.New("billing package name is required for receipt verification")
	}

	opts := []option.ClientOption{}
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	svc, err := androidpublisher.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create androidpublisher service")
	}

	return &playVerifier{
		service:     svc,
		packageName: cfg.PackageName,
	}, nil
}

// verify checks the receipt's purchase token with the store. A token the store
// no longer knows means the receipt is invalid; any other failure means the
// outcome is unknown and is returned as an error.
func (v *playVerifier) verify(ctx context.Context, receipt *entity.PurchaseReceipt) (bool, error) {
	sub, err := v.service.Purchases.Subscriptionsv2.
		Get(v.packageName, receipt.Payload).
		Context(ctx).
		Do()
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && (apiErr.Code == http.StatusNotFound || apiErr.Code == http.StatusGone) {
			return false, nil
		}

		return false, errors.Wrap(err, "play developer api call failed")
	}

	switch sub.SubscriptionState {
	case subscriptionStateActive, subscriptionStateGracePeriod:
		return true, nil
	default:
		return false, nil
	}
}
