// Package constants holds shared identifiers used across layers.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub provider types.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Entitlement event sources.
const (
	EntitlementSourceReceipt        = "receipt"
	EntitlementSourceReconciliation = "reconciliation"
)
