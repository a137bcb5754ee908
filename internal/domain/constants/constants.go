// Package constants defines shared domain-level constants.
package constants

// Runtime environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub provider types.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Firestore collection names.
const (
	CollectionOrders     = "orders"
	CollectionCustomers  = "customers"
	CollectionStaff      = "staff"
	CollectionBanners    = "banners"
	CollectionCategories = "categories"
	CollectionProducts   = "products"
	CollectionLoyalty    = "loyaltyRules"
)

// LoyaltySettingsDocID is the fixed document ID of the tenant-wide
// loyalty settings singleton.
const LoyaltySettingsDocID = "main"
