// Package constants holds string values shared by config and infrastructure wiring.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// CountryCallingCode is the international prefix applied to mobile money numbers
const CountryCallingCode = "+265"
