// Package environment names the deployment environment the service runs in
// and maps the short aliases accepted in APP_ENV onto it.
package environment

import "strings"

// Environment represents application environment.
type Environment string

const (
	// Development for development environment.
	Development Environment = "development"
	// Production for production environment.
	Production Environment = "production"
	// Staging for staging environment.
	Staging Environment = "staging"
)

// Parse converts a raw APP_ENV value into an Environment.
// Unknown and empty values fall back to Development so a missing variable
// never turns on production behaviour by accident.
func Parse(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(Production), "prod":
		return Production
	case string(Staging), "stage":
		return Staging
	default:
		return Development
	}
}

func (e Environment) IsProduction() bool  { return e == Production }
func (e Environment) IsStaging() bool     { return e == Staging }
func (e Environment) IsDevelopment() bool { return e == Development }

func (e Environment) String() string { return string(e) }
