// Package services implements the café's core operations: the user
// registry with its session lifecycle and billing, the registration
// password policy, and the admin gate. The interactive CLI is a thin caller
// of this package and can be replaced without touching it.
package services
