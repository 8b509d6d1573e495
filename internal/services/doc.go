// Package services defines the shared error taxonomy used across rename
// stages. Sentinel markers let callers classify failures without string
// matching.
package services
