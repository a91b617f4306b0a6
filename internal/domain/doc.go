// Package domain defines the plain types and contracts shared across the app:
// the fixed-width Digest, the digest function signature and the collaborator
// interfaces consumed by the candidate engine and the matcher.
package domain
