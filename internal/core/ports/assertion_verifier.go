package ports

import "context"

// ExternalIdentity is the subject extracted from a verified federated
// identity assertion.
type ExternalIdentity struct {
	SubjectID     string
	Email         string
	EmailVerified bool
	Name          string
}

// AssertionVerifier validates a federated identity assertion and extracts
// the external subject. Implementations MUST verify the assertion's
// signature, issuer, and audience before trusting any embedded claim;
// decode-without-verify is an authentication bypass.
type AssertionVerifier interface {
	Verify(ctx context.Context, assertion string) (*ExternalIdentity, error)
}
