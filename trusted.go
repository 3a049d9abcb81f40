package winbridge

// Trusted wraps a Handle that arrived through a channel the type system
// cannot vouch for: reconstructed from raw integers, round-tripped through
// serialization, or received across an FFI boundary.
//
// Payload fields are public, so any code can assemble an arbitrary Handle
// value. An Owner implementation promises its values are genuine, but a bare
// Handle carries no such promise. AssertTrusted is the explicit bridge from
// one to the other: wrapping a value is the caller's assertion that it meets
// the Owner contract, after which the wrapper serves as an Owner anywhere
// one is required.
//
// A Trusted value is immutable and owns nothing; the native window or
// surface it names lives and dies with its real owner.
type Trusted struct {
	raw Handle
}

// AssertTrusted asserts that raw satisfies the invariants documented on
// Owner. The assertion is unchecked: nothing verifies the claim, and a false
// one surfaces later as an OS-level failure in whatever consumes the handle.
// Call it only with values whose provenance you can vouch for.
func AssertTrusted(raw Handle) Trusted {
	return Trusted{raw: raw}
}

var _ Owner = Trusted{}

// RawWindowHandle returns the wrapped value unchanged.
func (t Trusted) RawWindowHandle() Handle { return t.raw }

// ConfirmHandleInvariants acknowledges the Owner contract on behalf of
// whoever called AssertTrusted.
func (t Trusted) ConfirmHandleInvariants() {}
