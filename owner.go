package winbridge

// Owner is implemented by window types that can report their current raw
// window handle.
//
// Implementing Owner is a promise the compiler cannot check. Every
// implementation takes on the following obligations:
//
//   - Any non-zero field of the returned payload must be a genuinely valid,
//     live handle in the current process at the time of the call. Fields the
//     implementation cannot supply may be left at zero, and consumers must
//     tolerate zero fields, deriving what they need from the fields that are
//     set where the platform allows it.
//
//   - Repeated calls against the same live window must return identical
//     values, unless a platform event (surface recreation, for example) has
//     invalidated the previous handle. After such an event the next call
//     must return the replacement value.
//
//   - If the platform restricts handle queries to a particular thread, the
//     implementation must document that restriction; this package does not
//     enforce it.
//
// A violated obligation is a programmer error, not a reportable one. There
// is no runtime check here or anywhere downstream; consumers hand these
// values straight to OS and graphics APIs, which fail unpredictably on stale
// or forged handles. Implementations are kept honest by review, which is why
// the contract requires an explicit opt-in: a type cannot satisfy Owner by
// merely happening to have a RawWindowHandle method. It must also declare
// ConfirmHandleInvariants, a no-op whose only purpose is to be written
// deliberately and found in an audit.
type Owner interface {
	// RawWindowHandle returns the current handle for the window. It is a
	// pure observer of the window's identity, though the underlying OS
	// query may have side effects such as lazy handle creation. The
	// receiver must denote a currently-live window.
	RawWindowHandle() Handle

	// ConfirmHandleInvariants does nothing at runtime. Declaring it is
	// the implementer's explicit acknowledgment of the Owner contract
	// documented above.
	ConfirmHandleInvariants()
}
