//go:build !linux

package platform

// New returns ErrUnsupported: only the X11 backend exists today. The
// winbridge contract types themselves compile everywhere; it is only this
// inspector plumbing that is linux-only.
func New() (Backend, error) {
	return nil, ErrUnsupported
}
