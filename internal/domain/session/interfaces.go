package session

// Observer receives session lifecycle events. Implementations must be safe
// for concurrent use.
type Observer interface {
	SessionOpened()
	SessionClosed(reason CloseReason)
	CarouselAdvanced()
}

type nopObserver struct{}

func (nopObserver) SessionOpened()            {}
func (nopObserver) SessionClosed(CloseReason) {}
func (nopObserver) CarouselAdvanced()         {}
