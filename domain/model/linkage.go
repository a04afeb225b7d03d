package model

// LinkState is the state of the Vimeo account-linking flow. The flow exists to
// survive a full-page navigation to Vimeo's authorization page and back: the
// draft is parked server-side under a short-lived token before the redirect and
// restored when the callback lands.
type LinkState string

const (
	LinkUnauthenticated  LinkState = "unauthenticated"
	LinkRedirecting      LinkState = "redirecting"
	LinkCallbackReceived LinkState = "callbackReceived"
	LinkLinked           LinkState = "linked"
	LinkFailed           LinkState = "failed"
)
