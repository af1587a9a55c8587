package htmx

import "net/http"

// IsHxRequest reports whether the request was issued by htmx.
func IsHxRequest(r *http.Request) bool {
	return r.Header.Get("Hx-Request") == "true"
}

// IsBoosted reports whether the request came from an hx-boost element.
func IsBoosted(r *http.Request) bool {
	return r.Header.Get("Hx-Boosted") == "true"
}

// Target returns the id of the element targeted by the swap, if any.
func Target(r *http.Request) string {
	return r.Header.Get("Hx-Target")
}

// PushURL instructs htmx to push the given URL into the history stack.
func PushURL(w http.ResponseWriter, url string) {
	w.Header().Set("Hx-Push-Url", url)
}

// Redirect instructs htmx to perform a client-side redirect.
func Redirect(w http.ResponseWriter, url string) {
	w.Header().Set("Hx-Redirect", url)
}
