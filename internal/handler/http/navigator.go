package http

import (
	"net/http"
)

// redirectNavigator adapts the views' Navigator collaborator to an HTTP
// exchange. Only the first redirect wins; later calls are ignored because
// the response is already written.
type redirectNavigator struct {
	w    http.ResponseWriter
	r    *http.Request
	done bool
}

func newRedirectNavigator(w http.ResponseWriter, r *http.Request) *redirectNavigator {
	return &redirectNavigator{w: w, r: r}
}

func (n *redirectNavigator) Redirect(path string) {
	if n.done {
		return
	}
	n.done = true
	http.Redirect(n.w, n.r, path, http.StatusSeeOther)
}

func (n *redirectNavigator) Back() {
	ref := n.r.Referer()
	if ref == "" {
		ref = "/"
	}
	n.Redirect(ref)
}

// Redirected reports whether a redirect response was written.
func (n *redirectNavigator) Redirected() bool { return n.done }
