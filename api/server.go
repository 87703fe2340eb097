package api

import (
	"log"
	"net/http"
)

// Api serves the static viewer client pages.
type Api struct {
	addr string
}

// NewApi creates an Api that listens on addr.
func NewApi(addr string) *Api {
	a := new(Api)
	a.addr = addr
	return a
}

// Serve blocks, serving the viewer client.
func (a *Api) Serve() {
	fs := http.FileServer(http.Dir("client/dist"))
	http.Handle("/", fs)

	log.Printf("Listening on %s...", a.addr)
	http.ListenAndServe(a.addr, nil)
}
