// Package server exposes the signature studio over HTTP: a JSON API for
// rendering, vCard export, image processing and per-session state, plus a
// preview page that wraps the rendered fragment in a minimal document.
package server
