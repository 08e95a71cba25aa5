// Package template defines the template engine seam used by the HTML
// renderer, so bundles can be rendered by any engine with named templates,
// filters and global data.
package template
