// Package studio coordinates signature rendering: it normalises the input,
// resolves the template/size selection through a theme selector and hands
// the result to the named renderer.
package studio
