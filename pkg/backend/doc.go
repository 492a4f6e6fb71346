/*
Package backend defines the contract between the markup engine and the
style-rendering implementations it drives.

A Backend exposes three things:
  - a base Style that every directive chain starts from
  - basic styles, selected by bare name (red, bold, bgBlue, ...)
  - a closed set of typed operations (hex, rgb, keyword, ...) that take either
    a single string argument or a tuple of integers

Styles are immutable: every selection or operation returns a new Style and
leaves the receiver untouched, so one Backend can be shared across goroutines.

The default backend is the ANSI backend from pkg/backend/ansi configured from
the environment. It is built on first use; SetDefault replaces it.
*/
package backend
