// Package sloghandler provides an adapter from handler.Handler to
// log/slog.Handler, so code written against the standard library's
// slog front end prints through the qlog pipeline.
//
// Attributes are flattened into the message as trailing key=value pairs;
// groups become dotted key prefixes.
package sloghandler
