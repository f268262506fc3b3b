// Package mediaurl turns media and document references produced by the
// content layer into URLs that can be dropped straight into img, video,
// audio, iframe and anchor attributes.
//
// Every function here is a pure transform over its inputs and an immutable
// Mode captured once at startup. Nothing performs I/O and nothing returns an
// error: a reference that cannot be resolved comes back as the best string
// that could be built, with Warnings recorded on the Result for callers that
// want to log them.
//
// Resolution runs in this order:
//
//	classify → broken-backend substitution → endpoint rewrite → base URL → cache tag
//
// Two path families are understood. Media have a static passthrough form
// (/media/<filename>) and a proxied form (/api/media/file/<filename>).
// Documents share the static form but are proxied under
// /api/documents/file/<filename>.
package mediaurl
