// Package docs implements filesystem discovery and parsing of documentation
// sources. Markdown and AsciiDoc files in a flat content directory become
// ordered Document values; the directory listing is re-read on every call so
// the filesystem stays the single source of truth.
package docs
