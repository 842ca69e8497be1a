// Package mimetypes maps file extensions to media types using mime.types files.
//
// A mime.types file contains one media type per line, followed by the extensions that map to
// it. Lines starting with # are comments.
//
//	# MIME type			Extensions
//	text/html			html htm
//	image/svg+xml			svg svgz
//
// See the [Apache mime.types] file for a complete example.
//
// [Apache mime.types]: https://svn.apache.org/repos/asf/httpd/httpd/trunk/docs/conf/mime.types
package mimetypes
