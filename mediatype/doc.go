// Package mediatype parses media type strings such as those found in the first column of a
// mime.types file or in a Content-Type header.
// The parameter grammar follows the token and quoted-string rules of [RFC 2045] section 5.1.
// Parameter continuations and charset encodings from [RFC 2231] are not supported.
//
// [RFC 2045]: https://www.rfc-editor.org/rfc/rfc2045#section-5.1
// [RFC 2231]: https://www.rfc-editor.org/rfc/rfc2231
package mediatype
