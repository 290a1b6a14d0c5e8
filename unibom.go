// Package unibom detects the Unicode encoding of a byte buffer from its
// byte order mark, and decodes it into a canonical UTF-32 sequence.
//
//	text, err := unibom.DetectAndDecode(buf)
//
// Conversions between the individual formats live in the transcode
// package.
package unibom

const Version = "0.1.0"
