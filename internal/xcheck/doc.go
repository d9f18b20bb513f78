// Package xcheck holds tests that compare the decoder against
// golang.org/x/image/bmp. It lives apart from the decoder so that the
// x/image "bmp" format registration never shares a binary with the
// decoder's own tests.
package xcheck
