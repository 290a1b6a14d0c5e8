//go:build !windows

package transcode

// WChar is the width of wchar_t on this platform
type WChar = uint32

const wcharBits = 32
