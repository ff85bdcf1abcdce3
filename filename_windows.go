//go:build windows

package filename

import (
	"encoding/binary"
	"unicode/utf16"

	"golang.org/x/sys/windows"
)

// fileNameInfoSize is the scratch buffer handed to the kernel. It must
// hold the FILE_NAME_INFO header plus the UTF-16 path following it.
const fileNameInfoSize = 4096

// fileName queries the handle for its FileNameInfo class: a 32-bit byte
// length followed by that many bytes of UTF-16 code units.
//
// The reported path is relative to its volume (`\Users\...` rather than
// `C:\Users\...`). That is how the kernel answers this information
// class, and it is returned as-is.
func fileName(fd uintptr) (string, error) {
	var buf [fileNameInfoSize]byte
	err := windows.GetFileInformationByHandleEx(
		windows.Handle(fd), windows.FileNameInfo, &buf[0], uint32(len(buf)))
	if err != nil {
		return "", err
	}
	return decodeFileNameInfo(buf[:]), nil
}

// decodeFileNameInfo extracts the path from a FILE_NAME_INFO buffer.
//
// The length field is authoritative but untrusted: it is clamped to the
// bytes actually present after the header and rounded down to a whole
// code unit, so a misreported length can never push the slice past the
// buffer. Null termination is not assumed.
func decodeFileNameInfo(buf []byte) string {
	const header = 4
	if len(buf) < header {
		return ""
	}

	n := int(binary.LittleEndian.Uint32(buf[:header]))
	if m := len(buf) - header; n > m {
		n = m
	}
	n &^= 1

	units := make([]uint16, n/2)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(buf[header+2*i:])
	}
	return string(utf16.Decode(units))
}
