package grid

import "bytes"

// Decode removes the escaping from raw cell text: "\|" becomes "|" and "\\"
// becomes "\". Any other backslash is kept. The input is not modified.
func Decode(raw []byte) []byte {
	if bytes.IndexByte(raw, '\\') < 0 {
		return raw
	}

	out := make([]byte, 0, len(raw))
	for idx := 0; idx < len(raw); idx++ {
		char := raw[idx]
		if char == '\\' && idx+1 < len(raw) && (raw[idx+1] == '|' || raw[idx+1] == '\\') {
			idx++
			char = raw[idx]
		}
		out = append(out, char)
	}
	return out
}

// Text returns the decoded text spanned by tok.
func Text(source []byte, tok *Token) string {
	return string(Decode(Slice(source, tok)))
}
