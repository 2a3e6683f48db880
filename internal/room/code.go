// internal/room/code.go
package room

import "strings"

// codeAlphabet excludes visually confusable characters (0/O, 1/I) so codes
// survive being read aloud or typed from a screen.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// codeLength is the fixed room code length.
const codeLength = 6

// NormalizeCode canonicalizes a caller-supplied code. Matching is
// case-insensitive, so every entry point runs codes through here first.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// randomCode draws a fresh candidate code. Uniqueness is the caller's
// problem (collision-checked against the store, regenerating on hits).
func (s *Service) randomCode() string {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()

	b := make([]byte, codeLength)
	for i := range b {
		b[i] = codeAlphabet[s.rng.Intn(len(codeAlphabet))]
	}
	return string(b)
}
