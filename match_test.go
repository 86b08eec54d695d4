package lznt1

import "testing"

func TestFindMatch(t *testing.T) {
	tests := []struct {
		name       string
		history    string
		target     string
		maxLen     int
		wantOffset int
		wantLength int
	}{
		{
			name:    "empty-history",
			history: "", target: "abcabc", maxLen: 6,
			wantOffset: 0, wantLength: 0,
		},
		{
			name:    "empty-target",
			history: "abcdef", target: "", maxLen: 6,
			wantOffset: 0, wantLength: 0,
		},
		{
			name:    "no-occurrence",
			history: "abcdef", target: "xyzxyz", maxLen: 6,
			wantOffset: 0, wantLength: 0,
		},
		{
			name:    "below-minimum-length",
			history: "xa", target: "xaz", maxLen: 3,
			wantOffset: 0, wantLength: 0,
		},
		{
			name:    "plain-match",
			history: "abcdef", target: "cdefxx", maxLen: 6,
			wantOffset: 4, wantLength: 4,
		},
		{
			name:    "rightmost-occurrence-wins",
			history: "abcXabc", target: "abcd", maxLen: 4,
			wantOffset: 3, wantLength: 3,
		},
		{
			name:    "run-length-extension",
			history: "ab", target: "ababab", maxLen: 6,
			wantOffset: 2, wantLength: 6,
		},
		{
			name:    "run-length-capped-by-max-len",
			history: "ab", target: "ababab", maxLen: 4,
			wantOffset: 2, wantLength: 4,
		},
		{
			name:    "run-length-single-byte-period",
			history: "z", target: "zzzzzzzz", maxLen: 8,
			wantOffset: 1, wantLength: 8,
		},
		{
			name:    "first-candidate-keeps-ties",
			history: "cabab", target: "ababx", maxLen: 5,
			wantOffset: 2, wantLength: 4,
		},
		{
			name:    "max-len-beyond-target",
			history: "abc", target: "abc", maxLen: 100,
			wantOffset: 3, wantLength: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, length := findMatch([]byte(tt.history), []byte(tt.target), tt.maxLen)
			if offset != tt.wantOffset || length != tt.wantLength {
				t.Fatalf("findMatch(%q, %q, %d) = (%d, %d), want (%d, %d)",
					tt.history, tt.target, tt.maxLen, offset, length, tt.wantOffset, tt.wantLength)
			}
		})
	}
}

// The matcher contract feeds the encoder directly: whatever it returns must
// decode back to the target prefix, including the cyclic case. Cross-check a
// handful of awkward periodic inputs against a straight reference expansion.
func TestFindMatch_ResultDecodesToTarget(t *testing.T) {
	cases := []struct {
		history string
		target  string
	}{
		{history: "abcab", target: "abababab"},
		{history: "xxyxx", target: "xxxxxxxx"},
		{history: "Hello world!", target: "Hello world!Hello wor"},
		{history: "aabaab", target: "aabaabaabaab"},
	}

	for _, tc := range cases {
		offset, length := findMatch([]byte(tc.history), []byte(tc.target), len(tc.target))
		if length == 0 {
			continue
		}

		buf := appendBackRef([]byte(tc.history), offset, length)
		got := string(buf[len(tc.history):])

		if got != tc.target[:length] {
			t.Errorf("history=%q target=%q: (%d, %d) decodes to %q, want %q",
				tc.history, tc.target, offset, length, got, tc.target[:length])
		}
	}
}
