package delimited

import "testing"

func TestSniffDelimiter(t *testing.T) {
	tests := []struct {
		name   string
		sample string
		want   rune
	}{
		{
			name:   "comma",
			sample: "a,b,c\n1,2,3\n4,5,6\n",
			want:   ',',
		},
		{
			name:   "tab",
			sample: "a\tb\tc\n1\t2\t3\n4\t5\t6\n",
			want:   '\t',
		},
		{
			name:   "semicolon",
			sample: "a;b;c\n1;2;3\n4;5;6\n",
			want:   ';',
		},
		{
			name:   "pipe",
			sample: "a|b|c\n1|2|3\n4|5|6\n",
			want:   '|',
		},
		{
			name: "semicolon beats commas in free text",
			// Commas appear but with inconsistent per-line counts; the
			// semicolon count is identical on every line.
			sample: "name;notes\nalice;likes a, b, and c\nbob;plain\ncarol;x, y\n",
			want:   ';',
		},
		{
			name:   "no signal falls back to comma",
			sample: "one\ntwo\nthree\n",
			want:   ',',
		},
		{
			name:   "empty input falls back to comma",
			sample: "",
			want:   ',',
		},
		{
			name:   "blank lines ignored",
			sample: "\n\na|b\n\n1|2\n",
			want:   '|',
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SniffDelimiter(tt.sample); got != tt.want {
				t.Errorf("SniffDelimiter = %q, want %q", got, tt.want)
			}
		})
	}
}
