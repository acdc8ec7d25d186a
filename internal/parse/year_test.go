package parse

import "testing"

func TestExtractYear(t *testing.T) {
	tests := []struct {
		name string
		key  string
		text string
		want string
	}{
		{
			name: "parenthesized year in text",
			key:  "",
			text: "N. Wiener (1948). Time, communication, and the nervous system.",
			want: "1948",
		},
		{
			name: "parenthesized year with month",
			key:  "",
			text: "Smith, J. (2008, March). Some article.",
			want: "2008",
		},
		{
			name: "text year outranks key apostrophe year",
			key:  "Wiener '48",
			text: "N. Wiener (1948). Time, communication, and the nervous system.",
			want: "1948",
		},
		{
			name: "standalone year at end of entry",
			key:  "",
			text: "Bonferroni, C. E. Teoria statistica delle classi, 1936.",
			want: "1936",
		},
		{
			name: "full date expression",
			key:  "",
			text: "Posted online (March 14, 2019).",
			want: "2019",
		},
		{
			name: "key two-digit year above pivot",
			key:  "Hill '79",
			text: "Hill, D. R. The Book of Knowledge.",
			want: "1979",
		},
		{
			name: "key two-digit year at or below pivot",
			key:  "Chen '20 A",
			text: "Chen, T. A simple framework.",
			want: "2020",
		},
		{
			name: "key four-digit year not expanded",
			key:  "Smith '2019",
			text: "Smith, J. Some title.",
			want: "2019",
		},
		{
			name: "curly apostrophe in key",
			key:  "Maaten ’08",
			text: "Van der Maaten, L.J.P. Visualizing data.",
			want: "2008",
		},
		{
			name: "no year anywhere",
			key:  "Euclid",
			text: "Euclid. Elements.",
			want: "",
		},
		{
			name: "empty inputs",
			key:  "",
			text: "",
			want: "",
		},
		{
			name: "volume digits are not years",
			key:  "",
			text: "Journal of Machine Learning Research. 9: 2579-2605.",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractYear(tt.key, tt.text)
			if got != tt.want {
				t.Errorf("ExtractYear(%q, %q) = %q, want %q", tt.key, tt.text, got, tt.want)
			}
		})
	}
}

func TestExpandTwoDigitYear(t *testing.T) {
	tests := []struct {
		yy   string
		want string
	}{
		{"79", "1979"},
		{"99", "1999"},
		{"51", "1951"},
		{"50", "2050"},
		{"20", "2020"},
		{"08", "2008"},
		{"00", "2000"},
	}

	for _, tt := range tests {
		if got := expandTwoDigitYear(tt.yy); got != tt.want {
			t.Errorf("expandTwoDigitYear(%q) = %q, want %q", tt.yy, got, tt.want)
		}
	}
}
