package frontmatter

import "testing"

func TestExtractPassword(t *testing.T) {
	tests := []struct {
		name         string
		header       string
		wantHeader   string
		wantPassword string
		wantOK       bool
	}{
		{
			name:         "plain value",
			header:       "---\nsecret: true\npassword: hunter2\n---\n",
			wantHeader:   "---\nsecret: true\n---\n",
			wantPassword: "hunter2",
			wantOK:       true,
		},
		{
			name:         "double quoted value",
			header:       "---\npassword: \"correct horse\"\nsecret: true\n---\n",
			wantHeader:   "---\nsecret: true\n---\n",
			wantPassword: "correct horse",
			wantOK:       true,
		},
		{
			name:         "single quoted value with trailing spaces",
			header:       "---\npassword:   'p@ss'   \n---\n",
			wantHeader:   "---\n---\n",
			wantPassword: "p@ss",
			wantOK:       true,
		},
		{
			name:         "no space after colon",
			header:       "---\npassword:abc\n---\n",
			wantHeader:   "---\n---\n",
			wantPassword: "abc",
			wantOK:       true,
		},
		{
			name:         "first match wins and all lines are removed",
			header:       "---\npassword: first\ntitle: t\npassword: second\n---\n",
			wantHeader:   "---\ntitle: t\n---\n",
			wantPassword: "first",
			wantOK:       true,
		},
		{
			name:         "crlf line",
			header:       "---\r\npassword: pw\r\nsecret: true\r\n---\r\n",
			wantHeader:   "---\r\nsecret: true\r\n---\r\n",
			wantPassword: "pw",
			wantOK:       true,
		},
		{
			name:       "absent",
			header:     "---\nsecret: true\n---\n",
			wantHeader: "---\nsecret: true\n---\n",
		},
		{
			name:       "indented key is not a top-level field",
			header:     "---\nmeta:\n  password: nested\n---\n",
			wantHeader: "---\nmeta:\n  password: nested\n---\n",
		},
		{
			name:       "blank value is stripped but yields no password",
			header:     "---\npassword:   \nsecret: true\n---\n",
			wantHeader: "---\nsecret: true\n---\n",
		},
		{
			name:       "key without value is left alone",
			header:     "---\npassword:\n---\n",
			wantHeader: "---\npassword:\n---\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header, password, ok := ExtractPassword(tt.header)
			if header != tt.wantHeader {
				t.Errorf("header = %q, want %q", header, tt.wantHeader)
			}
			if password != tt.wantPassword {
				t.Errorf("password = %q, want %q", password, tt.wantPassword)
			}
			if ok != tt.wantOK {
				t.Errorf("ok = %t, want %t", ok, tt.wantOK)
			}
		})
	}
}
