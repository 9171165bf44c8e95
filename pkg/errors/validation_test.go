package errors

import "testing"

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"valid relative path", "data/small/random_1k.txt", false},
		{"valid bare filename", "chain.txt", false},
		{"valid absolute path", "/tmp/graphs/grid.txt", false},
		{"empty", "", true},
		{"parent traversal", "data/../../etc/passwd", true},
		{"null byte", "data/\x00evil.txt", true},
		{"newline", "data/a\nb.txt", true},
		{"dots in filename ok", "data/graph.v2.txt", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestValidateEntryName(t *testing.T) {
	tests := []struct {
		name    string
		entry   string
		wantErr bool
	}{
		{"valid", "random_1k", false},
		{"valid dashed", "scale-free-100k", false},
		{"empty", "", true},
		{"path separator", "small/random", true},
		{"whitespace", "random 1k", true},
		{"too long", string(make([]byte, 129)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEntryName(tt.entry)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEntryName(%q) error = %v, wantErr %v", tt.entry, err, tt.wantErr)
			}
		})
	}
}
