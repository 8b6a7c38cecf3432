package wechat

import "testing"

func TestGenerateState(t *testing.T) {
	a, err := GenerateState()
	if err != nil {
		t.Fatalf("GenerateState() error = %v", err)
	}
	if len(a) != 43 {
		t.Errorf("state length = %d, want 43", len(a))
	}

	b, err := GenerateState()
	if err != nil {
		t.Fatalf("GenerateState() error = %v", err)
	}
	if a == b {
		t.Error("two generated states are identical")
	}
}

func TestValidateState(t *testing.T) {
	tests := []struct {
		name     string
		expected string
		actual   string
		wantErr  bool
	}{
		{name: "match", expected: "s1", actual: "s1", wantErr: false},
		{name: "mismatch", expected: "s1", actual: "s2", wantErr: true},
		{name: "empty expected", expected: "", actual: "s1", wantErr: true},
		{name: "empty actual", expected: "s1", actual: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateState(tt.expected, tt.actual)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateState() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !IsKind(err, KindMissingCode) {
				t.Errorf("ValidateState() kind = %q", KindOf(err))
			}
		})
	}
}
