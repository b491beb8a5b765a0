package dialplan

import "testing"

func TestSuggestKeyword(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
		ok    bool
	}{
		{
			name:  "omission typo exten",
			token: "exen",
			want:  "exten",
			ok:    true,
		},
		{
			name:  "omission typo switch",
			token: "swich",
			want:  "switch",
			ok:    true,
		},
		{
			name:  "omission typo include",
			token: "inlude",
			want:  "include",
			ok:    true,
		},
		{
			name:  "exact keyword",
			token: "exten",
			want:  "exten",
			ok:    true,
		},
		{
			name:  "uppercase is folded",
			token: "SAME",
			want:  "same",
			ok:    true,
		},
		{
			name:  "glued arrow is truncated away",
			token: "exten=>s,1,NoOp()",
			want:  "exten",
			ok:    true,
		},
		{
			name:  "too short",
			token: "ex",
			ok:    false,
		},
		{
			name:  "no resemblance",
			token: "zzz",
			ok:    false,
		},
		{
			name:  "empty",
			token: "",
			ok:    false,
		},
		{
			name:  "leading non-letter yields nothing",
			token: "123abc",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := suggestKeyword(tt.token)
			if ok != tt.ok {
				t.Fatalf("suggestKeyword(%q) ok = %v, want %v",
					tt.token, ok, tt.ok)
			}

			if ok && got != tt.want {
				t.Errorf("suggestKeyword(%q) = %q, want %q",
					tt.token, got, tt.want)
			}
		})
	}
}
