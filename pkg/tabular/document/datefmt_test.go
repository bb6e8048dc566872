package document

import "testing"

func TestIsBuiltinDateFormat(t *testing.T) {
	dateIDs := []int{14, 15, 16, 17, 18, 19, 20, 21, 22, 27, 30, 36, 45, 46, 47, 50, 57, 58}
	for _, id := range dateIDs {
		if !isBuiltinDateFormat(id) {
			t.Errorf("isBuiltinDateFormat(%d) = false, expected true", id)
		}
	}

	otherIDs := []int{0, 1, 2, 4, 9, 10, 11, 12, 13, 23, 37, 44, 48, 49, 59, 164}
	for _, id := range otherIDs {
		if isBuiltinDateFormat(id) {
			t.Errorf("isBuiltinDateFormat(%d) = true, expected false", id)
		}
	}
}

func TestIsDateFormatCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"yyyy-mm-dd", true},
		{"dd/mm/yyyy hh:mm", true},
		{"mm:ss", true},
		{"[h]:mm:ss", true},
		{"AM/PM h:mm", true},
		{"General", false},
		{"0.00", false},
		{"#,##0.00", false},
		{"[Red]0.00", false},
		{"\"dym\"0", false},
		{"\"Year \"yyyy", true},
		{"[$€-x]#,##0.00", false},
		{"0.00\\d", false},
		{"@", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := isDateFormatCode(tt.code); got != tt.want {
				t.Errorf("isDateFormatCode(%q) = %v, expected %v", tt.code, got, tt.want)
			}
		})
	}
}
