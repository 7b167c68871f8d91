package sgl

import "testing"

func TestGetErrorStringKnownCodes(t *testing.T) {
	cases := map[ErrorCode]string{
		NoError:          "Operation succeeded",
		InvalidValue:     "Invalid argument(s) to a call",
		InvalidEnum:      "Invalid enumeration argument(s) to a call",
		InvalidOperation: "Invalid call",
		StackOverflow:    "Matrix stack overflow",
		StackUnderflow:   "Matrix stack underflow",
	}
	for code, want := range cases {
		if got := GetErrorString(code); got != want {
			t.Errorf("GetErrorString(%v) = %q, want %q", code, got, want)
		}
	}
}

func TestGetErrorStringOutOfRange(t *testing.T) {
	if got := GetErrorString(ErrorCode(999)); got != "Invalid value passed to GetErrorString()" {
		t.Errorf("GetErrorString(999) = %q, want fallback message", got)
	}
}

func TestErrorCodeStringMatchesGetErrorString(t *testing.T) {
	if InvalidEnum.String() != GetErrorString(InvalidEnum) {
		t.Error("ErrorCode.String() diverges from GetErrorString")
	}
}
