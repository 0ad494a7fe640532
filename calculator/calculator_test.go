package calculator

import "testing"

func evalString(t *testing.T, expr string) string {
	t.Helper()
	v, err := Eval(expr)
	if err != nil {
		t.Fatalf("Eval(%q) returned error: %v", expr, err)
	}
	return v.String()
}

func TestEvalArithmetic(t *testing.T) {
	cases := []struct {
		expr string
		want string
	}{
		{"1", "1"},
		{"1+2", "3"},
		{"10-20", "-10"},
		{"3*4", "12"},
		{"17/5", "3"},
		{"17%5", "2"},
		{"2^10", "1024"},
		{"2^0", "1"},
		{"-5", "-5"},
		{"-2^2", "-4"},
		{"(1+2)*3", "9"},
		{"1+2*3", "7"},
		{"2^3^2", "512"}, // right-associative: 2^(3^2) = 2^9
		{" 1 + 2 ", "3"},
		{"10^20", "100000000000000000000"},
	}
	for _, c := range cases {
		if got := evalString(t, c.expr); got != c.want {
			t.Errorf("Eval(%q) = %s, want %s", c.expr, got, c.want)
		}
	}
}

func TestEvalNegativeDivisionTruncates(t *testing.T) {
	// Go/C-style truncation toward zero, matching wideint.Int128's DivFast64.
	if got := evalString(t, "-17/5"); got != "-3" {
		t.Errorf("Eval(-17/5) = %s, want -3", got)
	}
}

func TestEvalSyntaxErrors(t *testing.T) {
	cases := []string{
		"",
		"1+",
		"(1+2",
		"1 2",
		"1/0",
		"1%0",
		"2^-1",
		"abc",
	}
	for _, expr := range cases {
		_, err := Eval(expr)
		if err == nil {
			t.Errorf("Eval(%q) succeeded, want a syntax error", expr)
			continue
		}
		var syntaxErr *SyntaxError
		if !asSyntaxError(err, &syntaxErr) {
			t.Errorf("Eval(%q) returned %T, want *SyntaxError", expr, err)
		}
	}
}

func asSyntaxError(err error, target **SyntaxError) bool {
	se, ok := err.(*SyntaxError)
	if ok {
		*target = se
	}
	return ok
}
