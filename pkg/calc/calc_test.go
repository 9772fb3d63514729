package calc_test

import (
	"math"
	"strings"
	"testing"

	"calcyard/pkg/calc"
	"calcyard/pkg/token"
)

func expectEval(t *testing.T, ev *calc.Evaluator, expr, expected string) {
	t.Helper()
	ok, out := ev.TryEvaluate(expr)
	if !ok {
		t.Fatalf("Evaluate(%q) failed: %s", expr, out)
	}
	if out != expected {
		t.Errorf("Evaluate(%q) = %q, want %q", expr, out, expected)
	}
}

func expectEvalError(t *testing.T, ev *calc.Evaluator, expr, want string) {
	t.Helper()
	ok, out := ev.TryEvaluate(expr)
	if ok {
		t.Fatalf("Evaluate(%q) should fail, got %q", expr, out)
	}
	if !strings.Contains(out, want) {
		t.Errorf("Evaluate(%q) error = %q, want substring %q", expr, out, want)
	}
}

func TestOperatorPrecedence(t *testing.T) {
	ev := calc.New()
	expectEval(t, ev, "1 + 2 * 3", "7")
	expectEval(t, ev, "(1 + 2) * 3", "9")
}

func TestSignDisambiguation(t *testing.T) {
	ev := calc.New()
	expectEval(t, ev, "-5 + 3", "-2")
	expectEval(t, ev, "4 - -5", "9")
	expectEval(t, ev, "+5", "5")
}

func TestBooleanOperatorsRejectNumbers(t *testing.T) {
	ev := calc.New()
	expectEvalError(t, ev, "1 && 2", "not a boolean")
}

func TestFunctionArityBothWays(t *testing.T) {
	ev := calc.New()
	expectEval(t, ev, "pow(2,3)", "8")
	expectEvalError(t, ev, "pow(2)", "expects 2 arguments, got 1")
	expectEvalError(t, ev, "pow(2,3,4)", "expects 2 arguments, got 3")
}

func TestUnrecognizedInputReportsIndex(t *testing.T) {
	ev := calc.New()
	expectEvalError(t, ev, "3 @ 4", "index 2")
}

func TestUnbalancedBrackets(t *testing.T) {
	ev := calc.New()
	expectEvalError(t, ev, "(1 + 2", "mismatched brackets")
	expectEvalError(t, ev, "1 + 2)", "mismatched brackets")
}

func TestExtensionOverridesBuiltin(t *testing.T) {
	ev := calc.New()
	expectEval(t, ev, "pi * 1", "3.141592653589793")

	ev.RegisterConstant("pi", 3)
	expectEval(t, ev, "pi * 1", "3")
	expectEval(t, ev, "pi + pi", "6")
}

func TestExtensionFunction(t *testing.T) {
	ev := calc.New()
	ev.RegisterExtension(token.Token{
		Kind:  token.Func,
		Text:  "double",
		Prec:  token.PrecBracket,
		Arity: 1,
		Eval: token.EvalFunc(func(op token.Token, args []token.Token) token.Token {
			return token.NewNumber(2 * args[0].Number())
		}),
	})

	expectEval(t, ev, "double(21)", "42")
	expectEvalError(t, ev, "double(1,2)", "expects 1 arguments, got 2")
}

func TestExtensionPostfixOperator(t *testing.T) {
	ev := calc.New()
	ev.RegisterExtension(token.Token{
		Kind: token.UnaryPostfix,
		Text: "!",
		Prec: token.PrecUnary,
		Eval: token.EvalFunc(func(op token.Token, args []token.Token) token.Token {
			n := args[0].Number()
			r := 1.0
			for i := 2.0; i <= n; i++ {
				r *= i
			}
			return token.NewNumber(r)
		}),
	})

	expectEval(t, ev, "3!", "6")
	// A sign after a postfix operator is binary.
	expectEval(t, ev, "3! + 1", "7")
	expectEval(t, ev, "3! - 2!", "4")
}

func TestExtensionRightAssociativeOperator(t *testing.T) {
	ev := calc.New()
	ev.RegisterExtension(token.Token{
		Kind: token.BinaryRight,
		Text: "^",
		Prec: 5,
		Eval: token.EvalFunc(func(op token.Token, args []token.Token) token.Token {
			return token.NewNumber(math.Pow(args[0].Number(), args[1].Number()))
		}),
	})

	// Right associativity: 2 ^ (3 ^ 2), not (2 ^ 3) ^ 2.
	expectEval(t, ev, "2 ^ 3 ^ 2", "512")
	// Binds tighter than multiplication.
	expectEval(t, ev, "2 ^ 3 * 2", "16")
}

func TestRepeatedEvaluationIsIdempotent(t *testing.T) {
	ev := calc.New()
	exprs := []string{"1 + 2 * 3", "pow(2,10)", "1 && 2", "3 @ 4", "sqrt(-1)"}
	for _, expr := range exprs {
		first := ev.Evaluate(expr)
		for i := 0; i < 3; i++ {
			if got := ev.Evaluate(expr); got != first {
				t.Errorf("Evaluate(%q) changed between calls: %q then %q", expr, first, got)
			}
		}
	}
}

func TestNaNPropagatesWithoutError(t *testing.T) {
	ev := calc.New()
	for _, expr := range []string{"0 / 0", "sqrt(-1) + 1", "2 * sqrt(-1)"} {
		ok, out := ev.TryEvaluate(expr)
		if !ok {
			t.Fatalf("Evaluate(%q) should not fail: %s", expr, out)
		}
		if out != "NaN" {
			t.Errorf("Evaluate(%q) = %q, want NaN", expr, out)
		}
	}
}

func TestImplicitNullArgument(t *testing.T) {
	ev := calc.New()
	// An omitted argument is an explicit null, which reads as NaN.
	ok, out := ev.TryEvaluate("pow(,3)")
	if !ok || out != "NaN" {
		t.Errorf("pow(,3) = ok=%v %q, want NaN", ok, out)
	}
}

func TestStringAndBoolResults(t *testing.T) {
	ev := calc.New()
	expectEval(t, ev, "'hello'", "hello")
	expectEval(t, ev, "1 < 2", "true")
	expectEval(t, ev, "true == false", "false")
}

func TestTernaryIsUnsupported(t *testing.T) {
	ev := calc.New()
	expectEvalError(t, ev, "1 ? 2 : 3", "unsupported symbol type")
}

func TestEmptyExpressionIsInvalid(t *testing.T) {
	ev := calc.New()
	expectEvalError(t, ev, "", "invalid expression")
	expectEvalError(t, ev, "   ", "invalid expression")
}

func TestTryEvaluateNumeric(t *testing.T) {
	ev := calc.New()

	ok, v := ev.TryEvaluateNumeric("2 + 3")
	if !ok || v != 5 {
		t.Errorf("TryEvaluateNumeric(2 + 3) = %v, %v", ok, v)
	}

	// Boolean results are not numeric.
	ok, v = ev.TryEvaluateNumeric("1 < 2")
	if ok || !math.IsNaN(v) {
		t.Errorf("TryEvaluateNumeric(1 < 2) = %v, %v, want false, NaN", ok, v)
	}

	ok, v = ev.TryEvaluateNumeric("(1 + 2")
	if ok || !math.IsNaN(v) {
		t.Errorf("TryEvaluateNumeric on error = %v, %v, want false, NaN", ok, v)
	}

	// A NaN-valued numeric result is still a successful numeric result.
	ok, v = ev.TryEvaluateNumeric("0 / 0")
	if !ok || !math.IsNaN(v) {
		t.Errorf("TryEvaluateNumeric(0 / 0) = %v, %v, want true, NaN", ok, v)
	}
}

func TestCaseInsensitiveInput(t *testing.T) {
	ev := calc.New()
	expectEval(t, ev, "PI > 3", "true")
	expectEval(t, ev, "SQRT(16)", "4")
	expectEval(t, ev, "true AND true", "true")
}

func TestTokensAndPostfixViews(t *testing.T) {
	ev := calc.New()

	infix := ev.Tokens("1 + 2")
	if len(infix) != 3 || infix[1].Kind != token.Sign {
		t.Fatalf("unexpected infix view: %v", infix)
	}

	postfix := ev.Postfix("1 + 2 * 3")
	var texts []string
	for _, tok := range postfix {
		texts = append(texts, tok.Text)
	}
	if strings.Join(texts, " ") != "1 2 3 * +" {
		t.Errorf("unexpected postfix view: %v", texts)
	}
}
