package truntime

import (
	"github.com/davrell/tinybasic/ast"
)

// evalExpr resolves an expression against the current state. Operands
// evaluate left to right; the first failure aborts the whole
// expression. Comparisons yield 1 or 0, division truncates toward
// zero.
func evalExpr(st *State, e ast.Expr) (int64, error) {
	switch ex := e.(type) {
	case ast.NumberLit:
		return ex.Value, nil
	case ast.VarRef:
		return st.Scalar(ex.Name)
	case ast.ArrayRef:
		index, err := evalExpr(st, ex.Index)
		if err != nil {
			return 0, err
		}
		return st.Element(ex.Name, index)
	case ast.UnaryExpr:
		v, err := evalExpr(st, ex.Expr)
		if err != nil {
			return 0, err
		}
		return -v, nil
	case ast.BinaryExpr:
		left, err := evalExpr(st, ex.Left)
		if err != nil {
			return 0, err
		}
		right, err := evalExpr(st, ex.Right)
		if err != nil {
			return 0, err
		}
		return evalBinary(ex.Op, left, right)
	default:
		return 0, runtimeErr(TypeMismatch, "unsupported expression %s", e)
	}
}

func evalBinary(op string, left, right int64) (int64, error) {
	switch op {
	case "+":
		return left + right, nil
	case "-":
		return left - right, nil
	case "*":
		return left * right, nil
	case "/":
		if right == 0 {
			return 0, runtimeErr(DivisionByZero, "division by zero")
		}
		return left / right, nil
	case "=":
		return boolInt(left == right), nil
	case "<>":
		return boolInt(left != right), nil
	case "<":
		return boolInt(left < right), nil
	case "<=":
		return boolInt(left <= right), nil
	case ">":
		return boolInt(left > right), nil
	case ">=":
		return boolInt(left >= right), nil
	default:
		return 0, runtimeErr(TypeMismatch, "unsupported operator %q", op)
	}
}

func boolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
