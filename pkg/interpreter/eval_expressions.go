package interpreter

import (
	"lox/pkg/ast"
	"lox/pkg/runtime"
	"lox/pkg/token"
)

func (i *Interpreter) evaluate(expr ast.Expr, env *runtime.Environment) (runtime.Value, error) {
	switch n := expr.(type) {
	case *ast.Literal:
		return literalValue(n.Value), nil
	case *ast.Grouping:
		return i.evaluate(n.Inner, env)
	case *ast.Unary:
		return i.evaluateUnary(n, env)
	case *ast.Binary:
		return i.evaluateBinary(n, env)
	case *ast.Logical:
		return i.evaluateLogical(n, env)
	case *ast.Ternary:
		return i.evaluateTernary(n, env)
	case *ast.Variable:
		val, err := env.Get(n.Name)
		if err != nil {
			return nil, wrapEnvError(n.Name, err)
		}
		return val, nil
	case *ast.Assign:
		return i.evaluateAssign(n, env)
	default:
		return nil, runtimeError(token.Token{}, "unsupported expression node %T", expr)
	}
}

func literalValue(v any) runtime.Value {
	switch val := v.(type) {
	case nil:
		return runtime.NilValue{}
	case bool:
		return runtime.BoolValue{Val: val}
	case float64:
		return runtime.NumberValue{Val: val}
	case string:
		return runtime.StringValue{Val: val}
	default:
		return runtime.NilValue{}
	}
}

func (i *Interpreter) evaluateUnary(n *ast.Unary, env *runtime.Environment) (runtime.Value, error) {
	operand, err := i.evaluate(n.Operand, env)
	if err != nil {
		return nil, err
	}
	switch n.Op.Kind {
	case token.Minus:
		num, ok := operand.(runtime.NumberValue)
		if !ok {
			return nil, runtimeError(n.Op, "Operand must be a number.")
		}
		return runtime.NumberValue{Val: -num.Val}, nil
	case token.Bang:
		return runtime.BoolValue{Val: !runtime.IsTruthy(operand)}, nil
	default:
		return nil, runtimeError(n.Op, "unsupported unary operator %s", n.Op.Kind)
	}
}

func (i *Interpreter) evaluateBinary(n *ast.Binary, env *runtime.Environment) (runtime.Value, error) {
	left, err := i.evaluate(n.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluate(n.Right, env)
	if err != nil {
		return nil, err
	}

	switch n.Op.Kind {
	case token.Comma:
		return right, nil
	case token.EqualEqual:
		return runtime.BoolValue{Val: runtime.Equal(left, right)}, nil
	case token.BangEqual:
		return runtime.BoolValue{Val: !runtime.Equal(left, right)}, nil
	case token.Plus:
		return i.evaluatePlus(n.Op, left, right)
	case token.Minus, token.Star, token.Slash, token.Greater, token.GreaterEqual, token.Less, token.LessEqual:
		return i.evaluateNumericBinary(n.Op, left, right)
	default:
		return nil, runtimeError(n.Op, "unsupported binary operator %s", n.Op.Kind)
	}
}

func (i *Interpreter) evaluatePlus(op token.Token, left, right runtime.Value) (runtime.Value, error) {
	ln, lok := left.(runtime.NumberValue)
	rn, rok := right.(runtime.NumberValue)
	if lok && rok {
		return runtime.NumberValue{Val: ln.Val + rn.Val}, nil
	}
	_, lstr := left.(runtime.StringValue)
	_, rstr := right.(runtime.StringValue)
	if lstr || rstr {
		return runtime.StringValue{Val: runtime.Stringify(left) + runtime.Stringify(right)}, nil
	}
	return nil, runtimeError(op, "Operands must be two numbers or two strings.")
}

func (i *Interpreter) evaluateNumericBinary(op token.Token, left, right runtime.Value) (runtime.Value, error) {
	ln, lok := left.(runtime.NumberValue)
	rn, rok := right.(runtime.NumberValue)
	if !lok || !rok {
		return nil, runtimeError(op, "Operand must be a number.")
	}
	switch op.Kind {
	case token.Minus:
		return runtime.NumberValue{Val: ln.Val - rn.Val}, nil
	case token.Star:
		return runtime.NumberValue{Val: ln.Val * rn.Val}, nil
	case token.Slash:
		return runtime.NumberValue{Val: ln.Val / rn.Val}, nil
	case token.Greater:
		return runtime.BoolValue{Val: ln.Val > rn.Val}, nil
	case token.GreaterEqual:
		return runtime.BoolValue{Val: ln.Val >= rn.Val}, nil
	case token.Less:
		return runtime.BoolValue{Val: ln.Val < rn.Val}, nil
	case token.LessEqual:
		return runtime.BoolValue{Val: ln.Val <= rn.Val}, nil
	default:
		return nil, runtimeError(op, "unsupported numeric operator %s", op.Kind)
	}
}

// evaluateLogical short-circuits: OR returns the left operand as-is once
// it is truthy, AND returns it once it is not; the right operand is only
// evaluated when the left does not already decide the result.
func (i *Interpreter) evaluateLogical(n *ast.Logical, env *runtime.Environment) (runtime.Value, error) {
	left, err := i.evaluate(n.Left, env)
	if err != nil {
		return nil, err
	}
	switch n.Op.Kind {
	case token.Or:
		if runtime.IsTruthy(left) {
			return left, nil
		}
	case token.And:
		if !runtime.IsTruthy(left) {
			return left, nil
		}
	}
	return i.evaluate(n.Right, env)
}

// evaluateTernary evaluates exactly one of Second/Third; the other branch
// is never touched.
func (i *Interpreter) evaluateTernary(n *ast.Ternary, env *runtime.Environment) (runtime.Value, error) {
	cond, err := i.evaluate(n.First, env)
	if err != nil {
		return nil, err
	}
	if runtime.IsTruthy(cond) {
		return i.evaluate(n.Second, env)
	}
	return i.evaluate(n.Third, env)
}

func (i *Interpreter) evaluateAssign(n *ast.Assign, env *runtime.Environment) (runtime.Value, error) {
	value, err := i.evaluate(n.Value, env)
	if err != nil {
		return nil, err
	}
	if err := env.Assign(n.Name, value); err != nil {
		return nil, wrapEnvError(n.Name, err)
	}
	return value, nil
}

func wrapEnvError(tok token.Token, err error) error {
	if _, ok := err.(*runtime.UndefinedVariableError); ok {
		return runtimeError(tok, err.Error())
	}
	return err
}
