package interpreter

import (
	"fmt"

	"lox/pkg/ast"
	"lox/pkg/runtime"
)

func (i *Interpreter) execute(stmt ast.Stmt, env *runtime.Environment) error {
	switch n := stmt.(type) {
	case *ast.ExprStmt:
		_, err := i.evaluate(n.Expr, env)
		return err
	case *ast.PrintStmt:
		return i.executePrint(n, env)
	case *ast.VarStmt:
		return i.executeVar(n, env)
	case *ast.VarsStmt:
		for _, decl := range n.Decls {
			if err := i.executeVar(decl, env); err != nil {
				return err
			}
		}
		return nil
	case *ast.BlockStmt:
		return i.executeBlock(n.Statements, runtime.NewEnvironment(env))
	case *ast.IfStmt:
		return i.executeIf(n, env)
	case *ast.WhileStmt:
		return i.executeWhile(n, env)
	default:
		return fmt.Errorf("unsupported statement node %T", stmt)
	}
}

func (i *Interpreter) executePrint(n *ast.PrintStmt, env *runtime.Environment) error {
	value, err := i.evaluate(n.Expr, env)
	if err != nil {
		return err
	}
	fmt.Fprintln(i.stdout, runtime.Stringify(value))
	return nil
}

func (i *Interpreter) executeVar(n *ast.VarStmt, env *runtime.Environment) error {
	var value runtime.Value = runtime.NilValue{}
	if n.Initializer != nil {
		v, err := i.evaluate(n.Initializer, env)
		if err != nil {
			return err
		}
		value = v
	}
	env.Define(n.Name.Lexeme, value)
	return nil
}

// executeBlock runs statements against a freshly created child scope. The
// caller's environment variable is never mutated, so on return — whether
// normal or via a propagated error — the caller is still looking at its
// own (outer) scope: this is how block scope's "restore on every exit
// path" invariant holds without a mutable current-environment field.
func (i *Interpreter) executeBlock(statements []ast.Stmt, scope *runtime.Environment) error {
	for _, stmt := range statements {
		if err := i.execute(stmt, scope); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) executeIf(n *ast.IfStmt, env *runtime.Environment) error {
	cond, err := i.evaluate(n.Condition, env)
	if err != nil {
		return err
	}
	if runtime.IsTruthy(cond) {
		return i.execute(n.Then, env)
	}
	if n.Else != nil {
		return i.execute(n.Else, env)
	}
	return nil
}

func (i *Interpreter) executeWhile(n *ast.WhileStmt, env *runtime.Environment) error {
	for {
		cond, err := i.evaluate(n.Condition, env)
		if err != nil {
			return err
		}
		if !runtime.IsTruthy(cond) {
			return nil
		}
		if err := i.execute(n.Body, env); err != nil {
			return err
		}
	}
}
