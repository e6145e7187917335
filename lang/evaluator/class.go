package evaluator

import (
	"github.com/loxlang/golox/lang/ast"
	"github.com/loxlang/golox/lang/types"
)

func (in *Interpreter) executeClass(s *ast.ClassStmt) (execResult, error) {
	var superclass *types.LoxClass
	if s.Superclass != nil {
		v, err := in.evaluate(s.Superclass)
		if err != nil {
			return normalResult, err
		}
		sc, ok := v.(*types.LoxClass)
		if !ok {
			return normalResult, newRuntimeError(s.Superclass.Name.Line, "superclass must be a class")
		}
		superclass = sc
	}

	// the class's own name is visible (as nil, reassigned below) inside
	// method bodies before the class value itself exists, matching the
	// resolver having already declared+defined it in the enclosing scope.
	in.environment.Define(s.Name.Lexeme, types.Nil{})

	methodEnv := in.environment
	if superclass != nil {
		methodEnv = types.NewChildEnvironment(in.environment)
		methodEnv.Define("super", superclass)
	}

	methods := make(map[string]*types.LoxFunction, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = types.NewLoxFunction(m, methodEnv, m.Name.Lexeme == "init")
	}

	class := types.NewClass(s.Name.Lexeme, superclass, methods)
	in.environment.Assign(s.Name.Lexeme, class)
	return normalResult, nil
}
