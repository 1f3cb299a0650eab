package interview

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"
)

// Extract statically analyzes an interview script and returns its questions
// in prompt order. Scripts are ordinary Go CLI programs; the walk is purely
// syntactic, so extraction never executes the script and is deterministic
// for a given source.
//
// Recognized prompt shapes inside runCLI:
//
//	askBool("…")          -> boolean question
//	atoi(prompt("…"))     -> number question
//	atof(prompt("…"))     -> number question
//	prompt("…")           -> free-text question
func Extract(module string, src []byte) ([]Question, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, module+".go", src, 0)
	if err != nil {
		return nil, fmt.Errorf("parse script for %s: %w", module, err)
	}

	var runCLI *ast.FuncDecl
	for _, decl := range file.Decls {
		if fd, ok := decl.(*ast.FuncDecl); ok && fd.Name.Name == "runCLI" && fd.Recv == nil {
			runCLI = fd
			break
		}
	}
	// A script without runCLI simply has no questions. Tolerating a
	// missing or renamed entry routine keeps a half-written script from
	// breaking module listing.
	if runCLI == nil || runCLI.Body == nil {
		return nil, nil
	}

	var questions []Question
	order := 0

	add := func(text string, qt QuestionType) {
		order++
		questions = append(questions, Question{
			ID:     fmt.Sprintf("%s_%d", module, order),
			Module: module,
			Order:  order,
			Text:   text,
			Type:   qt,
		})
	}

	// ast.Inspect visits nodes depth-first in source order, which matches
	// the order the prompts are shown to the patient.
	ast.Inspect(runCLI.Body, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		fn, ok := call.Fun.(*ast.Ident)
		if !ok {
			return true
		}

		switch fn.Name {
		case "askBool":
			if text, ok := promptText(call); ok {
				add(text, TypeBoolean)
			}
			return false
		case "atoi", "atof":
			if len(call.Args) == 1 {
				if inner, ok := call.Args[0].(*ast.CallExpr); ok {
					if id, ok := inner.Fun.(*ast.Ident); ok && id.Name == "prompt" {
						if text, ok := promptText(inner); ok {
							add(text, TypeNumber)
						}
						return false
					}
				}
			}
			return true
		case "prompt":
			if text, ok := promptText(call); ok {
				add(text, TypeString)
			}
			return false
		}
		return true
	})

	return questions, nil
}

// promptText returns the string literal passed as the first argument.
func promptText(call *ast.CallExpr) (string, bool) {
	if len(call.Args) == 0 {
		return "", false
	}
	lit, ok := call.Args[0].(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		return "", false
	}
	text, err := strconv.Unquote(lit.Value)
	if err != nil {
		return "", false
	}
	return text, true
}
