package java

import (
	"strings"

	"github.com/dhamidi/javaslice/java/parser"
)

func blockFromNode(n *parser.Node) *Block {
	b := &Block{}
	for _, c := range n.NamedChildren() {
		if s := stmtFromNode(c); s != nil {
			b.Stmts = append(b.Stmts, s)
		}
	}
	return b
}

// stmtBlock wraps a statement that the grammar allows in place of a block.
func stmtBlock(n *parser.Node) *Block {
	if n == nil {
		return nil
	}
	if n.Kind() == "block" {
		return blockFromNode(n)
	}
	if s := stmtFromNode(n); s != nil {
		return &Block{Stmts: []Stmt{s}}
	}
	return &Block{}
}

func stmtFromNode(n *parser.Node) Stmt {
	if n == nil {
		return nil
	}
	switch n.Kind() {
	case "block":
		return blockFromNode(n)
	case "local_variable_declaration":
		return localVarFromNode(n)
	case "expression_statement":
		if e := firstNamed(n); e != nil {
			return &ExprStmt{Expr: exprFromNode(e)}
		}
		return &EmptyStmt{}
	case "if_statement":
		return &IfStmt{
			Condition: exprFromNode(n.Field("condition")),
			Then:      stmtFromNode(n.Field("consequence")),
			Else:      stmtFromNode(n.Field("alternative")),
		}
	case "while_statement":
		return &WhileStmt{
			Condition: exprFromNode(n.Field("condition")),
			Body:      stmtFromNode(n.Field("body")),
		}
	case "do_statement":
		return &DoStmt{
			Body:      stmtFromNode(n.Field("body")),
			Condition: exprFromNode(n.Field("condition")),
		}
	case "for_statement":
		return forFromNode(n)
	case "enhanced_for_statement":
		v := Parameter{
			Name: text(n.Field("name")),
			Type: typeRefFromNode(n.Field("type")),
		}
		if mods := n.FirstChildOfKind("modifiers"); mods != nil {
			v.Modifiers, v.Annotations = modifiersFromNode(mods)
		}
		return &ForEachStmt{
			Variable: v,
			Iterable: exprFromNode(n.Field("value")),
			Body:     stmtFromNode(n.Field("body")),
		}
	case "return_statement":
		return &ReturnStmt{Value: exprFromNode(firstNamed(n))}
	case "throw_statement":
		return &ThrowStmt{Value: exprFromNode(firstNamed(n))}
	case "yield_statement":
		return &YieldStmt{Value: exprFromNode(firstNamed(n))}
	case "try_statement", "try_with_resources_statement":
		return tryFromNode(n)
	case "switch_expression", "switch_statement":
		sw := switchFromNode(n)
		return &SwitchStmt{Selector: sw.Selector, Cases: sw.Cases}
	case "synchronized_statement":
		return &SynchronizedStmt{
			Lock: exprFromNode(n.FirstChildOfKind("parenthesized_expression")),
			Body: stmtBlock(n.Field("body")),
		}
	case "labeled_statement":
		named := n.NamedChildren()
		if len(named) < 2 {
			return nil
		}
		return &LabeledStmt{Label: named[0].Text(), Body: stmtFromNode(named[len(named)-1])}
	case "assert_statement":
		named := n.NamedChildren()
		a := &AssertStmt{}
		if len(named) > 0 {
			a.Condition = exprFromNode(named[0])
		}
		if len(named) > 1 {
			a.Message = exprFromNode(named[1])
		}
		return a
	case "explicit_constructor_invocation":
		return &ExplicitCtorStmt{
			IsSuper:   text(n.Field("constructor")) == "super",
			Scope:     exprFromNode(n.Field("object")),
			Arguments: argumentsFromNode(n.Field("arguments")),
		}
	case "break_statement", "continue_statement":
		j := &JumpStmt{Keyword: strings.TrimSuffix(n.Kind(), "_statement")}
		if label := n.FirstChildOfKind("identifier"); label != nil {
			j.Label = label.Text()
		}
		return j
	}
	if t := typeDeclFromNode(n); t != nil {
		return &LocalTypeStmt{Decl: t}
	}
	return nil
}

func localVarFromNode(n *parser.Node) *LocalVarStmt {
	s := &LocalVarStmt{Type: typeRefFromNode(n.Field("type"))}
	if mods := n.FirstChildOfKind("modifiers"); mods != nil {
		s.Modifiers, s.Annotations = modifiersFromNode(mods)
	}
	for _, d := range n.ChildrenOfKind("variable_declarator") {
		v := VarDeclarator{Name: text(d.Field("name"))}
		if dims := d.Field("dimensions"); dims != nil {
			v.ArrayDepth = strings.Count(dims.Text(), "[")
		}
		if value := d.Field("value"); value != nil {
			v.Init = exprFromNode(value)
		}
		s.Variables = append(s.Variables, v)
	}
	return s
}

// forFromNode splits the header of a classic for loop on its semicolons.
// A local variable declaration carries its own semicolon.
func forFromNode(n *parser.Node) *ForStmt {
	f := &ForStmt{}
	section := 0
	inHeader := false
	for _, c := range n.Children() {
		if !c.IsNamed() {
			switch c.Kind() {
			case "(":
				inHeader = section == 0
			case ";":
				if inHeader {
					section++
				}
			case ")":
				inHeader = false
			}
			continue
		}
		if !inHeader || c.IsComment() {
			continue
		}
		switch {
		case c.Kind() == "local_variable_declaration":
			f.Init = append(f.Init, localVarFromNode(c))
			section = 1
		case section == 0:
			f.Init = append(f.Init, &ExprStmt{Expr: exprFromNode(c)})
		case section == 1:
			f.Condition = exprFromNode(c)
		default:
			f.Update = append(f.Update, exprFromNode(c))
		}
	}
	f.Body = stmtFromNode(n.Field("body"))
	return f
}

func tryFromNode(n *parser.Node) *TryStmt {
	t := &TryStmt{Body: stmtBlock(n.Field("body"))}
	if resources := n.Field("resources"); resources != nil {
		for _, r := range resources.ChildrenOfKind("resource") {
			if typ := r.Field("type"); typ != nil {
				t.Resources = append(t.Resources, &LocalVarStmt{
					Type: typeRefFromNode(typ),
					Variables: []VarDeclarator{{
						Name: text(r.Field("name")),
						Init: exprFromNode(r.Field("value")),
					}},
				})
				continue
			}
			if e := firstNamed(r); e != nil {
				t.Resources = append(t.Resources, &ExprStmt{Expr: exprFromNode(e)})
			}
		}
	}
	for _, c := range n.ChildrenOfKind("catch_clause") {
		cc := CatchClause{Body: stmtBlock(c.Field("body"))}
		if param := c.FirstChildOfKind("catch_formal_parameter"); param != nil {
			cc.Parameter.Name = text(param.Field("name"))
			if mods := param.FirstChildOfKind("modifiers"); mods != nil {
				cc.Parameter.Modifiers, cc.Parameter.Annotations = modifiersFromNode(mods)
			}
			if ct := param.FirstChildOfKind("catch_type"); ct != nil {
				types := typeListFromNode(ct)
				switch len(types) {
				case 0:
				case 1:
					cc.Parameter.Type = types[0]
				default:
					cc.Parameter.Type = TypeRef{Alternatives: types, Source: compactText(ct)}
				}
			}
		}
		t.Catches = append(t.Catches, cc)
	}
	if fin := n.FirstChildOfKind("finally_clause"); fin != nil {
		t.Finally = stmtBlock(fin.FirstChildOfKind("block"))
	}
	return t
}

func switchFromNode(n *parser.Node) *SwitchExpr {
	sw := &SwitchExpr{Selector: exprFromNode(n.Field("condition"))}
	body := n.Field("body")
	if body == nil {
		return sw
	}
	for _, c := range body.NamedChildren() {
		var sc SwitchCase
		for _, part := range c.NamedChildren() {
			if part.Kind() == "switch_label" {
				switchLabelInto(&sc, part)
				continue
			}
			if s := stmtFromNode(part); s != nil {
				sc.Body = append(sc.Body, s)
			}
		}
		sw.Cases = append(sw.Cases, sc)
	}
	return sw
}

func switchLabelInto(sc *SwitchCase, n *parser.Node) {
	named := n.NamedChildren()
	if len(named) == 0 || n.HasToken("default") {
		sc.Default = true
	}
	for _, c := range named {
		switch c.Kind() {
		case "pattern", "type_pattern", "record_pattern":
			p := patternFromNode(c)
			sc.Pattern = &p
		case "guard":
			sc.Guard = exprFromNode(firstNamed(c))
		default:
			sc.Labels = append(sc.Labels, exprFromNode(c))
		}
	}
}

func patternFromNode(n *parser.Node) Parameter {
	switch n.Kind() {
	case "pattern":
		if inner := firstNamed(n); inner != nil {
			return patternFromNode(inner)
		}
	case "type_pattern":
		named := n.NamedChildren()
		p := Parameter{}
		for _, c := range named {
			switch {
			case c.Kind() == "modifiers":
				p.Modifiers, p.Annotations = modifiersFromNode(c)
			case isTypeKind(c.Kind()):
				p.Type = typeRefFromNode(c)
			case c.Kind() == "identifier":
				p.Name = c.Text()
			}
		}
		return p
	case "record_pattern":
		for _, c := range n.NamedChildren() {
			if isTypeKind(c.Kind()) || c.Kind() == "identifier" {
				return Parameter{Type: typeRefFromNode(c)}
			}
		}
	}
	return Parameter{}
}

func argumentsFromNode(n *parser.Node) []Expr {
	if n == nil {
		return nil
	}
	var args []Expr
	for _, c := range n.NamedChildren() {
		args = append(args, exprFromNode(c))
	}
	return args
}

func firstNamed(n *parser.Node) *parser.Node {
	if n == nil {
		return nil
	}
	named := n.NamedChildren()
	if len(named) == 0 {
		return nil
	}
	return named[0]
}

func exprFromNode(n *parser.Node) Expr {
	if n == nil {
		return nil
	}
	switch n.Kind() {
	case "identifier":
		return &NameExpr{Name: n.Text()}
	case "this":
		return &ThisExpr{}
	case "super":
		return &SuperExpr{}
	case "parenthesized_expression":
		return exprFromNode(firstNamed(n))
	case "scoped_identifier":
		return &FieldAccessExpr{Scope: exprFromNode(n.Field("scope")), Name: text(n.Field("name"))}
	case "field_access":
		return fieldAccessFromNode(n)
	case "method_invocation":
		return methodCallFromNode(n)
	case "object_creation_expression":
		return objectCreationFromNode(n)
	case "array_creation_expression":
		return arrayCreationFromNode(n)
	case "array_initializer", "element_value_array_initializer":
		arr := &ArrayInitExpr{}
		for _, c := range n.NamedChildren() {
			arr.Values = append(arr.Values, exprFromNode(c))
		}
		return arr
	case "array_access":
		return &ArrayAccessExpr{Array: exprFromNode(n.Field("array")), Index: exprFromNode(n.Field("index"))}
	case "assignment_expression":
		op := text(n.Field("operator"))
		if op == "" {
			op = "="
		}
		return &AssignExpr{Operator: op, Target: exprFromNode(n.Field("left")), Value: exprFromNode(n.Field("right"))}
	case "binary_expression":
		return &BinaryExpr{
			Operator: text(n.Field("operator")),
			Left:     exprFromNode(n.Field("left")),
			Right:    exprFromNode(n.Field("right")),
		}
	case "unary_expression":
		return &UnaryExpr{Operator: text(n.Field("operator")), Operand: exprFromNode(n.Field("operand"))}
	case "update_expression":
		src := strings.TrimSpace(n.Text())
		u := &UnaryExpr{Operand: exprFromNode(firstNamed(n))}
		switch {
		case strings.HasPrefix(src, "++"), strings.HasPrefix(src, "--"):
			u.Operator = src[:2]
		default:
			u.Operator = src[len(src)-2:]
			u.Postfix = true
		}
		return u
	case "ternary_expression":
		return &ConditionalExpr{
			Condition: exprFromNode(n.Field("condition")),
			Then:      exprFromNode(n.Field("consequence")),
			Else:      exprFromNode(n.Field("alternative")),
		}
	case "cast_expression":
		return castFromNode(n)
	case "instanceof_expression":
		return instanceOfFromNode(n)
	case "lambda_expression":
		return lambdaFromNode(n)
	case "method_reference":
		return methodRefFromNode(n)
	case "class_literal":
		if c := firstNamed(n); c != nil {
			return &ClassLiteralExpr{Type: typeRefFromNode(c)}
		}
	case "switch_expression":
		return switchFromNode(n)
	case "marker_annotation", "annotation":
		return &AnnotationExpr{Annotation: annotationFromNode(n)}
	case "string_literal", "text_block":
		return &LiteralExpr{Kind: LiteralString, Value: n.Text()}
	case "character_literal":
		return &LiteralExpr{Kind: LiteralChar, Value: n.Text()}
	case "decimal_integer_literal", "hex_integer_literal", "octal_integer_literal", "binary_integer_literal":
		v := n.Text()
		if strings.HasSuffix(v, "l") || strings.HasSuffix(v, "L") {
			return &LiteralExpr{Kind: LiteralLong, Value: v}
		}
		return &LiteralExpr{Kind: LiteralInt, Value: v}
	case "decimal_floating_point_literal", "hex_floating_point_literal":
		v := n.Text()
		if strings.HasSuffix(v, "f") || strings.HasSuffix(v, "F") {
			return &LiteralExpr{Kind: LiteralFloat, Value: v}
		}
		return &LiteralExpr{Kind: LiteralDouble, Value: v}
	case "true", "false":
		return &LiteralExpr{Kind: LiteralBoolean, Value: n.Text()}
	case "null_literal":
		return &LiteralExpr{Kind: LiteralNull, Value: "null"}
	}
	return &UnknownExpr{Text: n.Text()}
}

// qualifiedSuper finds the `super` of X.super.m() and X.super.f, which the
// grammar places between the object and the member name.
func qualifiedSuper(n, object *parser.Node) Expr {
	if object == nil {
		return nil
	}
	for _, c := range n.NamedChildren() {
		if c.Kind() == "super" && c.StartByte() != object.StartByte() {
			return &SuperExpr{Qualifier: compactText(object)}
		}
	}
	return nil
}

func fieldAccessFromNode(n *parser.Node) Expr {
	object := n.Field("object")
	field := n.Field("field")
	if field != nil && field.Kind() == "this" {
		return &ThisExpr{Qualifier: compactText(object)}
	}
	scope := qualifiedSuper(n, object)
	if scope == nil {
		scope = exprFromNode(object)
	}
	return &FieldAccessExpr{Scope: scope, Name: text(field)}
}

func methodCallFromNode(n *parser.Node) Expr {
	object := n.Field("object")
	call := &MethodCallExpr{
		Name:      text(n.Field("name")),
		Arguments: argumentsFromNode(n.Field("arguments")),
	}
	if targs := n.Field("type_arguments"); targs != nil {
		call.TypeArguments = typeArgumentsFromNode(targs)
	}
	if scope := qualifiedSuper(n, object); scope != nil {
		call.Scope = scope
	} else if object != nil {
		call.Scope = exprFromNode(object)
	}
	return call
}

func objectCreationFromNode(n *parser.Node) Expr {
	typeNode := n.Field("type")
	oc := &ObjectCreationExpr{
		Type:      typeRefFromNode(typeNode),
		Arguments: argumentsFromNode(n.Field("arguments")),
	}
	named := n.NamedChildren()
	if len(named) > 0 && typeNode != nil && named[0].StartByte() < typeNode.StartByte() &&
		named[0].Kind() != "type_arguments" && !isTypeKind(named[0].Kind()) &&
		named[0].Kind() != "marker_annotation" && named[0].Kind() != "annotation" {
		oc.Scope = exprFromNode(named[0])
	}
	if body := n.FirstChildOfKind("class_body"); body != nil {
		oc.AnonymousBody = &TypeDecl{SimpleName: "", ClassKind: ClassKindClass, Source: body.Text()}
		membersFromBody(oc.AnonymousBody, body)
	}
	return oc
}

func arrayCreationFromNode(n *parser.Node) Expr {
	ac := &ArrayCreationExpr{Type: typeRefFromNode(n.Field("type"))}
	depth := 0
	for _, c := range n.NamedChildren() {
		switch c.Kind() {
		case "dimensions_expr":
			ac.Dimensions = append(ac.Dimensions, exprFromNode(firstNamed(c)))
			depth++
		case "dimensions":
			depth += strings.Count(c.Text(), "[")
		case "array_initializer":
			if init, ok := exprFromNode(c).(*ArrayInitExpr); ok {
				ac.Initializer = init
			}
		}
	}
	ac.Type.ArrayDepth += depth
	return ac
}

func castFromNode(n *parser.Node) Expr {
	value := n.Field("value")
	var types []TypeRef
	for _, c := range n.NamedChildren() {
		if value != nil && c.StartByte() == value.StartByte() {
			continue
		}
		if isTypeKind(c.Kind()) {
			types = append(types, typeRefFromNode(c))
		}
	}
	cast := &CastExpr{Expr: exprFromNode(value)}
	switch len(types) {
	case 0:
	case 1:
		cast.Type = types[0]
	default:
		cast.Type = TypeRef{Alternatives: types}
	}
	return cast
}

func instanceOfFromNode(n *parser.Node) Expr {
	io := &InstanceOfExpr{Expr: exprFromNode(n.Field("left"))}
	if right := n.Field("right"); right != nil {
		io.Type = typeRefFromNode(right)
		io.Binding = text(n.Field("name"))
		return io
	}
	if pattern := n.Field("pattern"); pattern != nil {
		p := patternFromNode(pattern)
		io.Type = p.Type
		io.Binding = p.Name
	}
	return io
}

func lambdaFromNode(n *parser.Node) Expr {
	l := &LambdaExpr{}
	if params := n.Field("parameters"); params != nil {
		switch params.Kind() {
		case "identifier":
			l.Parameters = []Parameter{{Name: params.Text()}}
		case "formal_parameters":
			l.Parameters = parametersFromNode(params)
		case "inferred_parameters":
			for _, id := range params.NamedChildren() {
				l.Parameters = append(l.Parameters, Parameter{Name: id.Text()})
			}
		}
	}
	body := n.Field("body")
	if body != nil && body.Kind() == "block" {
		l.BodyBlock = blockFromNode(body)
	} else {
		l.BodyExpr = exprFromNode(body)
	}
	return l
}

func methodRefFromNode(n *parser.Node) Expr {
	ref := &MethodRefExpr{}
	named := n.NamedChildren()
	if len(named) > 0 {
		scope := named[0]
		switch scope.Kind() {
		case "array_type", "generic_type", "integral_type", "floating_point_type",
			"boolean_type", "scoped_type_identifier", "type_identifier":
			t := typeRefFromNode(scope)
			ref.TypeScope = &t
		default:
			ref.Scope = exprFromNode(scope)
		}
	}
	if n.HasToken("new") {
		ref.Name = "new"
	} else if len(named) > 1 && named[len(named)-1].Kind() == "identifier" {
		ref.Name = named[len(named)-1].Text()
	}
	return ref
}
