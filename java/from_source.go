package java

import (
	"strings"

	"github.com/dhamidi/javaslice/java/parser"
)

// UnitFromSource parses a compilation unit and returns its declarations
// with keys assigned. Syntax errors do not fail the conversion; the
// declarations tree-sitter could recover are returned.
func UnitFromSource(source []byte, opts ...parser.Option) (*SourceUnit, error) {
	tree, err := parser.Parse(source, opts...)
	if err != nil {
		return nil, err
	}
	defer tree.Close()
	return UnitFromTree(tree), nil
}

func UnitFromTree(tree *parser.Tree) *SourceUnit {
	u := &SourceUnit{Path: tree.File()}
	for _, n := range tree.Root().NamedChildren() {
		switch n.Kind() {
		case "package_declaration":
			if name := n.FirstChildOfKind("identifier", "scoped_identifier"); name != nil {
				u.Package = compactText(name)
			}
		case "import_declaration":
			u.Imports = append(u.Imports, importFromNode(n))
		default:
			if t := typeDeclFromNode(n); t != nil {
				u.Types = append(u.Types, t)
			}
		}
	}
	u.Link()
	return u
}

func importFromNode(n *parser.Node) Import {
	imp := Import{
		IsStatic:   n.HasToken("static"),
		IsWildcard: n.FirstChildOfKind("asterisk") != nil,
	}
	if name := n.FirstChildOfKind("identifier", "scoped_identifier"); name != nil {
		imp.Name = compactText(name)
	}
	return imp
}

func isTypeDeclKind(kind string) bool {
	switch kind {
	case "class_declaration", "interface_declaration", "enum_declaration",
		"record_declaration", "annotation_type_declaration":
		return true
	}
	return false
}

func typeDeclFromNode(n *parser.Node) *TypeDecl {
	if !isTypeDeclKind(n.Kind()) {
		return nil
	}
	t := &TypeDecl{
		SimpleName: text(n.Field("name")),
		Source:     n.Text(),
		Position:   position(n),
	}
	if mods := n.FirstChildOfKind("modifiers"); mods != nil {
		t.Modifiers, t.Annotations = modifiersFromNode(mods)
	}
	if tps := n.FirstChildOfKind("type_parameters"); tps != nil {
		t.TypeParameters = typeParametersFromNode(tps)
	}
	if sc := n.FirstChildOfKind("superclass"); sc != nil {
		if types := typeListFromNode(sc); len(types) > 0 {
			t.SuperClass = &types[0]
		}
	}
	for _, si := range n.ChildrenOfKind("super_interfaces", "extends_interfaces") {
		t.Interfaces = append(t.Interfaces, typeListFromNode(si)...)
	}

	switch n.Kind() {
	case "class_declaration":
		t.ClassKind = ClassKindClass
	case "interface_declaration":
		t.ClassKind = ClassKindInterface
	case "enum_declaration":
		t.ClassKind = ClassKindEnum
	case "record_declaration":
		t.ClassKind = ClassKindRecord
		if params := n.Field("parameters"); params != nil {
			t.RecordComponents = parametersFromNode(params)
		}
	case "annotation_type_declaration":
		t.ClassKind = ClassKindAnnotation
	}

	body := n.Field("body")
	if body == nil {
		body = n.FirstChildOfKind("class_body", "interface_body", "enum_body", "annotation_type_body")
	}
	if body != nil {
		membersFromBody(t, body)
	}
	return t
}

func membersFromBody(t *TypeDecl, body *parser.Node) {
	for _, c := range body.NamedChildren() {
		switch c.Kind() {
		case "field_declaration", "constant_declaration":
			t.Fields = append(t.Fields, fieldsFromNode(c)...)
		case "method_declaration":
			t.Methods = append(t.Methods, methodFromNode(c))
		case "annotation_type_element_declaration":
			t.Methods = append(t.Methods, annotationElementFromNode(c))
		case "constructor_declaration":
			t.Constructors = append(t.Constructors, constructorFromNode(c))
		case "compact_constructor_declaration":
			ctor := constructorFromNode(c)
			ctor.IsCompact = true
			ctor.Parameters = t.RecordComponents
			t.Constructors = append(t.Constructors, ctor)
		case "enum_constant":
			t.EnumConstants = append(t.EnumConstants, enumConstantFromNode(c))
		case "enum_body_declarations":
			membersFromBody(t, c)
		default:
			if nested := typeDeclFromNode(c); nested != nil {
				t.Types = append(t.Types, nested)
			}
		}
	}
}

func modifiersFromNode(n *parser.Node) (Modifiers, []Annotation) {
	var mods Modifiers
	var anns []Annotation
	for _, c := range n.Children() {
		switch {
		case c.Kind() == "marker_annotation" || c.Kind() == "annotation":
			anns = append(anns, annotationFromNode(c))
		case !c.IsNamed():
			mods = append(mods, c.Kind())
		}
	}
	return mods, anns
}

func annotationFromNode(n *parser.Node) Annotation {
	a := Annotation{
		Name:   compactText(n.Field("name")),
		Source: n.Text(),
	}
	args := n.Field("arguments")
	if args == nil {
		return a
	}
	for _, c := range args.NamedChildren() {
		if c.Kind() == "element_value_pair" {
			a.Arguments = append(a.Arguments, AnnotationArgument{
				Name:  text(c.Field("key")),
				Value: elementValueFromNode(c.Field("value")),
			})
			continue
		}
		a.Arguments = append(a.Arguments, AnnotationArgument{Name: "value", Value: elementValueFromNode(c)})
	}
	return a
}

func elementValueFromNode(n *parser.Node) Expr {
	if n == nil {
		return nil
	}
	switch n.Kind() {
	case "element_value_array_initializer":
		arr := &ArrayInitExpr{}
		for _, c := range n.NamedChildren() {
			arr.Values = append(arr.Values, elementValueFromNode(c))
		}
		return arr
	case "marker_annotation", "annotation":
		return &AnnotationExpr{Annotation: annotationFromNode(n)}
	}
	return exprFromNode(n)
}

func typeParametersFromNode(n *parser.Node) []TypeParameter {
	var tps []TypeParameter
	for _, c := range n.ChildrenOfKind("type_parameter") {
		tp := TypeParameter{Source: c.Text()}
		for _, part := range c.NamedChildren() {
			switch part.Kind() {
			case "type_identifier", "identifier":
				tp.Name = part.Text()
			case "type_bound":
				tp.Bounds = typeListFromNode(part)
			}
		}
		tps = append(tps, tp)
	}
	return tps
}

// typeListFromNode collects the types below a superclass, super_interfaces,
// extends_interfaces, throws, type_bound or type_list node.
func typeListFromNode(n *parser.Node) []TypeRef {
	var types []TypeRef
	for _, c := range n.NamedChildren() {
		if c.Kind() == "type_list" {
			types = append(types, typeListFromNode(c)...)
			continue
		}
		if isTypeKind(c.Kind()) {
			types = append(types, typeRefFromNode(c))
		}
	}
	return types
}

func isTypeKind(kind string) bool {
	switch kind {
	case "type_identifier", "scoped_type_identifier", "generic_type", "array_type",
		"integral_type", "floating_point_type", "boolean_type", "void_type", "annotated_type":
		return true
	}
	return false
}

func typeRefFromNode(n *parser.Node) TypeRef {
	if n == nil {
		return TypeRef{}
	}
	switch n.Kind() {
	case "generic_type":
		var t TypeRef
		for _, c := range n.NamedChildren() {
			switch c.Kind() {
			case "type_arguments":
				t.TypeArguments = typeArgumentsFromNode(c)
			default:
				if isTypeKind(c.Kind()) {
					t.Name = typeRefFromNode(c).Name
				}
			}
		}
		t.Source = compactText(n)
		return t
	case "scoped_type_identifier":
		var parts []string
		for _, c := range n.NamedChildren() {
			if isTypeKind(c.Kind()) {
				parts = append(parts, typeRefFromNode(c).Name)
			}
		}
		return TypeRef{Name: strings.Join(parts, "."), Source: compactText(n)}
	case "array_type":
		t := typeRefFromNode(n.Field("element"))
		t.ArrayDepth += strings.Count(text(n.Field("dimensions")), "[")
		t.Source = compactText(n)
		return t
	case "annotated_type":
		named := n.NamedChildren()
		for i := len(named) - 1; i >= 0; i-- {
			if isTypeKind(named[i].Kind()) {
				return typeRefFromNode(named[i])
			}
		}
		return TypeRef{}
	case "wildcard":
		return wildcardFromNode(n)
	}
	return TypeRef{Name: compactText(n), Source: compactText(n)}
}

func typeArgumentsFromNode(n *parser.Node) []TypeRef {
	var args []TypeRef
	for _, c := range n.NamedChildren() {
		if c.Kind() == "wildcard" || isTypeKind(c.Kind()) {
			args = append(args, typeRefFromNode(c))
		}
	}
	return args
}

func wildcardFromNode(n *parser.Node) TypeRef {
	t := TypeRef{IsWildcard: true, Source: compactText(n)}
	for _, c := range n.NamedChildren() {
		switch {
		case c.Kind() == "super":
			t.BoundKind = "super"
		case isTypeKind(c.Kind()):
			bound := typeRefFromNode(c)
			t.Bound = &bound
		}
	}
	if t.Bound != nil && t.BoundKind == "" {
		t.BoundKind = "extends"
	}
	return t
}

func parametersFromNode(n *parser.Node) []Parameter {
	var params []Parameter
	for _, c := range n.NamedChildren() {
		switch c.Kind() {
		case "formal_parameter":
			params = append(params, formalParameterFromNode(c))
		case "spread_parameter":
			params = append(params, spreadParameterFromNode(c))
		}
	}
	return params
}

func formalParameterFromNode(n *parser.Node) Parameter {
	p := Parameter{
		Name: text(n.Field("name")),
		Type: typeRefFromNode(n.Field("type")),
	}
	if dims := n.Field("dimensions"); dims != nil {
		p.Type.ArrayDepth += strings.Count(dims.Text(), "[")
	}
	if mods := n.FirstChildOfKind("modifiers"); mods != nil {
		p.Modifiers, p.Annotations = modifiersFromNode(mods)
	}
	return p
}

func spreadParameterFromNode(n *parser.Node) Parameter {
	p := Parameter{IsVarargs: true}
	for _, c := range n.NamedChildren() {
		switch {
		case c.Kind() == "modifiers":
			p.Modifiers, p.Annotations = modifiersFromNode(c)
		case c.Kind() == "variable_declarator":
			p.Name = text(c.Field("name"))
		case isTypeKind(c.Kind()):
			p.Type = typeRefFromNode(c)
		}
	}
	return p
}

func fieldsFromNode(n *parser.Node) []*FieldDecl {
	var mods Modifiers
	var anns []Annotation
	modsNode := n.FirstChildOfKind("modifiers")
	if modsNode != nil {
		mods, anns = modifiersFromNode(modsNode)
	}
	typeNode := n.Field("type")
	typ := typeRefFromNode(typeNode)

	declarators := n.ChildrenOfKind("variable_declarator")
	fields := make([]*FieldDecl, 0, len(declarators))
	for _, d := range declarators {
		f := &FieldDecl{
			Name:        text(d.Field("name")),
			Type:        typ,
			Modifiers:   mods,
			Annotations: anns,
			Position:    position(d),
		}
		if dims := d.Field("dimensions"); dims != nil {
			f.Type.ArrayDepth += strings.Count(dims.Text(), "[")
			f.Type.Source = ""
		}
		if value := d.Field("value"); value != nil {
			f.Initializer = exprFromNode(value)
			f.InitializerSource = value.Text()
		}
		if len(declarators) == 1 {
			f.Source = n.Text()
		} else {
			var prefix []string
			if modsNode != nil {
				prefix = append(prefix, modsNode.Text())
			}
			prefix = append(prefix, text(typeNode), d.Text())
			f.Source = strings.Join(prefix, " ") + ";"
		}
		fields = append(fields, f)
	}
	return fields
}

func methodFromNode(n *parser.Node) *MethodDecl {
	m := &MethodDecl{
		Name:       text(n.Field("name")),
		ReturnType: typeRefFromNode(n.Field("type")),
		Source:     n.Text(),
		Position:   position(n),
	}
	if mods := n.FirstChildOfKind("modifiers"); mods != nil {
		m.Modifiers, m.Annotations = modifiersFromNode(mods)
	}
	if tps := n.FirstChildOfKind("type_parameters"); tps != nil {
		m.TypeParameters = typeParametersFromNode(tps)
	}
	if params := n.Field("parameters"); params != nil {
		m.Parameters = parametersFromNode(params)
	}
	if dims := n.Field("dimensions"); dims != nil {
		m.ReturnType.ArrayDepth += strings.Count(dims.Text(), "[")
	}
	if throws := n.FirstChildOfKind("throws"); throws != nil {
		m.Throws = typeListFromNode(throws)
	}
	if body := n.Field("body"); body != nil {
		m.Body = blockFromNode(body)
	}
	return m
}

// annotationElementFromNode models `int value() default 0;` inside an
// annotation type as a method without parameters.
func annotationElementFromNode(n *parser.Node) *MethodDecl {
	m := &MethodDecl{
		Name:       text(n.Field("name")),
		ReturnType: typeRefFromNode(n.Field("type")),
		Source:     n.Text(),
		Position:   position(n),
	}
	if mods := n.FirstChildOfKind("modifiers"); mods != nil {
		m.Modifiers, m.Annotations = modifiersFromNode(mods)
	}
	return m
}

func constructorFromNode(n *parser.Node) *ConstructorDecl {
	c := &ConstructorDecl{
		Name:     text(n.Field("name")),
		Source:   n.Text(),
		Position: position(n),
	}
	if mods := n.FirstChildOfKind("modifiers"); mods != nil {
		c.Modifiers, c.Annotations = modifiersFromNode(mods)
	}
	if tps := n.FirstChildOfKind("type_parameters"); tps != nil {
		c.TypeParameters = typeParametersFromNode(tps)
	}
	if params := n.Field("parameters"); params != nil {
		c.Parameters = parametersFromNode(params)
	}
	if throws := n.FirstChildOfKind("throws"); throws != nil {
		c.Throws = typeListFromNode(throws)
	}
	if body := n.Field("body"); body != nil {
		c.Body = blockFromNode(body)
	}
	return c
}

func enumConstantFromNode(n *parser.Node) *EnumConstantDecl {
	e := &EnumConstantDecl{
		Name:     text(n.Field("name")),
		Source:   n.Text(),
		Position: position(n),
	}
	if mods := n.FirstChildOfKind("modifiers"); mods != nil {
		_, e.Annotations = modifiersFromNode(mods)
	}
	if args := n.Field("arguments"); args != nil {
		e.Arguments = argumentsFromNode(args)
	}
	if body := n.Field("body"); body != nil {
		e.Body = &TypeDecl{SimpleName: e.Name, ClassKind: ClassKindClass, Source: body.Text()}
		membersFromBody(e.Body, body)
	}
	return e
}

func text(n *parser.Node) string {
	if n == nil {
		return ""
	}
	return n.Text()
}

// compactText collapses whitespace inside dotted names and types such as
// `java.util . List`.
func compactText(n *parser.Node) string {
	if n == nil {
		return ""
	}
	s := strings.Join(strings.Fields(n.Text()), " ")
	s = strings.ReplaceAll(s, " .", ".")
	return strings.ReplaceAll(s, ". ", ".")
}

func position(n *parser.Node) Position {
	p := n.Position()
	return Position{Line: p.Line, Column: p.Column}
}
