package java

// Expr is a Java expression. The set of implementations is closed; code
// that inspects expressions switches over the concrete types.
type Expr interface {
	exprNode()
}

// Stmt is a Java statement.
type Stmt interface {
	stmtNode()
}

type NameExpr struct {
	Name string
}

// FieldAccessExpr is scope.name. A qualified this (Outer.this) is a
// ThisExpr, not a field access.
type FieldAccessExpr struct {
	Scope Expr
	Name  string
}

type MethodCallExpr struct {
	// Scope is nil for unqualified calls.
	Scope         Expr
	Name          string
	TypeArguments []TypeRef
	Arguments     []Expr
}

type ObjectCreationExpr struct {
	// Scope is the outer instance of outer.new Inner().
	Scope     Expr
	Type      TypeRef
	Arguments []Expr
	// AnonymousBody holds the members of an anonymous class.
	AnonymousBody *TypeDecl
}

type ThisExpr struct {
	Qualifier string
}

type SuperExpr struct {
	Qualifier string
}

type LiteralKind string

const (
	LiteralString  LiteralKind = "string"
	LiteralChar    LiteralKind = "char"
	LiteralInt     LiteralKind = "int"
	LiteralLong    LiteralKind = "long"
	LiteralFloat   LiteralKind = "float"
	LiteralDouble  LiteralKind = "double"
	LiteralBoolean LiteralKind = "boolean"
	LiteralNull    LiteralKind = "null"
)

type LiteralExpr struct {
	Kind  LiteralKind
	Value string
}

type BinaryExpr struct {
	Operator string
	Left     Expr
	Right    Expr
}

type UnaryExpr struct {
	Operator string
	Operand  Expr
	Postfix  bool
}

type AssignExpr struct {
	Operator string
	Target   Expr
	Value    Expr
}

type ConditionalExpr struct {
	Condition Expr
	Then      Expr
	Else      Expr
}

type CastExpr struct {
	Type TypeRef
	Expr Expr
}

// InstanceOfExpr covers both the classic form and the pattern form
// `x instanceof Foo f`, where Binding is "f".
type InstanceOfExpr struct {
	Expr    Expr
	Type    TypeRef
	Binding string
}

type ArrayAccessExpr struct {
	Array Expr
	Index Expr
}

type ArrayCreationExpr struct {
	Type        TypeRef
	Dimensions  []Expr
	Initializer *ArrayInitExpr
}

type ArrayInitExpr struct {
	Values []Expr
}

type ClassLiteralExpr struct {
	Type TypeRef
}

type LambdaExpr struct {
	Parameters []Parameter
	// Exactly one of BodyExpr and BodyBlock is set.
	BodyExpr  Expr
	BodyBlock *Block
}

// MethodRefExpr is scope::name; Name is "new" for constructor references.
// TypeScope is set when the scope is written as a type (String[]::new,
// List<String>::size).
type MethodRefExpr struct {
	Scope     Expr
	TypeScope *TypeRef
	Name      string
}

type SwitchExpr struct {
	Selector Expr
	Cases    []SwitchCase
}

type SwitchCase struct {
	Labels  []Expr
	Default bool
	// Pattern is the type pattern of `case Foo f ->`.
	Pattern *Parameter
	Guard   Expr
	Body    []Stmt
}

// AnnotationExpr is an annotation used as an annotation element value.
type AnnotationExpr struct {
	Annotation Annotation
}

// UnknownExpr keeps the text of syntax the model does not represent.
type UnknownExpr struct {
	Text string
}

func (*NameExpr) exprNode()           {}
func (*FieldAccessExpr) exprNode()    {}
func (*MethodCallExpr) exprNode()     {}
func (*ObjectCreationExpr) exprNode() {}
func (*ThisExpr) exprNode()           {}
func (*SuperExpr) exprNode()          {}
func (*LiteralExpr) exprNode()        {}
func (*BinaryExpr) exprNode()         {}
func (*UnaryExpr) exprNode()          {}
func (*AssignExpr) exprNode()         {}
func (*ConditionalExpr) exprNode()    {}
func (*CastExpr) exprNode()           {}
func (*InstanceOfExpr) exprNode()     {}
func (*ArrayAccessExpr) exprNode()    {}
func (*ArrayCreationExpr) exprNode()  {}
func (*ArrayInitExpr) exprNode()      {}
func (*ClassLiteralExpr) exprNode()   {}
func (*LambdaExpr) exprNode()         {}
func (*MethodRefExpr) exprNode()      {}
func (*SwitchExpr) exprNode()         {}
func (*AnnotationExpr) exprNode()     {}
func (*UnknownExpr) exprNode()        {}

type Block struct {
	Stmts []Stmt
}

type LocalVarStmt struct {
	Modifiers   Modifiers
	Annotations []Annotation
	Type        TypeRef
	Variables   []VarDeclarator
}

type VarDeclarator struct {
	Name       string
	ArrayDepth int
	Init       Expr
}

// LocalTypeStmt is a class, record, enum or interface declared inside a
// method body.
type LocalTypeStmt struct {
	Decl *TypeDecl
}

type ExprStmt struct {
	Expr Expr
}

type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt
}

type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

type DoStmt struct {
	Body      Stmt
	Condition Expr
}

type ForStmt struct {
	Init      []Stmt
	Condition Expr
	Update    []Expr
	Body      Stmt
}

type ForEachStmt struct {
	Variable Parameter
	Iterable Expr
	Body     Stmt
}

type ReturnStmt struct {
	Value Expr
}

type ThrowStmt struct {
	Value Expr
}

type YieldStmt struct {
	Value Expr
}

type TryStmt struct {
	// Resources are LocalVarStmts or ExprStmts naming an existing
	// variable.
	Resources []Stmt
	Body      *Block
	Catches   []CatchClause
	Finally   *Block
}

type CatchClause struct {
	Parameter Parameter
	Body      *Block
}

type SwitchStmt struct {
	Selector Expr
	Cases    []SwitchCase
}

type SynchronizedStmt struct {
	Lock Expr
	Body *Block
}

type LabeledStmt struct {
	Label string
	Body  Stmt
}

type AssertStmt struct {
	Condition Expr
	Message   Expr
}

// ExplicitCtorStmt is this(...) or super(...) as the first statement of a
// constructor.
type ExplicitCtorStmt struct {
	IsSuper   bool
	Scope     Expr
	Arguments []Expr
}

// JumpStmt is break or continue.
type JumpStmt struct {
	Keyword string
	Label   string
}

type EmptyStmt struct{}

func (*Block) stmtNode()            {}
func (*LocalVarStmt) stmtNode()     {}
func (*LocalTypeStmt) stmtNode()    {}
func (*ExprStmt) stmtNode()         {}
func (*IfStmt) stmtNode()           {}
func (*WhileStmt) stmtNode()        {}
func (*DoStmt) stmtNode()           {}
func (*ForStmt) stmtNode()          {}
func (*ForEachStmt) stmtNode()      {}
func (*ReturnStmt) stmtNode()       {}
func (*ThrowStmt) stmtNode()        {}
func (*YieldStmt) stmtNode()        {}
func (*TryStmt) stmtNode()          {}
func (*SwitchStmt) stmtNode()       {}
func (*SynchronizedStmt) stmtNode() {}
func (*LabeledStmt) stmtNode()      {}
func (*AssertStmt) stmtNode()       {}
func (*ExplicitCtorStmt) stmtNode() {}
func (*JumpStmt) stmtNode()         {}
func (*EmptyStmt) stmtNode()        {}

// ExprText renders an expression back to compact Java text. It is used
// for log messages and for the dotted-name fallback of field accesses.
func ExprText(e Expr) string {
	switch e := e.(type) {
	case *NameExpr:
		return e.Name
	case *FieldAccessExpr:
		return ExprText(e.Scope) + "." + e.Name
	case *ThisExpr:
		if e.Qualifier != "" {
			return e.Qualifier + ".this"
		}
		return "this"
	case *SuperExpr:
		if e.Qualifier != "" {
			return e.Qualifier + ".super"
		}
		return "super"
	case *MethodCallExpr:
		s := e.Name + "(...)"
		if e.Scope != nil {
			s = ExprText(e.Scope) + "." + s
		}
		return s
	case *LiteralExpr:
		return e.Value
	case *ClassLiteralExpr:
		return e.Type.String() + ".class"
	case *UnknownExpr:
		return e.Text
	case nil:
		return ""
	}
	return "<expr>"
}

// DottedName returns "a.b.c" when e is a chain of plain names and field
// accesses.
func DottedName(e Expr) (string, bool) {
	switch e := e.(type) {
	case *NameExpr:
		return e.Name, true
	case *FieldAccessExpr:
		scope, ok := DottedName(e.Scope)
		if !ok {
			return "", false
		}
		return scope + "." + e.Name, true
	}
	return "", false
}
