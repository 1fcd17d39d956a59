package java

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/javaslice/java/parser"
)

func mustUnit(t *testing.T, src string) *SourceUnit {
	t.Helper()
	u, err := UnitFromSource([]byte(src), parser.WithFile("Test.java"))
	require.NoError(t, err)
	return u
}

func TestUnitHeader(t *testing.T) {
	u := mustUnit(t, `package com.acme.orders;

import java.util.List;
import java.util.*;
import static java.util.Collections.emptyList;
import static com.acme.Constants.*;

public class Order {}
`)
	assert.Equal(t, "Test.java", u.Path)
	assert.Equal(t, "com.acme.orders", u.Package)
	assert.Equal(t, []Import{
		{Name: "java.util.List"},
		{Name: "java.util", IsWildcard: true},
		{Name: "java.util.Collections.emptyList", IsStatic: true},
		{Name: "com.acme.Constants", IsStatic: true, IsWildcard: true},
	}, u.Imports)
	require.Len(t, u.Types, 1)
	assert.Equal(t, "com.acme.orders.Order", u.Types[0].QualifiedName)
	assert.Equal(t, "import static com.acme.Constants.*;", u.Imports[3].String())
}

func TestDeclarationKeys(t *testing.T) {
	u := mustUnit(t, `package com.acme;

import java.util.List;
import java.util.Map;

public class Outer<T> {
    private int count, total[];
    Outer(String name) {}
    public List<String> names(Map<String, Integer> index, int[] ids, String... rest) { return null; }

    static class Inner {
        void run() {}
    }

    enum Color { RED, GREEN }
}
`)
	outer := u.Types[0]
	assert.Equal(t, Key("com.acme.Outer"), outer.Key())
	assert.Nil(t, outer.Owner())
	assert.Same(t, u, outer.Unit())

	require.Len(t, outer.Fields, 2)
	assert.Equal(t, Key("com.acme.Outer#count"), outer.Fields[0].Key())
	assert.Equal(t, Key("com.acme.Outer#total"), outer.Fields[1].Key())
	assert.Equal(t, 1, outer.Fields[1].Type.ArrayDepth)
	assert.Equal(t, "private int total[];", outer.Fields[1].Source)

	require.Len(t, outer.Constructors, 1)
	assert.Equal(t, Key("com.acme.Outer#<init>(String)"), outer.Constructors[0].Key())

	require.Len(t, outer.Methods, 1)
	m := outer.Methods[0]
	assert.Equal(t, Key("com.acme.Outer#names(Map,int[],String[])"), m.Key())
	assert.Equal(t, "names(Map,int[],String[])", m.Signature())
	assert.True(t, m.IsVarargs())
	assert.Equal(t, "List", m.ReturnType.Name)
	require.Len(t, m.ReturnType.TypeArguments, 1)
	assert.Equal(t, "String", m.ReturnType.TypeArguments[0].Name)

	inner := outer.NestedType("Inner")
	require.NotNil(t, inner)
	assert.Equal(t, Key("com.acme.Outer.Inner"), inner.Key())
	assert.Same(t, outer, inner.Owner())
	assert.Same(t, outer, inner.Outermost())
	assert.Equal(t, Key("com.acme.Outer.Inner#run()"), inner.Methods[0].Key())

	color := outer.NestedType("Color")
	require.NotNil(t, color)
	assert.True(t, color.IsEnum())
	require.Len(t, color.EnumConstants, 2)
	assert.Equal(t, Key("com.acme.Outer.Color#GREEN"), color.EnumConstants[1].Key())

	require.Len(t, outer.TypeParameters, 1)
	assert.Equal(t, "T", outer.TypeParameters[0].Name)
}

func TestTypeHeaders(t *testing.T) {
	u := mustUnit(t, `package p;

@Entity
@Table(name = "orders")
public abstract class Order extends Base<Long> implements Serializable, Comparable<Order> {}

interface Repo<T> extends Crud<T, Long>, Paging {}

record Point(int x, @NonNull Integer y) implements Shape {}

@interface Marker { String value() default ""; }
`)
	order := u.Types[0]
	assert.Equal(t, ClassKindClass, order.ClassKind)
	assert.True(t, order.IsAbstract())
	assert.Equal(t, VisibilityPublic, order.Visibility())
	assert.True(t, order.HasAnnotation("javax.persistence.Entity"))
	table, ok := FindAnnotation(order.Annotations, "Table")
	require.True(t, ok)
	value, ok := table.Argument("name")
	require.True(t, ok)
	assert.Equal(t, &LiteralExpr{Kind: LiteralString, Value: `"orders"`}, value)
	require.NotNil(t, order.SuperClass)
	assert.Equal(t, "Base", order.SuperClass.Name)
	assert.Equal(t, []string{"Serializable", "Comparable"}, names(order.Interfaces))

	repo := u.Types[1]
	assert.True(t, repo.IsInterface())
	assert.Equal(t, []string{"Crud", "Paging"}, names(repo.Interfaces))

	point := u.Types[2]
	assert.True(t, point.IsRecord())
	require.Len(t, point.RecordComponents, 2)
	assert.Equal(t, "y", point.RecordComponents[1].Name)
	assert.Equal(t, "Integer", point.RecordComponents[1].Type.Name)
	assert.Equal(t, "NonNull", point.RecordComponents[1].Annotations[0].Name)

	marker := u.Types[3]
	assert.Equal(t, ClassKindAnnotation, marker.ClassKind)
	require.Len(t, marker.Methods, 1)
	assert.Equal(t, "value", marker.Methods[0].Name)
}

func names(refs []TypeRef) []string {
	var out []string
	for _, r := range refs {
		out = append(out, r.Name)
	}
	return out
}

func TestMethodBody(t *testing.T) {
	u := mustUnit(t, `package p;
class Service {
    private Repo repo;

    Result handle(Request req) throws IOException {
        var order = repo.find(req.id());
        for (int i = 0; i < 10; i++) { log(i); }
        for (Item item : order.items) { item.touch(); }
        try (var in = open()) {
            in.read();
        } catch (IOException | RuntimeException e) {
            throw new IllegalStateException(e);
        } finally {
            close();
        }
        if (order instanceof Special s) { return s.result(); }
        Runnable r = () -> this.repo.flush();
        list.forEach(Item::touch);
        return switch (order.kind()) {
            case A -> new Result(1);
            default -> { yield Result.EMPTY; }
        };
    }
}
`)
	m := u.Types[0].Methods[0]
	require.NotNil(t, m.Body)
	assert.Equal(t, []string{"IOException"}, names(m.Throws))
	stmts := m.Body.Stmts
	require.Len(t, stmts, 8)

	local, ok := stmts[0].(*LocalVarStmt)
	require.True(t, ok)
	assert.True(t, local.Type.IsVar())
	call, ok := local.Variables[0].Init.(*MethodCallExpr)
	require.True(t, ok)
	assert.Equal(t, "find", call.Name)
	assert.Equal(t, &NameExpr{Name: "repo"}, call.Scope)
	require.Len(t, call.Arguments, 1)
	inner, ok := call.Arguments[0].(*MethodCallExpr)
	require.True(t, ok)
	assert.Equal(t, "id", inner.Name)

	loop, ok := stmts[1].(*ForStmt)
	require.True(t, ok)
	require.Len(t, loop.Init, 1)
	assert.IsType(t, &BinaryExpr{}, loop.Condition)
	require.Len(t, loop.Update, 1)
	assert.IsType(t, &UnaryExpr{}, loop.Update[0])

	each, ok := stmts[2].(*ForEachStmt)
	require.True(t, ok)
	assert.Equal(t, "item", each.Variable.Name)
	assert.Equal(t, "Item", each.Variable.Type.Name)
	assert.Equal(t, &FieldAccessExpr{Scope: &NameExpr{Name: "order"}, Name: "items"}, each.Iterable)

	try, ok := stmts[3].(*TryStmt)
	require.True(t, ok)
	require.Len(t, try.Resources, 1)
	require.Len(t, try.Catches, 1)
	assert.Equal(t, "e", try.Catches[0].Parameter.Name)
	assert.Len(t, try.Catches[0].Parameter.Type.Alternatives, 2)
	require.NotNil(t, try.Finally)

	ifs, ok := stmts[4].(*IfStmt)
	require.True(t, ok)
	inst, ok := ifs.Condition.(*InstanceOfExpr)
	require.True(t, ok)
	assert.Equal(t, "Special", inst.Type.Name)
	assert.Equal(t, "s", inst.Binding)

	lambdaDecl, ok := stmts[5].(*LocalVarStmt)
	require.True(t, ok)
	lambda, ok := lambdaDecl.Variables[0].Init.(*LambdaExpr)
	require.True(t, ok)
	flush, ok := lambda.BodyExpr.(*MethodCallExpr)
	require.True(t, ok)
	assert.Equal(t, &FieldAccessExpr{Scope: &ThisExpr{}, Name: "repo"}, flush.Scope)

	forEach := stmts[6].(*ExprStmt).Expr.(*MethodCallExpr)
	ref, ok := forEach.Arguments[0].(*MethodRefExpr)
	require.True(t, ok)
	assert.Equal(t, "touch", ref.Name)

	ret, ok := stmts[7].(*ReturnStmt)
	require.True(t, ok)
	sw, ok := ret.Value.(*SwitchExpr)
	require.True(t, ok)
	require.Len(t, sw.Cases, 2)
	assert.True(t, sw.Cases[1].Default)
}

func TestConstructorBody(t *testing.T) {
	u := mustUnit(t, `package p;
class Child extends Parent {
    private final String name;
    Child(String name) {
        super(name.trim());
        this.name = name;
    }
}
`)
	ctor := u.Types[0].Constructors[0]
	require.NotNil(t, ctor.Body)
	require.Len(t, ctor.Body.Stmts, 2)
	explicit, ok := ctor.Body.Stmts[0].(*ExplicitCtorStmt)
	require.True(t, ok)
	assert.True(t, explicit.IsSuper)
	require.Len(t, explicit.Arguments, 1)
	assign := ctor.Body.Stmts[1].(*ExprStmt).Expr.(*AssignExpr)
	assert.Equal(t, "=", assign.Operator)
	assert.Equal(t, &FieldAccessExpr{Scope: &ThisExpr{}, Name: "name"}, assign.Target)
}

func TestObjectCreationAndAnonymousBody(t *testing.T) {
	u := mustUnit(t, `package p;
class A {
    Object make() {
        return new Comparator<String>() {
            public int compare(String a, String b) { return helper(a); }
        };
    }
}
`)
	ret := u.Types[0].Methods[0].Body.Stmts[0].(*ReturnStmt)
	oc, ok := ret.Value.(*ObjectCreationExpr)
	require.True(t, ok)
	assert.Equal(t, "Comparator", oc.Type.Name)
	require.NotNil(t, oc.AnonymousBody)
	require.Len(t, oc.AnonymousBody.Methods, 1)
	assert.Equal(t, "compare", oc.AnonymousBody.Methods[0].Name)
}

func TestEnumConstants(t *testing.T) {
	u := mustUnit(t, `package p;
enum Planet {
    MERCURY(3.303e+23, Units.RADIUS),
    EARTH(5.976e+24, 6.37814e6) {
        double gravity() { return 9.8; }
    };

    private final double mass;
    Planet(double mass, double radius) { this.mass = mass; }
}
`)
	planet := u.Types[0]
	require.Len(t, planet.EnumConstants, 2)
	mercury := planet.EnumConstants[0]
	require.Len(t, mercury.Arguments, 2)
	assert.Equal(t, &FieldAccessExpr{Scope: &NameExpr{Name: "Units"}, Name: "RADIUS"}, mercury.Arguments[1])
	assert.NotNil(t, planet.EnumConstants[1].Body)
	assert.Len(t, planet.Fields, 1)
	assert.Len(t, planet.Constructors, 1)
}

func TestAnnotationArguments(t *testing.T) {
	u := mustUnit(t, `package p;
class A {
    @JsonSubTypes({@Type(value = B.class, name = "b"), @Type(C.class)})
    @Size(max = Limits.MAX + 1)
    Object value;
}
`)
	f := u.Types[0].Fields[0]
	require.Len(t, f.Annotations, 2)
	arr, ok := f.Annotations[0].Arguments[0].Value.(*ArrayInitExpr)
	require.True(t, ok)
	require.Len(t, arr.Values, 2)
	nested, ok := arr.Values[0].(*AnnotationExpr)
	require.True(t, ok)
	cls, ok := nested.Annotation.Argument("value")
	require.True(t, ok)
	assert.Equal(t, &ClassLiteralExpr{Type: TypeRef{Name: "B", Source: "B"}}, cls)

	size, ok := f.Annotations[1].Argument("max")
	require.True(t, ok)
	assert.IsType(t, &BinaryExpr{}, size)
}

func TestRecoversFromSyntaxErrors(t *testing.T) {
	u := mustUnit(t, `package p;
class A {
    int ok;
    void broken( { }
    void fine() {}
}
`)
	require.NotEmpty(t, u.Types)
	assert.NotNil(t, u.Types[0].Field("ok"))
}

func TestDottedName(t *testing.T) {
	e := &FieldAccessExpr{Scope: &FieldAccessExpr{Scope: &NameExpr{Name: "java"}, Name: "util"}, Name: "List"}
	name, ok := DottedName(e)
	assert.True(t, ok)
	assert.Equal(t, "java.util.List", name)

	_, ok = DottedName(&FieldAccessExpr{Scope: &ThisExpr{}, Name: "x"})
	assert.False(t, ok)
}
