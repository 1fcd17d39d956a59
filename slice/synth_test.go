package slice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataHolderKeepsAnnotationsAndRequiredFields(t *testing.T) {
	cb := newIndex(t, map[string]string{
		"/src/p/Order.java": `package p;

import jakarta.persistence.Entity;
import jakarta.persistence.Id;
import jakarta.persistence.Table;

@Entity
@Table(name = Names.ORDERS)
public class Order {
    @Id
    private Long id;
    private String note;
}`,
		"/src/p/Names.java": `package p;
public class Names {
    static final String ORDERS = "orders";
    static final String OTHER = "other";
}`,
		"/src/p/Use.java": `package p;
public class Use {
    Order order;
}`,
	})

	res := sliceSeed(t, cb, "p.Use#order")

	keys := resultKeys(res)
	assert.Contains(t, keys, "p.Order#id")
	assert.NotContains(t, keys, "p.Order#note")
	assert.Contains(t, keys, "p.Names#ORDERS")
	assert.NotContains(t, keys, "p.Names#OTHER")

	order := res.Units["p.Order"].Root()
	require.Len(t, order.Annotations, 2)
	assert.Equal(t, "Entity", order.Annotations[0].Name)
	assert.Equal(t, "Table", order.Annotations[1].Name)
}

func TestPlainTypeDropsAnnotations(t *testing.T) {
	cb := newIndex(t, map[string]string{"/src/p/Svc.java": `package p;

@Deprecated
public class Svc {
    void run() {}
}`})

	res := sliceSeed(t, cb, "p.Svc#run")

	assert.Empty(t, res.Units["p.Svc"].Root().Annotations)
}

func TestRequiredArgsFields(t *testing.T) {
	cb := newIndex(t, map[string]string{"/src/p/Holder.java": `package p;

import lombok.NonNull;
import lombok.RequiredArgsConstructor;

@RequiredArgsConstructor
public class Holder {
    private final String required;
    private final String preset = "x";
    @NonNull private String checked;
    private String optional;
    private static final int CONSTANT = 1;

    void run() {}
}`})

	res := sliceSeed(t, cb, "p.Holder#run")

	keys := resultKeys(res)
	assert.Contains(t, keys, "p.Holder#required")
	assert.Contains(t, keys, "p.Holder#checked")
	assert.NotContains(t, keys, "p.Holder#preset")
	assert.NotContains(t, keys, "p.Holder#optional")
	assert.NotContains(t, keys, "p.Holder#CONSTANT")
}

func TestSyntheticMembersInSourceOrder(t *testing.T) {
	cb := newIndex(t, map[string]string{"/src/p/S.java": `package p;
public class S {
    void c() {}
    void b() { c(); }
    void a() { b(); }
}`})

	res := sliceSeed(t, cb, "p.S#a")

	var names []string
	for _, d := range res.Units["p.S"].Root().Members() {
		names = append(names, string(d.Key()))
	}
	assert.Equal(t, []string{"p.S#c()", "p.S#b()", "p.S#a()"}, names)
}

func TestImportsOfUnslicedTypesAreDropped(t *testing.T) {
	cb := newIndex(t, map[string]string{
		"/src/p2/Unused.java": `package p2;
public class Unused {}`,
		"/src/p2/Used.java": `package p2;
public class Used {}`,
		"/src/p3/Other.java": `package p3;
public class Other {}`,
		"/src/p/Q.java": `package p;

import java.util.List;
import java.util.concurrent.*;
import p2.Unused;
import p2.Used;
import p3.*;

public class Q {
    List<Used> items;
}`,
	})

	res := sliceSeed(t, cb, "p.Q#items")

	var imports []string
	for _, imp := range res.Units["p.Q"].Imports {
		imports = append(imports, imp.String())
	}
	assert.Equal(t, []string{
		"import java.util.List;",
		"import java.util.concurrent.*;",
		"import p2.Used;",
	}, imports)
}
