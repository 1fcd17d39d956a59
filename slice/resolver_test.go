package slice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/javaslice/java"
)

func TestScopeChainBindsAgainstReturnType(t *testing.T) {
	cb := newIndex(t, map[string]string{
		"/src/p/Address.java": `package p;
public class Address {
    String street;
}`,
		"/src/p/Customer.java": `package p;
public class Customer {
    Address address;
    String name;
}`,
		"/src/p/OrderService.java": `package p;
public class OrderService {
    String address;

    Customer getCustomer() {
        return null;
    }
}`,
		"/src/p/Checkout.java": `package p;
public class Checkout {
    private OrderService orderService;

    void run() {
        Object a = orderService.getCustomer().address;
    }
}`,
	})

	res := sliceSeed(t, cb, "p.Checkout#run")

	keys := resultKeys(res)
	assert.Contains(t, keys, "p.Checkout#orderService")
	assert.Contains(t, keys, "p.OrderService#getCustomer()")
	assert.Contains(t, keys, "p.Customer#address")
	assert.Contains(t, keys, "p.Address")
	assert.NotContains(t, keys, "p.OrderService#address")
	assert.NotContains(t, keys, "p.Customer#name")
}

func TestAccessorFallback(t *testing.T) {
	files := func(marker string) map[string]string {
		return map[string]string{
			"/src/p/Customer.java": `package p;

import lombok.Data;

` + marker + `
public class Customer {
    private String name;
    private boolean active;
    private int age;
}`,
			"/src/p/Greeter.java": `package p;
public class Greeter {
    String greet(Customer c) {
        c.setAge(3);
        return c.isActive() ? c.getName() : "";
    }
}`,
		}
	}

	t.Run("marker", func(t *testing.T) {
		res := sliceSeed(t, newIndex(t, files("@Data")), "p.Greeter#greet")
		keys := resultKeys(res)
		assert.Contains(t, keys, "p.Customer#name")
		assert.Contains(t, keys, "p.Customer#active")
		assert.Contains(t, keys, "p.Customer#age")
		assert.Empty(t, res.Unresolved)
	})

	t.Run("no marker", func(t *testing.T) {
		res := sliceSeed(t, newIndex(t, files("")), "p.Greeter#greet")
		keys := resultKeys(res)
		assert.NotContains(t, keys, "p.Customer#name")
		assert.Contains(t, res.Unresolved, UnresolvedReference{Text: "Customer.getName(...)", Scope: "p.Greeter#greet(Customer)"})
	})
}

func TestUnresolvedReferencesDoNotStopTheWalk(t *testing.T) {
	cb := newIndex(t, map[string]string{"/src/p/S.java": `package p;
public class S {
    int f;

    void m() {
        Unknown.call();
        missing();
        int x = nowhere.field.deeper;
        n();
        f = 2;
    }

    void n() {}
}`})

	res := sliceSeed(t, cb, "p.S#m")

	keys := resultKeys(res)
	assert.Contains(t, keys, "p.S#n()")
	assert.Contains(t, keys, "p.S#f")
	texts := make([]string, 0, len(res.Unresolved))
	for _, r := range res.Unresolved {
		texts = append(texts, r.Text)
	}
	assert.Contains(t, texts, "Unknown.call(...)")
	assert.Contains(t, texts, "missing(...)")
	assert.Contains(t, texts, "nowhere.field.deeper")
}

func TestLocalsShadowFields(t *testing.T) {
	cb := newIndex(t, map[string]string{"/src/p/S.java": `package p;
public class S {
    int count;
    int other;

    void m(int count) {
        count++;
        for (int other = 0; other < 3; other++) {
        }
    }
}`})

	res := sliceSeed(t, cb, "p.S#m")

	keys := resultKeys(res)
	assert.NotContains(t, keys, "p.S#count")
	assert.NotContains(t, keys, "p.S#other")
}

func TestStaticImportedConstant(t *testing.T) {
	cb := newIndex(t, map[string]string{
		"/src/p/Limits.java": `package p;
public class Limits {
    public static final int MAX = 3;
    public static final int MIN = 0;
}`,
		"/src/q/Q.java": `package q;

import static p.Limits.MAX;
import static p.Limits.MIN;

public class Q {
    int m() {
        return MAX;
    }
}`,
	})

	res := sliceSeed(t, cb, "q.Q#m")

	keys := resultKeys(res)
	assert.Contains(t, keys, "p.Limits#MAX")
	assert.NotContains(t, keys, "p.Limits#MIN")
	imports := res.Units["q.Q"].Imports
	require.Len(t, imports, 1)
	assert.Equal(t, "import static p.Limits.MAX;", imports[0].String())
}

func TestLambdasAndMethodReferences(t *testing.T) {
	cb := newIndex(t, map[string]string{
		"/src/p/U.java": `package p;
public class U {
    static int twice(int x) {
        return 2 * x;
    }

    static int twice(int x, int y) {
        return 2 * x * y;
    }
}`,
		"/src/p/V.java": `package p;

import java.util.List;

public class V {
    void run(List<Integer> xs) {
        xs.stream().map(U::twice);
        xs.forEach(x -> helper(x));
    }

    void helper(int x) {}
}`,
	})

	res := sliceSeed(t, cb, "p.V#run")

	keys := resultKeys(res)
	assert.Contains(t, keys, "p.U#twice(int)")
	assert.Contains(t, keys, "p.U#twice(int,int)")
	assert.Contains(t, keys, "p.V#helper(int)")
}

func TestAnonymousClassBody(t *testing.T) {
	cb := newIndex(t, map[string]string{
		"/src/p/Task.java": `package p;
public abstract class Task {
    abstract void execute();
    void log(String s) {}
}`,
		"/src/p/Runner.java": `package p;
public class Runner {
    int runs;

    void start() {
        Task t = new Task() {
            @Override
            void execute() {
                log("go");
                runs++;
            }
        };
    }
}`,
	})

	res := sliceSeed(t, cb, "p.Runner#start")

	keys := resultKeys(res)
	assert.Contains(t, keys, "p.Task#execute()")
	assert.Contains(t, keys, "p.Task#log(String)")
	assert.Contains(t, keys, "p.Runner#runs")
}

func TestOverloadPreference(t *testing.T) {
	cb := newIndex(t, map[string]string{
		"/src/p/Item.java": `package p;
public class Item {}`,
		"/src/p/Printer.java": `package p;
public class Printer {
    void print(Item item) {}
    void print(String text) {}

    void run(Item item) {
        print(item);
    }
}`,
	})

	res := sliceSeed(t, cb, "p.Printer#run")

	keys := resultKeys(res)
	assert.Contains(t, keys, "p.Printer#print(Item)")
	assert.NotContains(t, keys, "p.Printer#print(String)")
}

func TestScopeChainFlattening(t *testing.T) {
	// a.b().c
	e := &java.FieldAccessExpr{
		Scope: &java.MethodCallExpr{Scope: &java.NameExpr{Name: "a"}, Name: "b"},
		Name:  "c",
	}

	chain := scopeChain(e)

	require.Len(t, chain, 3)
	assert.Equal(t, &java.NameExpr{Name: "a"}, chain[0])
	assert.Equal(t, "b", chain[1].(*java.MethodCallExpr).Name)
	assert.Same(t, e, chain[2])
}
