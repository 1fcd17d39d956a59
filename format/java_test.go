package format

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/javaslice/java/codebase"
	"github.com/dhamidi/javaslice/slice"
)

func sliceOf(t *testing.T, files map[string]string, spec string) *slice.Result {
	t.Helper()
	cb, err := codebase.New("/src")
	require.NoError(t, err)
	for path, src := range files {
		require.NoError(t, cb.UpdateFile(path, []byte(src)))
	}
	seed, err := slice.ParseSeed(spec)
	require.NoError(t, err)
	decls, err := slice.FindSeed(cb, seed)
	require.NoError(t, err)
	res, err := slice.NewContext(cb).CloseOver(decls)
	require.NoError(t, err)
	return res
}

func javaText(t *testing.T, res *slice.Result, name string) string {
	t.Helper()
	u, ok := res.Units[name]
	require.True(t, ok, "unit %s", name)
	text, err := NewJavaUnitEncoder(nil).marshalUnit(u)
	require.NoError(t, err)
	return string(text)
}

const cartSource = `package shop;

import java.util.List;

public class Cart {
    private final List<Item> items;
    private int discount;

    public Cart(List<Item> items) {
        this.items = items;
    }

    public int total() {
        int sum = 0;
        for (Item i : items) {
            sum += i.price();
        }
        return sum;
    }

    public int discounted() {
        return total() - discount;
    }
}`

const itemSource = `package shop;

public class Item {
    private final int price;
    private String label;

    public Item(int price) {
        this.price = price;
    }

    public int price() {
        return price;
    }

    public String label() {
        return label;
    }
}`

func TestJavaUnitEncoderCopiesReachableMembers(t *testing.T) {
	res := sliceOf(t, map[string]string{
		"/src/shop/Cart.java": cartSource,
		"/src/shop/Item.java": itemSource,
	}, "shop.Cart#total")

	assert.Equal(t, `package shop;

import java.util.List;

public class Cart {
    private final List<Item> items;

    public Cart(List<Item> items) {
        this.items = items;
    }

    public int total() {
        int sum = 0;
        for (Item i : items) {
            sum += i.price();
        }
        return sum;
    }
}
`, javaText(t, res, "shop.Cart"))

	assert.Equal(t, `package shop;

public class Item {
    private final int price;

    public Item(int price) {
        this.price = price;
    }

    public int price() {
        return price;
    }
}
`, javaText(t, res, "shop.Item"))
}

func TestJavaUnitEncoderNestedEnum(t *testing.T) {
	src := `package p;

public class Outer {
    enum Color {
        RED("r"),
        GREEN("g"),
        BLUE("b");

        private final String code;

        Color(String code) {
            this.code = code;
        }

        String code() {
            return code;
        }
    }

    static String red() {
        return Color.RED.code();
    }

    static void unused() {
    }
}`
	res := sliceOf(t, map[string]string{"/src/p/Outer.java": src}, "p.Outer#red")

	assert.Equal(t, `package p;

public class Outer {
    enum Color {
        RED("r"),
        GREEN("g"),
        BLUE("b");

        private final String code;

        Color(String code) {
            this.code = code;
        }

        String code() {
            return code;
        }
    }

    static String red() {
        return Color.RED.code();
    }
}
`, javaText(t, res, "p.Outer"))
}

func TestJavaUnitEncoderHeader(t *testing.T) {
	res := sliceOf(t, map[string]string{
		"/src/p/Box.java": `package p;

import lombok.Data;

@Data
public class Box<T extends Comparable<T>> extends Base implements Cloneable {
    private T value;
    private int size;
}`,
		"/src/p/Base.java": `package p;

public abstract class Base {
    protected void touch() {}
}`,
	}, "p.Box#value")

	assert.Equal(t, `package p;

import lombok.Data;

@Data
public class Box<T extends Comparable<T>> extends Base implements Cloneable {
    private T value;
}
`, javaText(t, res, "p.Box"))

	assert.Equal(t, "package p;\n\npublic abstract class Base {\n}\n", javaText(t, res, "p.Base"))
}

func TestReindent(t *testing.T) {
	src := "void m() {\n            call();\n        }"
	assert.Equal(t, "void m() {\n        call();\n    }", reindent(src, 9, "    "))
	assert.Equal(t, "int x;", reindent("int x;", 5, ""))
	assert.Equal(t, "a {\n\n  b\n}", reindent("a {\n   \n    b\n  }", 3, ""))
}

func TestWriteUnits(t *testing.T) {
	res := sliceOf(t, map[string]string{
		"/src/shop/Cart.java": cartSource,
		"/src/shop/Item.java": itemSource,
	}, "shop.Cart#total")
	dir := t.TempDir()

	written, err := WriteUnits(dir, res)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "shop", "Cart.java"),
		filepath.Join(dir, "shop", "Item.java"),
	}, written)

	data, err := os.ReadFile(written[1])
	require.NoError(t, err)
	assert.Contains(t, string(data), "public int price()")
	assert.NotContains(t, string(data), "label")
}
