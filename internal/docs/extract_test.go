package docs_test

import (
	"testing"

	"github.com/jcdickinson/ferrisdoc/internal/docs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	t.Parallel()

	t.Run("function with description", func(t *testing.T) {
		t.Parallel()

		item, err := docs.Extract(fnAddPage, "fn.add.html")

		require.NoError(t, err)
		fn, ok := item.(*docs.Function)
		require.True(t, ok, "got %T", item)
		assert.Equal(t, "add", fn.Name)
		assert.Equal(t, "pub fn add(a: i32, b: i32) -> i32", fn.Signature)
		require.NotNil(t, fn.Description)
		assert.Equal(t, "Adds two numbers together.", *fn.Description)
	})

	t.Run("struct methods in document order", func(t *testing.T) {
		t.Parallel()

		item, err := docs.Extract(structPage, "struct.MyStruct.html")

		require.NoError(t, err)
		st, ok := item.(*docs.Struct)
		require.True(t, ok, "got %T", item)
		assert.Equal(t, "MyStruct", st.Name)
		assert.Equal(t, "pub struct MyStruct { /* private fields */ }", st.Signature)
		require.NotNil(t, st.Description)
		assert.Equal(t, "A simple struct holding a value.", *st.Description)

		require.Len(t, st.Methods, 2)
		assert.Equal(t, "new", st.Methods[0].Name)
		assert.Equal(t, "pub fn new(value: i32) -> Self", st.Methods[0].Signature)
		require.NotNil(t, st.Methods[0].Description)
		assert.Equal(t, "Creates a new instance.", *st.Methods[0].Description)
		assert.Equal(t, "get_value", st.Methods[1].Name)
		assert.Equal(t, "pub fn get_value(&self) -> i32", st.Methods[1].Signature)
		assert.Nil(t, st.Methods[1].Description)
	})

	t.Run("trait method without fn shape is unknown", func(t *testing.T) {
		t.Parallel()

		item, err := docs.Extract(traitPage, "trait.Shape.html")

		require.NoError(t, err)
		tr, ok := item.(*docs.Trait)
		require.True(t, ok, "got %T", item)
		assert.Equal(t, "pub trait Shape { fn area(&self) -> f64; }", tr.Signature)
		assert.Nil(t, tr.Description)
		require.Len(t, tr.Methods, 1)
		assert.Equal(t, "unknown", tr.Methods[0].Name)
		assert.Equal(t, "const SIDES: usize", tr.Methods[0].Signature)
	})

	t.Run("enum variants keep duplicates and skip empty", func(t *testing.T) {
		t.Parallel()

		item, err := docs.Extract(enumPage, "enum.Color.html")

		require.NoError(t, err)
		en, ok := item.(*docs.Enum)
		require.True(t, ok, "got %T", item)
		assert.Equal(t, []string{"Red", "Rgb(u8, u8, u8)", "Red"}, en.Variants)
	})

	t.Run("module lists linked items", func(t *testing.T) {
		t.Parallel()

		item, err := docs.Extract(modulePage, "module.utils.html")

		require.NoError(t, err)
		mod, ok := item.(*docs.Module)
		require.True(t, ok, "got %T", item)
		assert.Equal(t, "utils", mod.Name)
		assert.Equal(t, []string{"helper", "Config"}, mod.Items)
		require.NotNil(t, mod.Description)
		assert.Equal(t, "Utility helpers.", *mod.Description)
	})

	t.Run("simple kinds", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			file string
			kind docs.ItemKind
		}{
			{"macro.vec.html", docs.KindMacro},
			{"type.Result.html", docs.KindType},
			{"constant.MAX.html", docs.KindConstant},
		}
		for _, tt := range tests {
			item, err := docs.Extract(page(decl("pub const MAX: u32 = 10;")), tt.file)
			require.NoError(t, err)
			require.NotNil(t, item)
			assert.Equal(t, tt.kind, item.Kind())
			assert.Nil(t, docs.ItemDescription(item))
		}
	})

	t.Run("quotes in signature survive", func(t *testing.T) {
		t.Parallel()

		item, err := docs.Extract(page(decl(`pub const GREETING: &amp;str = "hi";`)), "constant.GREETING.html")

		require.NoError(t, err)
		c, ok := item.(*docs.Constant)
		require.True(t, ok, "got %T", item)
		assert.Equal(t, `pub const GREETING: &str = "hi";`, c.Signature)
	})

	t.Run("no-break spaces survive as entities", func(t *testing.T) {
		t.Parallel()

		item, err := docs.Extract(page(decl(`pub fn f&lt;T&gt;()<br>where&nbsp;&nbsp;T: Clone`)+
			topDoc(`<p>Clones&nbsp;it.</p>`)), "fn.f.html")

		require.NoError(t, err)
		fn, ok := item.(*docs.Function)
		require.True(t, ok, "got %T", item)
		assert.Equal(t, "pub fn f<T>()where&nbsp;&nbsp;T: Clone", fn.Signature)
		require.NotNil(t, fn.Description)
		assert.Equal(t, "Clones&nbsp;it.", *fn.Description)
	})

	t.Run("page without declaration is skipped", func(t *testing.T) {
		t.Parallel()

		item, err := docs.Extract(indexPage, "index.html")

		require.NoError(t, err)
		assert.Nil(t, item)
	})

	t.Run("empty declaration is skipped", func(t *testing.T) {
		t.Parallel()

		item, err := docs.Extract(page(decl(`<span> </span>`)), "fn.nothing.html")

		require.NoError(t, err)
		assert.Nil(t, item)
	})

	t.Run("blank description is absent", func(t *testing.T) {
		t.Parallel()

		item, err := docs.Extract(page(decl("pub fn f()")+topDoc("<p>  </p>")), "fn.f.html")

		require.NoError(t, err)
		require.NotNil(t, item)
		assert.Nil(t, docs.ItemDescription(item))
	})

	t.Run("malformed file name with declaration fails", func(t *testing.T) {
		t.Parallel()

		_, err := docs.Extract(fnAddPage, "index.html")

		require.ErrorIs(t, err, docs.ErrMalformedFileName)
	})
}
