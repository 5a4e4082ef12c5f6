package docs_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/jcdickinson/ferrisdoc/internal/docs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	t.Run("returns function with signature and description", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeTree(t, root, map[string]string{"crate/fn.add.html": fnAddPage})

		doc, err := docs.Lookup(root, "crate", docs.Query{Limit: docs.NoLimit})

		require.NoError(t, err)
		assert.Equal(t, "crate", doc.Name)
		require.Len(t, doc.Items, 1)
		assert.Equal(t, &docs.Function{
			Name:        "add",
			Signature:   "pub fn add(a: i32, b: i32) -> i32",
			Description: ptr("Adds two numbers together."),
		}, doc.Items[0])
	})

	t.Run("paginates", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		files := map[string]string{}
		for i := 1; i <= 5; i++ {
			files[fmt.Sprintf("crate/fn.f%d.html", i)] = page(decl(fmt.Sprintf("pub fn f%d()", i)))
		}
		writeTree(t, root, files)

		doc, err := docs.Lookup(root, "crate", docs.Query{Offset: 1, Limit: 2})

		require.NoError(t, err)
		assert.Equal(t, []string{"f2", "f3"}, itemNames(doc.Items))
	})

	t.Run("filters by kind", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeTree(t, root, map[string]string{
			"crate/fn.add.html":             fnAddPage,
			"crate/struct.MyStruct.html":    structPage,
			"crate/utils/module.utils.html": modulePage,
		})

		doc, err := docs.Lookup(root, "crate", docs.Query{Kind: "Struct", Limit: docs.NoLimit})

		require.NoError(t, err)
		assert.Equal(t, []string{"MyStruct"}, itemNames(doc.Items))
	})

	t.Run("unknown crate is not found", func(t *testing.T) {
		t.Parallel()

		_, err := docs.Lookup(t.TempDir(), "nope", docs.Query{Limit: docs.NoLimit})

		require.ErrorIs(t, err, docs.ErrNotFound)
	})

	t.Run("malformed page fails the whole lookup", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeTree(t, root, map[string]string{
			"crate/fn.add.html": fnAddPage,
			"crate/broken.html": fnAddPage,
		})

		doc, err := docs.Lookup(root, "crate", docs.Query{Limit: docs.NoLimit})

		require.ErrorIs(t, err, docs.ErrMalformedFileName)
		assert.Nil(t, doc)
	})
}

func TestDocumentationJSON(t *testing.T) {
	t.Parallel()

	doc := docs.Documentation{
		Name: "crate",
		Items: []docs.Item{
			&docs.Function{Name: "add", Signature: "pub fn add()"},
			&docs.Module{Name: "utils", Description: ptr("Helpers."), Items: []string{"helper"}},
			&docs.Struct{Name: "S", Signature: "pub struct S", Methods: []docs.Method{{Name: "new", Signature: "pub fn new()"}}},
		},
	}

	out, err := json.Marshal(doc)

	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "crate",
		"items": [
			{"Function": {"name": "add", "signature": "pub fn add()", "description": null}},
			{"Module": {"name": "utils", "description": "Helpers.", "items": ["helper"]}},
			{"Struct": {"name": "S", "signature": "pub struct S", "description": null,
				"methods": [{"name": "new", "signature": "pub fn new()", "description": null}]}}
		]
	}`, string(out))
}
