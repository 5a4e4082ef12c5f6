package docs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// page wraps body markup in a minimal rustdoc-like document.
func page(body string) string {
	return `<!DOCTYPE html><html><head><title>doc</title></head><body><main>` + body + `</main></body></html>`
}

func decl(sig string) string {
	return `<pre class="rust item-decl"><code>` + sig + `</code></pre>`
}

func topDoc(text string) string {
	return `<details class="toggle top-doc" open><summary class="hideme"><span>Expand description</span></summary><div class="docblock">` + text + `</div></details>`
}

var fnAddPage = page(decl(`pub fn add(a: <a class="primitive" href="https://doc.rust-lang.org/std/primitive.i32.html">i32</a>, b: i32) -&gt; i32`) +
	topDoc(`<p>Adds two numbers together.</p>`))

var structPage = page(decl(`pub struct MyStruct { /* private fields */ }`) +
	topDoc(`<p>A simple <code>struct</code> holding a value.</p>`) +
	`<div id="implementations-list"><details class="toggle implementors-toggle" open><summary><section id="impl-MyStruct" class="impl"><h3 class="code-header">impl MyStruct</h3></section></summary>
<div class="impl-items">
<section id="method.new" class="method"><h4 class="code-header">pub fn <a href="#method.new" class="fn">new</a>(value: i32) -&gt; Self</h4>
<div class="docblock"><p>Creates a new instance.</p></div></section>
<section id="method.get_value" class="method"><h4 class="code-header">pub fn <a href="#method.get_value" class="fn">get_value</a>(&amp;self) -&gt; i32</h4></section>
<section id="method.broken" class="method"><h4 class="code-header">   </h4></section>
<section id="method.headless" class="method"><span>no header here</span></section>
</div></details></div>`)

var traitPage = page(decl(`pub trait Shape { fn area(&amp;self) -&gt; f64; }`) +
	`<div class="impl-items"><section class="method"><h4 class="code-header">const SIDES: usize</h4></section></div>`)

var enumPage = page(decl(`pub enum Color { Red, Rgb(u8, u8, u8), }`) +
	topDoc(`<p>Colours.</p>`) +
	`<div class="variants">
<section id="variant.Red" class="variant"><h3 class="code-header">Red</h3></section>
<section id="variant.Rgb" class="variant"><h3 class="code-header">Rgb(u8, u8, u8)</h3></section>
<section id="variant.Empty" class="variant"><h3 class="code-header"></h3></section>
<section id="variant.Red2" class="variant"><h3 class="code-header">Red</h3></section>
</div>`)

var modulePage = page(decl(`pub mod utils`) +
	topDoc(`<p>Utility helpers.</p>`) +
	`<div class="item-table">
<div class="item-name"><a class="fn" href="fn.helper.html">helper</a></div>
<div class="item-name"><a class="struct" href="struct.Config.html">Config</a></div>
<div class="item-name"><a class="fn" href="fn.empty.html"></a></div>
</div>`)

var indexPage = page(`<h1>Crate mycrate</h1><div class="item-table"><div class="item-name"><a href="fn.add.html">add</a></div></div>`)

// writeTree creates files under root from a map of slash-separated relative
// paths to contents.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}
}
