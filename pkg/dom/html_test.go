package dom

import "testing"

func TestMarshalHTML(t *testing.T) {
	host := NewMemoryHost()

	div := host.CreateElement("div")
	div.SetAttr("class", "panel")
	div.SetAttr("id", "main")

	span := host.CreateElement("span")
	span.Append(host.CreateText("a < b & c"))
	div.Append(span)
	div.Append(host.CreateElement("br"))

	want := `<div class="panel" id="main"><span>a &lt; b &amp; c</span><br></div>`
	if got := MarshalHTML(div); got != want {
		t.Errorf("MarshalHTML = %q, want %q", got, want)
	}
}

func TestMarshalHTMLFragment(t *testing.T) {
	host := NewMemoryHost()
	frag := host.CreateFragment()
	frag.Append(host.CreateText("one"))
	em := host.CreateElement("em")
	em.Append(host.CreateText("two"))
	frag.Append(em)

	if got := MarshalHTML(frag); got != "one<em>two</em>" {
		t.Errorf("MarshalHTML = %q", got)
	}
}

func TestMarshalHTMLEscapesAttributes(t *testing.T) {
	host := NewMemoryHost()
	a := host.CreateElement("a")
	a.SetAttr("title", `say "hi"`)
	want := `<a title="say &#34;hi&#34;"></a>`
	if got := MarshalHTML(a); got != want {
		t.Errorf("MarshalHTML = %q, want %q", got, want)
	}
}
