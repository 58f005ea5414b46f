package dom

import (
	"html"
	"strings"
)

// Void elements are serialized without a closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// MarshalHTML serializes a node tree to HTML text. Attributes appear in
// sorted order and character data is escaped, so output is deterministic
// and safe to embed. Fragments serialize as their children.
func MarshalHTML(n Node) string {
	var sb strings.Builder
	writeHTML(&sb, n)
	return sb.String()
}

func writeHTML(sb *strings.Builder, n Node) {
	switch node := n.(type) {
	case Text:
		sb.WriteString(html.EscapeString(node.Data()))
	case Element:
		tag := node.TagName()
		sb.WriteString("<")
		sb.WriteString(tag)
		for _, name := range node.AttrNames() {
			value, _ := node.Attr(name)
			sb.WriteString(" ")
			sb.WriteString(name)
			sb.WriteString(`="`)
			sb.WriteString(html.EscapeString(value))
			sb.WriteString(`"`)
		}
		sb.WriteString(">")
		if voidElements[tag] {
			return
		}
		for _, child := range node.Children() {
			writeHTML(sb, child)
		}
		sb.WriteString("</")
		sb.WriteString(tag)
		sb.WriteString(">")
	case Fragment:
		for _, child := range node.Children() {
			writeHTML(sb, child)
		}
	}
}
