package parser

import "encoding/json"

type jsonNode struct {
	Kind     string      `json:"kind"`
	Span     *jsonSpan   `json:"span,omitempty"`
	Text     string      `json:"text,omitempty"`
	Error    bool        `json:"error,omitempty"`
	Missing  bool        `json:"missing,omitempty"`
	Children []*jsonNode `json:"children,omitempty"`
}

type jsonSpan struct {
	Start jsonPosition `json:"start"`
	End   jsonPosition `json:"end"`
}

type jsonPosition struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.toJSON())
}

func (n *Node) toJSON() *jsonNode {
	start, end := n.Position(), n.EndPosition()
	jn := &jsonNode{
		Kind: n.Kind(),
		Span: &jsonSpan{
			Start: jsonPosition{Line: start.Line, Column: start.Column},
			End:   jsonPosition{Line: end.Line, Column: end.Column},
		},
		Error:   n.IsError(),
		Missing: n.IsMissing(),
	}

	named := n.NamedChildren()
	if len(named) == 0 {
		jn.Text = n.Text()
	}
	if len(named) > 0 {
		jn.Children = make([]*jsonNode, len(named))
		for i, child := range named {
			jn.Children[i] = child.toJSON()
		}
	}

	return jn
}
