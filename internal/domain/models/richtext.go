package models

// RichText is editor state stored as a tree of nodes. Only the parts the
// server reads are modelled; unknown node attributes are dropped.
type RichText struct {
	Root *RichTextNode `bson:"root,omitempty" json:"root,omitempty"`
}

// RichTextNode is one node in a RichText tree.
type RichTextNode struct {
	Type     string         `bson:"type" json:"type"`
	Text     string         `bson:"text,omitempty" json:"text,omitempty"`
	Children []RichTextNode `bson:"children,omitempty" json:"children,omitempty"`
}

// IsEmpty reports whether the tree has no root.
func (rt RichText) IsEmpty() bool {
	return rt.Root == nil
}
