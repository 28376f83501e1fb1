package bst

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[T any] struct {
	idTable map[*node[T]]int
	max     int
}

func newtable[T any]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*node[T]]int),
		max:     1,
	}
}

func (ids nodeids[T]) find(n *node[T]) int {
	return ids.idTable[n]
}

func (ids *nodeids[T]) alloc(n *node[T]) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// ToDot outputs the structure of a tree in Graphviz DOT format
// (for debugging purposes). label renders an element; if it is nil, elements
// are rendered with fmt's %v verb.
//
// Empty child slots of inner nodes are drawn as small black circles.
func (t *Tree[T]) ToDot(w io.Writer, label func(T) string) error {
	if err := t.valid("bst.ToDot"); err != nil {
		return err
	}
	if label == nil {
		label = func(v T) string { return fmt.Sprintf("%v", v) }
	}
	var nodelist, edgelist strings.Builder
	ids := newtable[T]()
	nilid := 10000
	empty := func(parent int) {
		nilid++
		fmt.Fprintf(&nodelist, "\"%d\" %s;\n", nilid, emptyNode())
		fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", parent, nilid)
	}
	t.walk(t.root, 0, func(n *node[T], depth int) bool {
		ID := ids.alloc(n)
		isleaf := n.left == nil && n.right == nil
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", ID,
			escape(label(n.item)), nodeDotStyles(isleaf, depth))
		if isleaf {
			return true
		}
		if n.left == nil {
			empty(ID)
		} else {
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.alloc(n.left))
		}
		if n.right == nil {
			empty(ID)
		} else {
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.alloc(n.right))
		}
		return true
	})
	for _, part := range []string{
		"strict digraph {\n",
		"\tnode [fontname=Arial,fontsize=12];\n",
		nodelist.String(),
		edgelist.String(),
		"}\n",
	} {
		if _, err := io.WriteString(w, part); err != nil {
			return err
		}
	}
	return nil
}

func escape(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(isleaf bool, depth int) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,shape=circle"
	}
	s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[min(depth, len(hexcolors)-1)])
	return s
}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}
