package bstmap

import (
	"fmt"
	"io"
)

type nodeids[K, V any] struct {
	idTable map[*node[K, V]]int
	max     int
}

func newtable[K, V any]() nodeids[K, V] {
	return nodeids[K, V]{
		idTable: make(map[*node[K, V]]int),
		max:     1,
	}
}

func (ids nodeids[K, V]) find(n *node[K, V]) int {
	return ids.idTable[n]
}

func (ids *nodeids[K, V]) alloc(n *node[K, V]) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// Map2Dot outputs the internal structure of a map in Graphviz DOT format
// (for debugging purposes). Sentinels are drawn as boxes, missing children as
// small empty circles.
func Map2Dot[K, V any](m *Map[K, V], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[K, V]()
	nodelist, edgelist := "", ""
	top := m.root
	if top == nil {
		top = m.end // empty map: rend hangs below end
	}
	walk(top, 0, func(n *node[K, V], depth int) {
		ID := ids.alloc(n)
		switch n {
		case m.end:
			nodelist += fmt.Sprintf("\"%d\" [label=\"end\" %s];\n", ID, nodeDotStyles(true))
		case m.rend:
			nodelist += fmt.Sprintf("\"%d\" [label=\"rend\" %s];\n", ID, nodeDotStyles(true))
		default:
			label := fmt.Sprintf("%v\\n%v", n.key(), n.entry().Second)
			nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(false))
		}
		if n == m.end && m.root == nil {
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\" [style=dashed];\n", ID, ids.alloc(m.rend))
			return
		}
		if !n.real() {
			return
		}
		for i, child := range [2]*node[K, V]{n.left, n.right} {
			if child == nil {
				nilid := fmt.Sprintf("nil%d_%d", ID, i)
				nodelist += fmt.Sprintf("\"%s\" %s;\n", nilid, emptyNode())
				edgelist += fmt.Sprintf("\"%d\" -> \"%s\";\n", ID, nilid)
				continue
			}
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
		}
	})
	if m.root == nil {
		nodelist += fmt.Sprintf("\"%d\" [label=\"rend\" %s];\n", ids.find(m.rend), nodeDotStyles(true))
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(sentinel bool) string {
	s := ",style=filled"
	if sentinel {
		s += ",fillcolor=\"#FFCCAA\""
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
