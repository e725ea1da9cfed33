package catalog

import (
	"strconv"

	"github.com/awalterschulze/gographviz"
)

const graphName = "catalog"

// Graph renders the folder hierarchy as a Graphviz digraph. Each node is
// identified by its path.
func (c *Catalog) Graph() (string, error) {
	g := gographviz.NewGraph()
	if err := g.SetName(graphName); err != nil {
		return "", err
	}
	if err := g.SetDir(true); err != nil {
		return "", err
	}
	if err := g.AddAttr(graphName, "rankdir", "LR"); err != nil {
		return "", err
	}

	var add func(parent, path string, e *Entry) error
	add = func(parent, path string, e *Entry) error {
		node := strconv.Quote(path)
		shape := "note"
		if e.IsFolder() {
			shape = "folder"
		}
		attrs := map[string]string{
			"label": strconv.Quote(e.Name),
			"shape": shape,
		}
		if err := g.AddNode(graphName, node, attrs); err != nil {
			return err
		}
		if parent != "" {
			if err := g.AddEdge(parent, node, true, nil); err != nil {
				return err
			}
		}
		for _, child := range e.Children {
			if err := add(node, path+"/"+child.Name, child); err != nil {
				return err
			}
		}
		return nil
	}
	for _, loc := range c.Locations {
		if err := add("", "/"+loc.Key, &loc.Entry); err != nil {
			return "", err
		}
	}
	return g.String(), nil
}
