package ast

import "fmt"

// ResolveDuplicates rewrites container types so that distinct containers
// sharing a container_type stay visually distinguishable. Within each
// node, entity groups are keyed by container name in occurrence order;
// the first group keeps the original type and later groups become
// "type-2", "type-3", and so on. A result container whose name collides
// with a sibling entity is renamed with a "(result)" suffix.
//
// The pass mutates entities in place, which is why callers clone the
// tree per style render.
func ResolveDuplicates(root *Node) {
	if root == nil {
		return
	}
	root.Walk(resolveNode)
}

func resolveNode(n *Node) {
	byType := map[string][]string{} // container_type -> container names, occurrence order
	for _, e := range n.Entities() {
		if e.ContainerType == "" {
			continue
		}
		names := byType[e.ContainerType]
		if !contains(names, e.ContainerName) {
			byType[e.ContainerType] = append(names, e.ContainerName)
		}
	}

	for _, e := range n.Entities() {
		names := byType[e.ContainerType]
		if len(names) < 2 {
			continue
		}
		idx := index(names, e.ContainerName)
		if idx > 0 {
			e.ContainerType = fmt.Sprintf("%s-%d", e.ContainerType, idx+1)
		}
	}

	if n.Result != nil {
		for _, e := range n.Entities() {
			if e.ContainerName != "" && e.ContainerName == n.Result.ContainerName {
				n.Result.ContainerName = n.Result.ContainerName + " (result)"
				if n.Result.Name == e.Name && n.Result.Name != "" {
					n.Result.Name = n.Result.Name + " (result)"
				}
				break
			}
		}
	}
}

func contains(ss []string, s string) bool {
	return index(ss, s) >= 0
}

func index(ss []string, s string) int {
	for i, v := range ss {
		if v == s {
			return i
		}
	}
	return -1
}
