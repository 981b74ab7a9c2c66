package gridscene

import (
	"errors"
	"fmt"
)

// ErrDuplicateComponent is returned by AddComponent when the component is
// already attached to the node.
var ErrDuplicateComponent = errors.New("gridscene: component already attached")

// Component is a per-frame behavior attached to a node.
//
// The scene guarantees a strict attach -> update* -> detach sequence per
// component instance: OnAdded runs once from AddComponent, Update runs once
// per frame from Scene.Update while attached, and OnRemoved runs exactly once
// from RemoveComponent or when the host is disposed. Calls never overlap.
type Component interface {
	// OnAdded validates the host. Returning an error rejects the attachment.
	OnAdded(host *Node) error
	// Update runs once per frame while attached.
	Update(host *Node, dt float64)
	// OnRemoved releases anything the component owns on the host.
	OnRemoved(host *Node)
}

// AddComponent attaches c to the node. If c.OnAdded returns an error the
// component is not attached and the error is returned as is.
func (n *Node) AddComponent(c Component) error {
	if c == nil {
		panic("gridscene: cannot add nil component")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddComponent")
	}
	if n.componentIndex(c) >= 0 {
		return fmt.Errorf("%w: node %q", ErrDuplicateComponent, n.Name)
	}
	if err := c.OnAdded(n); err != nil {
		return err
	}
	n.components = append(n.components, c)
	return nil
}

// RemoveComponent detaches c and calls its OnRemoved hook. Returns false if c
// was not attached to this node.
func (n *Node) RemoveComponent(c Component) bool {
	i := n.componentIndex(c)
	if i < 0 {
		return false
	}
	copy(n.components[i:], n.components[i+1:])
	n.components[len(n.components)-1] = nil
	n.components = n.components[:len(n.components)-1]
	c.OnRemoved(n)
	return true
}

// Components returns the attached components in attach order.
// The returned slice MUST NOT be mutated by the caller.
func (n *Node) Components() []Component {
	return n.components
}

// HasComponent reports whether c is attached to the node.
func (n *Node) HasComponent(c Component) bool {
	return n.componentIndex(c) >= 0
}

func (n *Node) componentIndex(c Component) int {
	for i, existing := range n.components {
		if existing == c {
			return i
		}
	}
	return -1
}

// updateComponents runs one frame of every attached component. Components
// removed during the pass are not updated afterwards.
func (n *Node) updateComponents(dt float64) int {
	updated := 0
	for i := 0; i < len(n.components); i++ {
		c := n.components[i]
		c.Update(n, dt)
		updated++
		// A component may remove itself or an earlier sibling; resume after
		// c's current slot, or at the slot it vacated.
		if i >= len(n.components) || n.components[i] != c {
			if idx := n.componentIndex(c); idx >= 0 {
				i = idx
			} else {
				i--
			}
		}
	}
	return updated
}

// removeAllComponents detaches components in reverse attach order.
func (n *Node) removeAllComponents() {
	for len(n.components) > 0 {
		c := n.components[len(n.components)-1]
		n.components[len(n.components)-1] = nil
		n.components = n.components[:len(n.components)-1]
		c.OnRemoved(n)
	}
	n.components = nil
}
