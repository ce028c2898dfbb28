package disjointset

// node is the per-item bookkeeping record. Nodes reference each other by
// synthetic id only; the registry never stores a caller's item inside
// parent/rank tracking.
type node struct {
	// parent is the id of the node one step closer to the set's root. A
	// node whose parent is its own id is the representative of its set.
	parent int

	// rank starts at 1 and, when this node is the surviving root of a
	// union, becomes the sum of the two merged ranks. For a representative
	// it equals the cardinality of its set.
	rank int
}

// registry owns exactly one node per registered item. Items are assigned
// dense synthetic ids at registration, and all parent/rank bookkeeping is
// keyed by id, so the engine can rewrite a single node field mid-walk
// without touching the item map. Nodes are never removed.
type registry[T comparable] struct {
	ids   map[T]int // item → synthetic id
	items []T       // synthetic id → item
	nodes []node    // synthetic id → bookkeeping record
}

func newRegistry[T comparable]() registry[T] {
	return registry[T]{ids: make(map[T]int)}
}

// add allocates a node for item and returns its id. The new node is its own
// singleton representative with rank 1. The caller is responsible for
// checking that item is not already registered.
func (r *registry[T]) add(item T) int {
	id := len(r.nodes)
	r.ids[item] = id
	r.items = append(r.items, item)
	r.nodes = append(r.nodes, node{parent: id, rank: 1})
	return id
}

// lookup resolves item to its id, reporting whether item was ever registered.
func (r *registry[T]) lookup(item T) (int, bool) {
	id, ok := r.ids[item]
	return id, ok
}

func (r *registry[T]) item(id int) T { return r.items[id] }

func (r *registry[T]) parent(id int) int { return r.nodes[id].parent }

func (r *registry[T]) setParent(id, parent int) { r.nodes[id].parent = parent }

func (r *registry[T]) rank(id int) int { return r.nodes[id].rank }

func (r *registry[T]) setRank(id, rank int) { r.nodes[id].rank = rank }

// isRepresentative reports whether id is the root of its set.
func (r *registry[T]) isRepresentative(id int) bool { return r.nodes[id].parent == id }

func (r *registry[T]) len() int { return len(r.nodes) }
