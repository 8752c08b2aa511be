// korder 提供了一棵按子树大小增广的红黑树(order-statistic tree),
// 支持O(log n)的插入、删除、按秩选择(select)与求秩(rank)。
//
// 主要功能:
//   - Tree: 增广红黑树,每个节点维护subtree size
//   - Select(k): 返回第k小(0-indexed)的元素
//   - Rank(value, seq): 返回严格小于(value, seq)的元素个数
//
// 典型使用场景:
//   - 滑动窗口中位数/分位数/IQR/MAD(参见kstat包)
//
// 注意事项:
//   - 为了让重复值的删除具有确定性,每个节点以(value, seq)为键,
//     seq是单调递增的序号(通常是样本在环形缓冲区中的插入序号),
//     这消除了"删除哪一个重复值"的歧义
package korder

import "github.com/mtgnorton/rollstat/kmath"

type color bool

const (
	red   color = true
	black color = false
)

// node 是红黑树的一个节点,size是以该节点为根的子树大小(包含自身)。
type node[T kmath.Number] struct {
	left, right, parent *node[T]
	c                    color
	value                T
	seq                  uint64
	size                 int
}

// Tree 是一棵增广红黑树,零值不可用,必须通过New创建。
type Tree[T kmath.Number] struct {
	nilNode *node[T] // 哨兵节点,代表所有叶子的nil子节点
	root    *node[T]
}

// New 创建一棵空的order-statistic树。
func New[T kmath.Number]() *Tree[T] {
	n := &node[T]{c: black, size: 0}
	n.left, n.right, n.parent = n, n, n
	return &Tree[T]{nilNode: n, root: n}
}

// Len 返回树中元素个数。
func (t *Tree[T]) Len() int {
	return t.root.size
}

func (t *Tree[T]) less(av T, aseq uint64, bv T, bseq uint64) bool {
	if av != bv {
		return av < bv
	}
	return aseq < bseq
}

func (t *Tree[T]) leftRotate(x *node[T]) {
	y := x.right
	x.right = y.left
	if y.left != t.nilNode {
		y.left.parent = x
	}
	y.parent = x.parent
	if x.parent == t.nilNode {
		t.root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.left = x
	x.parent = y
	y.size = x.size
	x.size = x.left.size + x.right.size + 1
}

func (t *Tree[T]) rightRotate(x *node[T]) {
	y := x.left
	x.left = y.right
	if y.right != t.nilNode {
		y.right.parent = x
	}
	y.parent = x.parent
	if x.parent == t.nilNode {
		t.root = y
	} else if x == x.parent.right {
		x.parent.right = y
	} else {
		x.parent.left = y
	}
	y.right = x
	x.parent = y
	y.size = x.size
	x.size = x.left.size + x.right.size + 1
}

// Insert 插入一个(value, seq)键,seq必须对所有当前在树中的节点唯一。
//
// 参数说明:
//   - value: 样本值
//   - seq: 单调递增的去重序号
func (t *Tree[T]) Insert(value T, seq uint64) {
	z := &node[T]{value: value, seq: seq, c: red, size: 1}
	z.left, z.right = t.nilNode, t.nilNode

	y := t.nilNode
	x := t.root
	for x != t.nilNode {
		y = x
		x.size++
		if t.less(value, seq, x.value, x.seq) {
			x = x.left
		} else {
			x = x.right
		}
	}
	z.parent = y
	if y == t.nilNode {
		t.root = z
	} else if t.less(value, seq, y.value, y.seq) {
		y.left = z
	} else {
		y.right = z
	}
	t.insertFixup(z)
}

func (t *Tree[T]) insertFixup(z *node[T]) {
	for z.parent.c == red {
		if z.parent == z.parent.parent.left {
			y := z.parent.parent.right
			if y.c == red {
				z.parent.c = black
				y.c = black
				z.parent.parent.c = red
				z = z.parent.parent
			} else {
				if z == z.parent.right {
					z = z.parent
					t.leftRotate(z)
				}
				z.parent.c = black
				z.parent.parent.c = red
				t.rightRotate(z.parent.parent)
			}
		} else {
			y := z.parent.parent.left
			if y.c == red {
				z.parent.c = black
				y.c = black
				z.parent.parent.c = red
				z = z.parent.parent
			} else {
				if z == z.parent.left {
					z = z.parent
					t.rightRotate(z)
				}
				z.parent.c = black
				z.parent.parent.c = red
				t.leftRotate(z.parent.parent)
			}
		}
	}
	t.root.c = black
}

func (t *Tree[T]) find(value T, seq uint64) *node[T] {
	x := t.root
	for x != t.nilNode {
		if value == x.value && seq == x.seq {
			return x
		}
		if t.less(value, seq, x.value, x.seq) {
			x = x.left
		} else {
			x = x.right
		}
	}
	return nil
}

func (t *Tree[T]) minimum(x *node[T]) *node[T] {
	for x.left != t.nilNode {
		x = x.left
	}
	return x
}

func (t *Tree[T]) transplant(u, v *node[T]) {
	if u.parent == t.nilNode {
		t.root = v
	} else if u == u.parent.left {
		u.parent.left = v
	} else {
		u.parent.right = v
	}
	v.parent = u.parent
}

// Delete 删除一个(value, seq)键。若键不存在则为no-op。
//
// 参数说明:
//   - value: 样本值
//   - seq: 待删除节点的去重序号
func (t *Tree[T]) Delete(value T, seq uint64) {
	z := t.find(value, seq)
	if z == nil {
		return
	}

	y := z
	yOriginalColor := y.c
	var x, fixupStart *node[T]
	if z.left == t.nilNode {
		x = z.right
		t.transplant(z, z.right)
		fixupStart = x.parent
	} else if z.right == t.nilNode {
		x = z.left
		t.transplant(z, z.left)
		fixupStart = x.parent
	} else {
		y = t.minimum(z.right)
		yOriginalColor = y.c
		x = y.right
		if y.parent == z {
			x.parent = y
			fixupStart = y
		} else {
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
			fixupStart = x.parent
		}
		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.c = z.c
	}

	// Re-derive subtree sizes bottom-up along the single path from the
	// lowest structurally-changed node to the root; every node touched by
	// the splice above lies on this path (CLRS delete only ever rewires
	// ancestors of fixupStart), so one pass recomputes the whole tree's
	// bookkeeping exactly.
	for p := fixupStart; p != t.nilNode; p = p.parent {
		p.size = p.left.size + p.right.size + 1
	}

	if yOriginalColor == black {
		t.deleteFixup(x)
	}
}

func (t *Tree[T]) deleteFixup(x *node[T]) {
	for x != t.root && x.c == black {
		if x == x.parent.left {
			w := x.parent.right
			if w.c == red {
				w.c = black
				x.parent.c = red
				t.leftRotate(x.parent)
				w = x.parent.right
			}
			if w.left.c == black && w.right.c == black {
				w.c = red
				x = x.parent
			} else {
				if w.right.c == black {
					w.left.c = black
					w.c = red
					t.rightRotate(w)
					w = x.parent.right
				}
				w.c = x.parent.c
				x.parent.c = black
				w.right.c = black
				t.leftRotate(x.parent)
				x = t.root
			}
		} else {
			w := x.parent.left
			if w.c == red {
				w.c = black
				x.parent.c = red
				t.rightRotate(x.parent)
				w = x.parent.left
			}
			if w.right.c == black && w.left.c == black {
				w.c = red
				x = x.parent
			} else {
				if w.left.c == black {
					w.right.c = black
					w.c = red
					t.leftRotate(w)
					w = x.parent.left
				}
				w.c = x.parent.c
				x.parent.c = black
				w.left.c = black
				t.rightRotate(x.parent)
				x = t.root
			}
		}
	}
	x.c = black
}

// Select 返回第k小(0-indexed)的元素值。k必须满足0 <= k < Len()。
//
// 参数说明:
//   - k: 0-indexed的秩
//
// 返回值说明:
//   - value: 第k小的值
//   - ok: k是否在有效范围内
func (t *Tree[T]) Select(k int) (value T, ok bool) {
	if k < 0 || k >= t.root.size {
		var zero T
		return zero, false
	}
	x := t.root
	for {
		ls := x.left.size
		switch {
		case k == ls:
			return x.value, true
		case k < ls:
			x = x.left
		default:
			k -= ls + 1
			x = x.right
		}
	}
}

// Rank 返回严格小于键(value, seq)的元素个数,即该键若存在时的0-indexed秩。
//
// 参数说明:
//   - value: 查询值
//   - seq: 查询去重序号(用于在相同value的节点间定位精确位置)
func (t *Tree[T]) Rank(value T, seq uint64) int {
	x := t.root
	rank := 0
	for x != t.nilNode {
		if t.less(value, seq, x.value, x.seq) {
			x = x.left
		} else if t.less(x.value, x.seq, value, seq) {
			rank += x.left.size + 1
			x = x.right
		} else {
			return rank + x.left.size
		}
	}
	return rank
}

// Min 返回树中最小的元素。
func (t *Tree[T]) Min() (value T, ok bool) {
	if t.root.size == 0 {
		var zero T
		return zero, false
	}
	return t.minimum(t.root).value, true
}
