package app

import (
	"sort"

	"github.com/classboard/classboard-be/model"
)

// BuildForest groups a post's comments by parentId into the reply forest.
// Comments whose parentId is empty are roots; children keep insertion order
// by createdAt.
func BuildForest(comments []*model.Comment) []*model.CommentTree {
	adj := make(map[string][]*model.Comment)
	for _, comment := range comments {
		adj[comment.ParentId] = append(adj[comment.ParentId], comment)
	}
	for _, children := range adj {
		sort.SliceStable(children, func(i, j int) bool {
			if children[i].CreatedAt.Equal(children[j].CreatedAt) {
				return children[i].Id < children[j].Id
			}
			return children[i].CreatedAt.Before(children[j].CreatedAt)
		})
	}
	return buildForestFromAdjList(adj, "")
}

func buildForestFromAdjList(adj map[string][]*model.Comment, parentId string) []*model.CommentTree {
	comments, ok := adj[parentId]
	if !ok {
		return []*model.CommentTree{}
	}
	forest := make([]*model.CommentTree, len(comments))
	for i, comment := range comments {
		forest[i] = &model.CommentTree{
			Comment:  comment,
			Children: buildForestFromAdjList(adj, comment.Id),
		}
	}
	return forest
}

// Traversal walks a forest depth-first, parents before children. It is lazy
// (nodes are produced one Next call at a time) and restartable via Reset.
type Traversal struct {
	forest []*model.CommentTree
	stack  []*model.CommentTree
}

func NewTraversal(forest []*model.CommentTree) *Traversal {
	t := &Traversal{forest: forest}
	t.Reset()
	return t
}

func (t *Traversal) Reset() {
	t.stack = make([]*model.CommentTree, len(t.forest))
	for i := range t.forest {
		t.stack[i] = t.forest[len(t.forest)-1-i]
	}
}

func (t *Traversal) Next() (*model.CommentTree, bool) {
	if len(t.stack) == 0 {
		return nil, false
	}
	node := t.stack[len(t.stack)-1]
	t.stack = t.stack[:len(t.stack)-1]
	for i := len(node.Children) - 1; i >= 0; i-- {
		t.stack = append(t.stack, node.Children[i])
	}
	return node, true
}

// Descendants computes the transitive reply closure of rootId over comments
// by fixed-point iteration: keep sweeping until a full pass adds nothing.
// Terminates because the set is finite and the parent relation is acyclic;
// quadratic worst case is fine at per-post comment counts.
func Descendants(rootId string, comments []*model.Comment) map[string]bool {
	descendants := map[string]bool{}
	for {
		added := false
		for _, comment := range comments {
			if descendants[comment.Id] {
				continue
			}
			if comment.ParentId == rootId || descendants[comment.ParentId] {
				descendants[comment.Id] = true
				added = true
			}
		}
		if !added {
			return descendants
		}
	}
}

// Dangling returns the ids of comments whose parent no longer exists in the
// same snapshot. Used by the cascade re-verification sweep.
func Dangling(comments []*model.Comment) []string {
	present := make(map[string]bool, len(comments))
	for _, comment := range comments {
		present[comment.Id] = true
	}
	var dangling []string
	for _, comment := range comments {
		if comment.ParentId != "" && !present[comment.ParentId] {
			dangling = append(dangling, comment.Id)
		}
	}
	return dangling
}
