package model

import "time"

type Tag string

const (
	TagGeneral  Tag = "general"
	TagQuestion Tag = "question"
	TagAdvice   Tag = "advice"
	TagEvent    Tag = "event"
	TagPolicy   Tag = "policy"
)

func (t Tag) Valid() bool {
	switch t {
	case TagGeneral, TagQuestion, TagAdvice, TagEvent, TagPolicy:
		return true
	}
	return false
}

// VoteSet is the set of principal ids with an active upvote, keyed by id.
// The upvote counter is always derived from it, never incremented on its own.
type VoteSet map[string]bool

func (vs VoteSet) Has(userId string) bool {
	return vs[userId]
}

// Toggle flips membership for userId and returns the new membership state.
func (vs VoteSet) Toggle(userId string) bool {
	if vs[userId] {
		delete(vs, userId)
		return false
	}
	vs[userId] = true
	return true
}

type Post struct {
	Id    string `json:"id" firestore:"id"`
	Title string `json:"title" firestore:"title"`
	Body  string `json:"body" firestore:"body"`
	Tag   Tag    `json:"tag" firestore:"tag"`
	// ClassId scopes the post to a class; empty means community-wide
	ClassId    string  `json:"classId,omitempty" firestore:"classId"`
	AuthorId   string  `json:"authorId" firestore:"authorId"`
	AuthorRole Role    `json:"authorRole" firestore:"authorRole"`
	AuthorName string  `json:"authorName" firestore:"authorName"`
	IsPinned   bool    `json:"isPinned" firestore:"isPinned"`
	Upvotes    int     `json:"upvotes" firestore:"upvotes"`
	UpvotedBy  VoteSet `json:"-" firestore:"upvotedBy"`
	// ViewerUpvoted is set per request by MakeDisplayableFor
	ViewerUpvoted bool      `json:"hasUpvoted" firestore:"-"`
	CreatedAt     time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt" firestore:"updatedAt"`
}

func (p *Post) ToggleUpvote(userId string) {
	if p.UpvotedBy == nil {
		p.UpvotedBy = VoteSet{}
	}
	p.UpvotedBy.Toggle(userId)
	p.Upvotes = len(p.UpvotedBy)
}

// MakeDisplayableFor mutates the object
func (p *Post) MakeDisplayableFor(viewer *Principal) *Post {
	p.ViewerUpvoted = viewer != nil && p.UpvotedBy.Has(viewer.Id)
	return p
}

type Comment struct {
	Id     string `json:"id" firestore:"id"`
	PostId string `json:"postId" firestore:"postId"`
	// ParentId references another comment on the same post; empty means
	// the comment replies directly to the post
	ParentId      string    `json:"parentId,omitempty" firestore:"parentId"`
	Body          string    `json:"body" firestore:"body"`
	AuthorId      string    `json:"authorId" firestore:"authorId"`
	AuthorRole    Role      `json:"authorRole" firestore:"authorRole"`
	AuthorName    string    `json:"authorName" firestore:"authorName"`
	Hidden        bool      `json:"hidden" firestore:"hidden"`
	Upvotes       int       `json:"upvotes" firestore:"upvotes"`
	UpvotedBy     VoteSet   `json:"-" firestore:"upvotedBy"`
	ViewerUpvoted bool      `json:"hasUpvoted" firestore:"-"`
	CreatedAt     time.Time `json:"createdAt" firestore:"createdAt"`
}

func (cm *Comment) ToggleUpvote(userId string) {
	if cm.UpvotedBy == nil {
		cm.UpvotedBy = VoteSet{}
	}
	cm.UpvotedBy.Toggle(userId)
	cm.Upvotes = len(cm.UpvotedBy)
}

// MakeDisplayableFor projects the comment for a viewer. Hidden comments keep
// their data in the store; non-moderator viewers (other than the author) get
// a placeholder with no body and no author attribution. Returns a copy when
// redaction applies so the caller's snapshot stays intact.
func (cm *Comment) MakeDisplayableFor(viewer *Principal) *Comment {
	cm.ViewerUpvoted = viewer != nil && cm.UpvotedBy.Has(viewer.Id)
	if !cm.Hidden || viewer.IsModerator() || (viewer != nil && viewer.Id == cm.AuthorId) {
		return cm
	}
	redacted := *cm
	redacted.Body = ""
	redacted.AuthorId = ""
	redacted.AuthorRole = ""
	redacted.AuthorName = ""
	return &redacted
}

type CommentTree struct {
	*Comment
	Children []*CommentTree `json:"children"`
}

type ReportTargetKind string

const (
	ReportTargetPost    ReportTargetKind = "post"
	ReportTargetComment ReportTargetKind = "comment"
)

type Report struct {
	Id           string           `json:"id" firestore:"id"`
	TargetKind   ReportTargetKind `json:"targetKind" firestore:"targetKind"`
	TargetId     string           `json:"targetId" firestore:"targetId"`
	Reason       string           `json:"reason" firestore:"reason"`
	ReporterId   string           `json:"reporterId" firestore:"reporterId"`
	ReporterName string           `json:"reporterName" firestore:"reporterName"`
	CreatedAt    time.Time        `json:"createdAt" firestore:"createdAt"`
}
