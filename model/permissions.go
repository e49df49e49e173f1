package model

// Capability predicates for the command surface. Kept as pure functions so
// they can be tested without storage or HTTP in the loop.

func CanEditPost(p *Principal, post *Post) bool {
	return p != nil && (p.IsAdmin() || p.Id == post.AuthorId)
}

func CanDeletePost(p *Principal, post *Post) bool {
	return p != nil && (p.IsModerator() || p.Id == post.AuthorId)
}

func CanPin(p *Principal) bool {
	return p.IsModerator()
}

func CanDeleteComment(p *Principal, comment *Comment) bool {
	return p != nil && (p.IsModerator() || p.Id == comment.AuthorId)
}

func CanModerate(p *Principal) bool {
	return p.IsModerator()
}

func CanListReports(p *Principal) bool {
	return p.IsModerator()
}
