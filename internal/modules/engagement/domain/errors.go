package domain

import "errors"

var (
	ErrRatingNotFound  = errors.New("rating not found")
	ErrCommentNotFound = errors.New("comment not found")
)
