// Copyright (C) 2025 Cosmo Connect (dayanakumar-IT)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package feed

import (
	"context"
	"errors"

	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/api"
	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/mirror"
	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/session"
	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/validation"
)

// ErrNotOwner is returned when a user edits or deletes someone else's
// comment. The backend also rejects this; the check here keeps the bad
// request off the wire.
var ErrNotOwner = errors.New("feed: not the comment owner")

// CommentSection mirrors one post's comment thread.
type CommentSection struct {
	postID   string
	client   *api.Client
	session  *session.Session
	comments *mirror.Mirror[api.Comment]
	mutator  *mirror.Mutator[api.Comment]
}

// NewCommentSection opens the comment thread of a post.
func NewCommentSection(client *api.Client, sess *session.Session, postID string) *CommentSection {
	comments := mirror.New(func(c api.Comment) string { return c.ID })
	return &CommentSection{
		postID:   postID,
		client:   client,
		session:  sess,
		comments: comments,
		mutator:  mirror.NewMutator(comments),
	}
}

// Refresh replaces the thread with the backend's current list.
func (s *CommentSection) Refresh(ctx context.Context) error {
	return s.comments.Load(ctx, func(ctx context.Context) ([]api.Comment, error) {
		return s.client.ListComments(ctx, s.postID)
	})
}

// Comments returns the mirrored thread in backend order.
func (s *CommentSection) Comments() []api.Comment {
	return s.comments.Items()
}

// ToggleLike flips a comment's like state optimistically, with the same
// guard and rollback rules as post likes.
func (s *CommentSection) ToggleLike(ctx context.Context, commentID string) error {
	if !s.session.Authenticated() {
		return nil
	}
	comment, ok := s.comments.Get(commentID)
	if !ok {
		return mirror.ErrNotFound
	}

	var apply func(*api.Comment)
	var call func(context.Context) error
	if comment.IsLiked {
		apply = func(c *api.Comment) { c.IsLiked = false; c.LikeCount-- }
		call = func(ctx context.Context) error { return s.client.UnlikeComment(ctx, commentID) }
	} else {
		apply = func(c *api.Comment) { c.IsLiked = true; c.LikeCount++ }
		call = func(ctx context.Context) error { return s.client.LikeComment(ctx, commentID) }
	}

	err := s.mutator.Do(ctx, commentID, apply, call)
	if err == mirror.ErrMutationInFlight {
		return nil
	}
	return err
}

// Add posts a new comment and appends the stored entity on confirmation.
func (s *CommentSection) Add(ctx context.Context, content string) (api.Comment, error) {
	req := api.CommentRequest{PostID: s.postID, Content: content}
	if err := validation.Struct(req); err != nil {
		return api.Comment{}, err
	}
	created, err := s.client.CreateComment(ctx, req)
	if err != nil {
		return api.Comment{}, err
	}
	s.comments.Append(created)
	return created, nil
}

// Edit rewrites an owned comment in place after backend confirmation.
func (s *CommentSection) Edit(ctx context.Context, commentID, content string) (api.Comment, error) {
	comment, ok := s.comments.Get(commentID)
	if !ok {
		return api.Comment{}, mirror.ErrNotFound
	}
	if !s.owns(comment) {
		return api.Comment{}, ErrNotOwner
	}
	req := api.CommentRequest{PostID: s.postID, Content: content}
	if err := validation.Struct(req); err != nil {
		return api.Comment{}, err
	}

	var updated api.Comment
	err := s.mutator.Run(ctx, commentID,
		func(ctx context.Context) error {
			var err error
			updated, err = s.client.UpdateComment(ctx, commentID, req)
			return err
		},
		func(m *mirror.Mirror[api.Comment]) { m.Replace(updated) },
	)
	if err != nil {
		return api.Comment{}, err
	}
	return updated, nil
}

// Delete removes an owned comment after confirmation. Declining issues
// no request.
func (s *CommentSection) Delete(ctx context.Context, commentID string, confirm func() bool) error {
	comment, ok := s.comments.Get(commentID)
	if !ok {
		return mirror.ErrNotFound
	}
	if !s.owns(comment) {
		return ErrNotOwner
	}
	if confirm != nil && !confirm() {
		return nil
	}
	return s.mutator.Run(ctx, commentID,
		func(ctx context.Context) error { return s.client.DeleteComment(ctx, commentID) },
		func(m *mirror.Mirror[api.Comment]) { m.RemoveByID(commentID) },
	)
}

// CanModify mirrors the ownership rule for UI affordances.
func (s *CommentSection) CanModify(comment api.Comment) bool {
	return s.owns(comment)
}

func (s *CommentSection) owns(comment api.Comment) bool {
	user, ok := s.session.CurrentUser()
	return ok && user.ID == comment.Author.ID
}
