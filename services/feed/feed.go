// Copyright (C) 2025 Cosmo Connect (dayanakumar-IT)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package feed binds the post and comment mirrors to the backend API.
//
// One Controller serves one feed view. Likes are optimistic (flip first,
// confirm later, roll back exactly on failure); create, edit and delete
// block on the backend and only then reconcile the mirror. The like guard
// is here too: an unauthenticated like is a silent no-op that issues no
// request.
package feed

import (
	"context"

	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/api"
	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/logging"
	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/mirror"
	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/session"
	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/validation"
)

// Controller is the view-state owner for the feed.
type Controller struct {
	client  *api.Client
	session *session.Session
	posts   *mirror.Mirror[api.Post]
	mutator *mirror.Mutator[api.Post]
	logger  *logging.Logger
}

// NewController wires a feed controller. All collaborators are injected;
// nothing reads ambient globals.
func NewController(client *api.Client, sess *session.Session, logger *logging.Logger) *Controller {
	if logger == nil {
		logger = logging.New(logging.Config{Quiet: true, Service: "feed"})
	}
	posts := mirror.New(func(p api.Post) string { return p.ID })
	return &Controller{
		client:  client,
		session: sess,
		posts:   posts,
		mutator: mirror.NewMutator(posts),
		logger:  logger,
	}
}

// Refresh replaces the feed with the backend's current list. On failure
// the previous posts remain visible and Err reports the problem.
func (c *Controller) Refresh(ctx context.Context) error {
	return c.posts.Load(ctx, c.client.ListPosts)
}

// Posts returns the mirrored feed in backend order.
func (c *Controller) Posts() []api.Post {
	return c.posts.Items()
}

// Post returns one mirrored post by id.
func (c *Controller) Post(id string) (api.Post, bool) {
	return c.posts.Get(id)
}

// Err returns the error from the most recent failed refresh, if any.
func (c *Controller) Err() error {
	return c.posts.Err()
}

// ToggleLike flips the like state of a post.
//
// Unauthenticated users: silent no-op, no request, no error. While a like
// for the same post is still in flight, further toggles are dropped (the
// outstanding request settles the state). On backend failure the flag and
// counter revert to their exact pre-click values.
func (c *Controller) ToggleLike(ctx context.Context, postID string) error {
	if !c.session.Authenticated() {
		c.logger.Debug("like ignored, not authenticated", "post_id", postID)
		return nil
	}

	post, ok := c.posts.Get(postID)
	if !ok {
		return mirror.ErrNotFound
	}

	var apply func(*api.Post)
	var call func(context.Context) error
	if post.IsLiked {
		apply = func(p *api.Post) { p.IsLiked = false; p.LikeCount-- }
		call = func(ctx context.Context) error { return c.client.UnlikePost(ctx, postID) }
	} else {
		apply = func(p *api.Post) { p.IsLiked = true; p.LikeCount++ }
		call = func(ctx context.Context) error { return c.client.LikePost(ctx, postID) }
	}

	err := c.mutator.Do(ctx, postID, apply, call)
	if err == mirror.ErrMutationInFlight {
		c.logger.Debug("like dropped, mutation in flight", "post_id", postID)
		return nil
	}
	return err
}

// CreatePost validates, blocks on the backend, and appends the stored
// entity to the feed. The mirror is never touched before confirmation.
func (c *Controller) CreatePost(ctx context.Context, req api.PostRequest, media []api.FilePart) (api.Post, error) {
	if err := validation.Struct(req); err != nil {
		return api.Post{}, err
	}
	if req.Poll != nil {
		if warning := validation.PollWarning(req.Poll.Question, req.Poll.Options); warning != "" {
			c.logger.Warn("degenerate poll accepted", "warning", warning)
		}
	}

	created, err := c.client.CreatePost(ctx, req, media)
	if err != nil {
		return api.Post{}, err
	}
	c.posts.Append(created)
	return created, nil
}

// UpdatePost validates and blocks, then refreshes the denormalized view
// by refetching the single post and replacing it in place.
func (c *Controller) UpdatePost(ctx context.Context, id string, req api.PostRequest, newMedia []api.FilePart) (api.Post, error) {
	if err := validation.Struct(req); err != nil {
		return api.Post{}, err
	}

	var updated api.Post
	err := c.mutator.Run(ctx, id,
		func(ctx context.Context) error {
			if _, err := c.client.UpdatePost(ctx, id, req, newMedia); err != nil {
				return err
			}
			var err error
			updated, err = c.client.GetPost(ctx, id)
			return err
		},
		func(m *mirror.Mirror[api.Post]) { m.Replace(updated) },
	)
	if err != nil {
		return api.Post{}, err
	}
	return updated, nil
}

// DeletePost asks confirm before doing anything. A declined confirmation
// issues zero requests and leaves the feed unchanged; a confirmed delete
// issues exactly one DELETE and removes exactly the matching entry.
func (c *Controller) DeletePost(ctx context.Context, id string, confirm func() bool) error {
	if confirm != nil && !confirm() {
		return nil
	}
	return c.mutator.Run(ctx, id,
		func(ctx context.Context) error { return c.client.DeletePost(ctx, id) },
		func(m *mirror.Mirror[api.Post]) { m.RemoveByID(id) },
	)
}

// CanModify reports whether the current user authored the post. The UI
// uses this to hide edit/delete affordances; the backend enforces it for
// real.
func (c *Controller) CanModify(post api.Post) bool {
	user, ok := c.session.CurrentUser()
	return ok && user.ID == post.Author.ID
}
