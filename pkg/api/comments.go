// Copyright (C) 2025 Cosmo Connect (dayanakumar-IT)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package api

import (
	"context"
	"net/url"
)

// ListComments fetches all comments for a post in backend order.
func (c *Client) ListComments(ctx context.Context, postID string) ([]Comment, error) {
	var out []Comment
	if err := c.getJSON(ctx, "/comments?postId="+url.QueryEscape(postID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateComment posts a comment and returns the stored entity.
func (c *Client) CreateComment(ctx context.Context, req CommentRequest) (Comment, error) {
	var out Comment
	if err := c.postJSON(ctx, "/comments", req, &out); err != nil {
		return Comment{}, err
	}
	return out, nil
}

// UpdateComment edits a comment's content. Only the author may edit; the
// backend enforces this, the UI pre-checks it.
func (c *Client) UpdateComment(ctx context.Context, id string, req CommentRequest) (Comment, error) {
	var out Comment
	if err := c.putJSON(ctx, "/comments/"+url.PathEscape(id), req, &out); err != nil {
		return Comment{}, err
	}
	return out, nil
}

// DeleteComment removes a comment.
func (c *Client) DeleteComment(ctx context.Context, id string) error {
	return c.delete(ctx, "/comments/"+url.PathEscape(id))
}

// LikeComment records a like on a comment.
func (c *Client) LikeComment(ctx context.Context, id string) error {
	return c.postJSON(ctx, "/comments/"+url.PathEscape(id)+"/like", nil, nil)
}

// UnlikeComment removes a like from a comment.
func (c *Client) UnlikeComment(ctx context.Context, id string) error {
	return c.postJSON(ctx, "/comments/"+url.PathEscape(id)+"/unlike", nil, nil)
}
