// Copyright (C) 2025 Cosmo Connect (dayanakumar-IT)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package api

import (
	"context"
	"net/http"
	"net/url"
)

// ListPosts fetches the feed in backend order. The client never re-sorts.
func (c *Client) ListPosts(ctx context.Context) ([]Post, error) {
	var out []Post
	if err := c.getJSON(ctx, "/posts", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPost fetches a single post, used to refresh a denormalized view
// after an edit.
func (c *Client) GetPost(ctx context.Context, id string) (Post, error) {
	var out Post
	if err := c.getJSON(ctx, "/posts/"+url.PathEscape(id), &out); err != nil {
		return Post{}, err
	}
	return out, nil
}

// CreatePost submits a new post as multipart: the "post" field carries the
// JSON-encoded request, "media" parts carry the attachments. Returns the
// stored entity so the caller can append it to the feed mirror.
func (c *Client) CreatePost(ctx context.Context, req PostRequest, media []FilePart) (Post, error) {
	for i := range media {
		media[i].Field = "media"
	}
	body, contentType, err := encodeMultipart("post", req, media)
	if err != nil {
		return Post{}, err
	}
	var out Post
	if err := c.do(ctx, http.MethodPost, "/posts", body, contentType, &out); err != nil {
		return Post{}, err
	}
	return out, nil
}

// UpdatePost edits a post. req.RemovedMedia lists the filenames to detach;
// newMedia carries only files added in this edit. Returns the stored
// entity.
func (c *Client) UpdatePost(ctx context.Context, id string, req PostRequest, newMedia []FilePart) (Post, error) {
	for i := range newMedia {
		newMedia[i].Field = "media"
	}
	body, contentType, err := encodeMultipart("post", req, newMedia)
	if err != nil {
		return Post{}, err
	}
	var out Post
	if err := c.do(ctx, http.MethodPut, "/posts/"+url.PathEscape(id), body, contentType, &out); err != nil {
		return Post{}, err
	}
	return out, nil
}

// DeletePost removes a post.
func (c *Client) DeletePost(ctx context.Context, id string) error {
	return c.delete(ctx, "/posts/"+url.PathEscape(id))
}

// LikePost records a like. The caller has already applied the optimistic
// transition; this is the confirming side effect.
func (c *Client) LikePost(ctx context.Context, id string) error {
	return c.postJSON(ctx, "/posts/"+url.PathEscape(id)+"/like", nil, nil)
}

// UnlikePost removes a like.
func (c *Client) UnlikePost(ctx context.Context, id string) error {
	return c.postJSON(ctx, "/posts/"+url.PathEscape(id)+"/unlike", nil, nil)
}
