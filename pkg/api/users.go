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

// Me fetches the authenticated user's profile.
func (c *Client) Me(ctx context.Context) (User, error) {
	var out User
	if err := c.getJSON(ctx, "/users/me", &out); err != nil {
		return User{}, err
	}
	return out, nil
}

// UpdateUser submits an explicit profile edit and returns the stored
// profile.
func (c *Client) UpdateUser(ctx context.Context, id string, update ProfileUpdate) (User, error) {
	var out User
	if err := c.putJSON(ctx, "/users/"+url.PathEscape(id), update, &out); err != nil {
		return User{}, err
	}
	return out, nil
}

// UpdatePhoto uploads a new profile photo (multipart) and returns the
// updated profile with its new image URL.
func (c *Client) UpdatePhoto(ctx context.Context, id string, photo FilePart) (User, error) {
	photo.Field = "photo"
	body, contentType, err := encodeMultipart("", nil, []FilePart{photo})
	if err != nil {
		return User{}, err
	}
	var out User
	if err := c.do(ctx, http.MethodPut, "/users/"+url.PathEscape(id)+"/photo", body, contentType, &out); err != nil {
		return User{}, err
	}
	return out, nil
}
