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

// ListCompetitions fetches all competition listings.
func (c *Client) ListCompetitions(ctx context.Context) ([]Competition, error) {
	var out []Competition
	if err := c.getJSON(ctx, "/v1/competitions", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateCompetition submits a listing with its banner image and PDF
// instructions as multipart attachments.
func (c *Client) CreateCompetition(ctx context.Context, req CompetitionRequest, banner, instructions *FilePart) (Competition, error) {
	files := competitionFiles(banner, instructions)
	body, contentType, err := encodeMultipart("competition", req, files)
	if err != nil {
		return Competition{}, err
	}
	var out Competition
	if err := c.do(ctx, http.MethodPost, "/v1/competitions", body, contentType, &out); err != nil {
		return Competition{}, err
	}
	return out, nil
}

// UpdateCompetition edits a listing; nil banner/instructions leave the
// stored files untouched.
func (c *Client) UpdateCompetition(ctx context.Context, id string, req CompetitionRequest, banner, instructions *FilePart) (Competition, error) {
	files := competitionFiles(banner, instructions)
	body, contentType, err := encodeMultipart("competition", req, files)
	if err != nil {
		return Competition{}, err
	}
	var out Competition
	if err := c.do(ctx, http.MethodPut, "/v1/competitions/"+url.PathEscape(id), body, contentType, &out); err != nil {
		return Competition{}, err
	}
	return out, nil
}

// DeleteCompetition removes a listing.
func (c *Client) DeleteCompetition(ctx context.Context, id string) error {
	return c.delete(ctx, "/v1/competitions/"+url.PathEscape(id))
}

func competitionFiles(banner, instructions *FilePart) []FilePart {
	var files []FilePart
	if banner != nil {
		banner.Field = "banner"
		files = append(files, *banner)
	}
	if instructions != nil {
		instructions.Field = "instructions"
		files = append(files, *instructions)
	}
	return files
}
