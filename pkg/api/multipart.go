// Copyright (C) 2025 Cosmo Connect (dayanakumar-IT)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/google/uuid"
)

// FilePart is one file attachment in a multipart submission. Field is the
// form field name ("media", "banner", "instructions", "photo"); Name is
// the filename sent to the backend.
type FilePart struct {
	Field   string
	Name    string
	Content io.Reader
}

// encodeMultipart builds a multipart body with the JSON payload serialized
// as a string under jsonField (the backend's convention: `post` field is a
// JSON-encoded string, file fields carry the attachments).
//
// Parts missing a filename get a generated one so the backend's storage
// layer always has a key to file them under.
func encodeMultipart(jsonField string, payload any, files []FilePart) (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, "", fmt.Errorf("api: encode %s payload: %w", jsonField, err)
		}
		if err := writer.WriteField(jsonField, string(data)); err != nil {
			return nil, "", fmt.Errorf("api: write %s field: %w", jsonField, err)
		}
	}

	for _, file := range files {
		name := file.Name
		if name == "" {
			name = uuid.NewString()
		}
		part, err := writer.CreateFormFile(file.Field, name)
		if err != nil {
			return nil, "", fmt.Errorf("api: create file part %s: %w", name, err)
		}
		if _, err := io.Copy(part, file.Content); err != nil {
			return nil, "", fmt.Errorf("api: copy file part %s: %w", name, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("api: finalize multipart body: %w", err)
	}
	return &buf, writer.FormDataContentType(), nil
}
