// Copyright (C) 2025 Cosmo Connect (dayanakumar-IT)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package plans

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/api"
	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/validation"
)

// ShareOptions selects the recipients of the generated deep links.
type ShareOptions struct {
	// Email is the mailto recipient. Empty produces a recipient-less
	// mailto link.
	Email string
	// Phone is the WhatsApp number in international format. Empty skips
	// the WhatsApp link.
	Phone string
	// AppURL overrides the public plan URL base.
	AppURL string
}

// ShareLinks are ready-to-open deep links for a plan. They are built
// entirely client-side; opening one never touches our backend.
type ShareLinks struct {
	Mailto   string
	WhatsApp string
}

const defaultAppURL = "https://cosmoconnect.app/plans"

// BuildShareLinks renders the mailto and WhatsApp links for a plan. An
// invalid phone number fails the whole build so a broken link is never
// handed to the OS.
func BuildShareLinks(plan api.LearningPlan, opts ShareOptions) (ShareLinks, error) {
	base := opts.AppURL
	if base == "" {
		base = defaultAppURL
	}
	planURL := strings.TrimRight(base, "/") + "/" + url.PathEscape(plan.ID)

	subject := fmt.Sprintf("Learning plan: %s", plan.Title)
	body := fmt.Sprintf("%s\n\n%s\n\n%s", plan.Title, plan.Description, planURL)

	links := ShareLinks{
		Mailto: fmt.Sprintf("mailto:%s?subject=%s&body=%s",
			url.QueryEscape(opts.Email),
			url.QueryEscape(subject),
			url.QueryEscape(body)),
	}

	if opts.Phone != "" {
		if err := validation.ValidatePhone(opts.Phone); err != nil {
			return ShareLinks{}, err
		}
		number := strings.TrimPrefix(opts.Phone, "+")
		links.WhatsApp = fmt.Sprintf("https://wa.me/%s?text=%s",
			number, url.QueryEscape(body))
	}
	return links, nil
}
