// Copyright (C) 2025 Cosmo Connect (dayanakumar-IT)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package plans owns the learning plan mirror, the creation wizard and
// the share links. Plan mutations are all blocking: nothing shows up in
// the mirror until the backend has stored it.
package plans

import (
	"context"

	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/api"
	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/logging"
	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/mirror"
	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/session"
	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/validation"
)

// Service is the view-state owner for learning plans.
type Service struct {
	client  *api.Client
	session *session.Session
	plans   *mirror.Mirror[api.LearningPlan]
	mutator *mirror.Mutator[api.LearningPlan]
	logger  *logging.Logger
}

func NewService(client *api.Client, sess *session.Session, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.New(logging.Config{Quiet: true, Service: "plans"})
	}
	plans := mirror.New(func(p api.LearningPlan) string { return p.ID })
	return &Service{
		client:  client,
		session: sess,
		plans:   plans,
		mutator: mirror.NewMutator(plans),
		logger:  logger,
	}
}

// Refresh replaces the plan list with the backend's current state.
func (s *Service) Refresh(ctx context.Context) error {
	return s.plans.Load(ctx, s.client.ListLearningPlans)
}

// Plans returns the mirrored list in backend order.
func (s *Service) Plans() []api.LearningPlan {
	return s.plans.Items()
}

// Plan returns one mirrored plan by id.
func (s *Service) Plan(id string) (api.LearningPlan, bool) {
	return s.plans.Get(id)
}

// Create validates the assembled wizard payload, blocks on the backend
// and appends the stored plan.
func (s *Service) Create(ctx context.Context, req api.LearningPlanRequest, materials []api.FilePart) (api.LearningPlan, error) {
	if err := validation.Struct(req); err != nil {
		return api.LearningPlan{}, err
	}
	created, err := s.client.CreateLearningPlan(ctx, req, materials)
	if err != nil {
		return api.LearningPlan{}, err
	}
	s.plans.Append(created)
	return created, nil
}

// Update replaces a plan's fields after backend confirmation.
func (s *Service) Update(ctx context.Context, id string, req api.LearningPlanRequest) (api.LearningPlan, error) {
	if err := validation.Struct(req); err != nil {
		return api.LearningPlan{}, err
	}
	var updated api.LearningPlan
	err := s.mutator.Run(ctx, id,
		func(ctx context.Context) error {
			var err error
			updated, err = s.client.UpdateLearningPlan(ctx, id, req)
			return err
		},
		func(m *mirror.Mirror[api.LearningPlan]) { m.Replace(updated) },
	)
	if err != nil {
		return api.LearningPlan{}, err
	}
	return updated, nil
}

// Delete removes a plan after confirmation. Declining issues no request.
func (s *Service) Delete(ctx context.Context, id string, confirm func() bool) error {
	if confirm != nil && !confirm() {
		return nil
	}
	return s.mutator.Run(ctx, id,
		func(ctx context.Context) error { return s.client.DeleteLearningPlan(ctx, id) },
		func(m *mirror.Mirror[api.LearningPlan]) { m.RemoveByID(id) },
	)
}

// Share records the share server-side and returns the deep links the
// caller can open. A failed backend call still returns usable links;
// the share count is best-effort.
func (s *Service) Share(ctx context.Context, id string, opts ShareOptions) (ShareLinks, error) {
	plan, ok := s.plans.Get(id)
	if !ok {
		return ShareLinks{}, mirror.ErrNotFound
	}
	links, err := BuildShareLinks(plan, opts)
	if err != nil {
		return ShareLinks{}, err
	}
	if err := s.client.ShareLearningPlan(ctx, id); err != nil {
		s.logger.Warn("share count not recorded", "plan_id", id, "error", err)
	}
	return links, nil
}

// CanModify reports whether the current user owns the plan.
func (s *Service) CanModify(plan api.LearningPlan) bool {
	user, ok := s.session.CurrentUser()
	return ok && user.ID == plan.CreatedBy
}
