// Copyright (C) 2025 Cosmo Connect (dayanakumar-IT)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package api

import "time"

// The backend owns the authoritative shape of every entity here; the
// client treats them as DTOs and never invents fields. Mutable request
// payloads are separate structs with validate tags so pre-submission
// validation happens at one serialization boundary.

// User is the account as consumed by the client, including the optional
// astronomy profile facets.
type User struct {
	ID        string `json:"id"`
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	ImageURL  string `json:"imageUrl,omitempty"`
	Biography string `json:"biography,omitempty"`

	Location       string            `json:"location,omitempty"`
	Timezone       string            `json:"timezone,omitempty"`
	AstronomyLevel string            `json:"astronomyLevel,omitempty"`
	Interests      []string          `json:"interests,omitempty"`
	Equipment      []string          `json:"equipment,omitempty"`
	SocialLinks    map[string]string `json:"socialLinks,omitempty"`
	Languages      []string          `json:"languages,omitempty"`
}

// Author is the denormalized author reference embedded in posts and
// comments.
type Author struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// Poll is an optional inline poll on a post. The backend accepts a single
// option and an empty question; the client renders whatever it gets.
type Poll struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// Post is a feed entry.
type Post struct {
	ID           string    `json:"id"`
	Author       Author    `json:"author"`
	Content      string    `json:"content"`
	Category     string    `json:"category,omitempty"`
	SkillTags    []string  `json:"skillTags,omitempty"`
	MediaURLs    []string  `json:"mediaUrls,omitempty"`
	Poll         *Poll     `json:"poll,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	LikeCount    int       `json:"likeCount"`
	IsLiked      bool      `json:"isLiked"`
	CommentCount int       `json:"commentCount"`
	IsPublic     bool      `json:"isPublic"`
}

// PostRequest is the mutable portion of a post, serialized into the
// multipart "post" field as a JSON-encoded string. RemovedMedia is only
// meaningful on update and lists filenames to detach.
type PostRequest struct {
	Content      string   `json:"content" validate:"required"`
	Category     string   `json:"category,omitempty"`
	SkillTags    []string `json:"skillTags,omitempty"`
	Poll         *Poll    `json:"poll,omitempty"`
	IsPublic     bool     `json:"isPublic"`
	RemovedMedia []string `json:"removedMedia,omitempty"`
}

// Comment belongs to a post via PostID (a back-reference, not ownership).
type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	Author    Author    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	LikeCount int       `json:"likeCount"`
	IsLiked   bool      `json:"isLiked"`
}

// CommentRequest creates or edits a comment.
type CommentRequest struct {
	PostID  string `json:"postId" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// Difficulty levels accepted by the learning plan endpoints.
const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)

// LearningPlan is a shareable study plan owned by CreatedBy.
type LearningPlan struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	DifficultyLevel   string    `json:"difficultyLevel"`
	DurationWeeks     int       `json:"duration"`
	Certificate       string    `json:"certificate,omitempty"`
	Price             *float64  `json:"price,omitempty"`
	IsPublic          bool      `json:"isPublic"`
	LearningMaterials []string  `json:"learningMaterials,omitempty"`
	CreatedBy         string    `json:"createdBy"`
	CreatedAt         time.Time `json:"createdAt"`
}

// LearningPlanRequest is the wizard's submission payload.
type LearningPlanRequest struct {
	Title           string   `json:"title" validate:"required"`
	Description     string   `json:"description" validate:"required"`
	DifficultyLevel string   `json:"difficultyLevel" validate:"required,oneof=Beginner Intermediate Advanced"`
	DurationWeeks   int      `json:"duration" validate:"required,min=1"`
	Certificate     string   `json:"certificate,omitempty"`
	Price           *float64 `json:"price,omitempty" validate:"omitempty,min=0"`
	IsPublic        bool     `json:"isPublic"`
}

// LearningProgressEntry is a personal study log record.
type LearningProgressEntry struct {
	ID                   string    `json:"id"`
	Topic                string    `json:"topic"`
	Subject              string    `json:"subject"`
	Reflection           string    `json:"reflection,omitempty"`
	StartDate            time.Time `json:"startDate"`
	EndDate              time.Time `json:"endDate"`
	TimeSpentInHours     float64   `json:"timeSpentInHours"`
	CurrentProgressStage int       `json:"currentProgressStage"`
	Skills               []string  `json:"skills,omitempty"`
	NextSteps            []string  `json:"nextSteps,omitempty"`
	IsPublic             bool      `json:"isPublic"`
}

// LearningProgressRequest creates or edits a progress entry.
type LearningProgressRequest struct {
	Topic                string    `json:"topic" validate:"required"`
	Subject              string    `json:"subject" validate:"required"`
	Reflection           string    `json:"reflection,omitempty"`
	StartDate            time.Time `json:"startDate" validate:"required"`
	EndDate              time.Time `json:"endDate" validate:"required"`
	TimeSpentInHours     float64   `json:"timeSpentInHours" validate:"min=0"`
	CurrentProgressStage int       `json:"currentProgressStage" validate:"min=1,max=10"`
	Skills               []string  `json:"skills,omitempty"`
	NextSteps            []string  `json:"nextSteps,omitempty"`
	IsPublic             bool      `json:"isPublic"`
}

// Competition is an astronomy competition listing. Banner and instruction
// documents are uploaded alongside the JSON payload as multipart files.
type Competition struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	BannerURL       string    `json:"bannerUrl,omitempty"`
	InstructionsURL string    `json:"instructionsUrl,omitempty"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	CreatedBy       string    `json:"createdBy"`
}

// CompetitionRequest is the mutable portion of a competition, serialized
// into the multipart "competition" field.
type CompetitionRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description" validate:"required"`
	StartDate   time.Time `json:"startDate" validate:"required"`
	EndDate     time.Time `json:"endDate" validate:"required"`
}

// Notification is a user notification. IsRead flips once; marking an
// already-read notification again is a client-side no-op.
type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Registration is the sign-up payload. ConfirmPassword never leaves the
// client; it exists so the match check happens before serialization.
type Registration struct {
	FullName        string `json:"fullName" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"-" validate:"eqfield=Password"`
}

// AuthResponse is returned by login and register.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ProfileUpdate is the explicit profile-edit submission.
type ProfileUpdate struct {
	FullName       string            `json:"fullName" validate:"required"`
	Biography      string            `json:"biography,omitempty"`
	Location       string            `json:"location,omitempty"`
	Timezone       string            `json:"timezone,omitempty"`
	AstronomyLevel string            `json:"astronomyLevel,omitempty"`
	Interests      []string          `json:"interests,omitempty"`
	Equipment      []string          `json:"equipment,omitempty"`
	SocialLinks    map[string]string `json:"socialLinks,omitempty"`
	Languages      []string          `json:"languages,omitempty"`
}
