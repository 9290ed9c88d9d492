// Copyright (C) 2025 Cosmo Connect (dayanakumar-IT)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/api"
	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/ux"
	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/services/feed"
)

var (
	postContent   string
	postCategory  string
	postTags      []string
	postMedia     []string
	postPublic    bool
	pollQuestion  string
	pollOptions   []string
	removedMedia  []string

	feedCmd = &cobra.Command{
		Use:   "feed",
		Short: "Browse and post to the community feed",
	}

	feedListCmd = &cobra.Command{
		Use:   "list",
		Short: "Show the feed",
		RunE:  runFeedList,
	}

	feedPostCmd = &cobra.Command{
		Use:   "post",
		Short: "Share a new post",
		RunE:  runFeedPost,
	}

	feedEditCmd = &cobra.Command{
		Use:   "edit [post-id]",
		Short: "Edit one of your posts",
		Args:  cobra.ExactArgs(1),
		RunE:  runFeedEdit,
	}

	feedDeleteCmd = &cobra.Command{
		Use:   "delete [post-id]",
		Short: "Delete one of your posts",
		Args:  cobra.ExactArgs(1),
		RunE:  runFeedDelete,
	}

	feedLikeCmd = &cobra.Command{
		Use:   "like [post-id]",
		Short: "Like or unlike a post",
		Args:  cobra.ExactArgs(1),
		RunE:  runFeedLike,
	}
)

func runFeedList(cmd *cobra.Command, args []string) error {
	err := withSpinner("Fetching the feed", func() error {
		return cosmo.feed.Refresh(cmd.Context())
	})
	if err != nil {
		return err
	}

	posts := cosmo.feed.Posts()
	if len(posts) == 0 {
		ux.Muted("The feed is empty. Be the first to post something.")
		return nil
	}
	for _, post := range posts {
		renderPost(post)
	}
	return nil
}

func renderPost(post api.Post) {
	header := fmt.Sprintf("%s %s", ux.Styles.Bold.Render(post.Author.Name),
		ux.Styles.Muted.Render(post.CreatedAt.Format("Jan 2 15:04")))
	lines := []string{header, post.Content}
	if len(post.SkillTags) > 0 {
		lines = append(lines, ux.Styles.Subtitle.Render("#"+strings.Join(post.SkillTags, " #")))
	}
	if post.Poll != nil {
		lines = append(lines, renderPoll(*post.Poll))
	}
	liked := string(ux.IconStar)
	if post.IsLiked {
		liked = ux.Styles.Highlight.Render(string(ux.IconStar))
	}
	lines = append(lines, ux.Styles.Muted.Render(fmt.Sprintf(
		"%s  %s %d likes  %d comments", post.ID, liked, post.LikeCount, post.CommentCount)))
	ux.Box(strings.Join(lines, "\n"))
}

// renderPoll shows whatever the backend stored, degenerate or not: a
// poll with one option or an empty question still renders.
func renderPoll(poll api.Poll) string {
	var b strings.Builder
	b.WriteString(ux.Styles.Subtitle.Render(poll.Question))
	for _, opt := range poll.Options {
		b.WriteString(fmt.Sprintf("\n  %s %s", ux.IconBullet, opt))
	}
	return b.String()
}

func runFeedPost(cmd *cobra.Command, args []string) error {
	req := api.PostRequest{
		Content:   postContent,
		Category:  postCategory,
		SkillTags: postTags,
		IsPublic:  postPublic,
	}
	if pollQuestion != "" || len(pollOptions) > 0 {
		req.Poll = &api.Poll{Question: pollQuestion, Options: pollOptions}
	}

	media, cleanup, err := openFileParts(postMedia)
	if err != nil {
		return err
	}
	defer cleanup()

	var created api.Post
	err = withSpinner("Publishing", func() error {
		var err error
		created, err = cosmo.feed.CreatePost(cmd.Context(), req, media)
		return err
	})
	if err != nil {
		return err
	}
	ux.Success(fmt.Sprintf("Posted %s.", created.ID))
	return nil
}

func runFeedEdit(cmd *cobra.Command, args []string) error {
	id := args[0]
	if err := withSpinner("Fetching the feed", func() error {
		return cosmo.feed.Refresh(cmd.Context())
	}); err != nil {
		return err
	}
	current, ok := cosmo.feed.Post(id)
	if !ok {
		return fmt.Errorf("post %s not found in the feed", id)
	}
	if !cosmo.feed.CanModify(current) {
		return fmt.Errorf("post %s belongs to %s", id, current.Author.Name)
	}

	content := postContent
	if content == "" {
		content = current.Content
	}

	// Collect the media diff: stored filenames to drop, new files to add.
	edit := feed.NewMediaEdit(current.MediaURLs)
	for _, name := range removedMedia {
		edit.Remove(name)
	}
	newMedia, cleanup, err := openFileParts(postMedia)
	if err != nil {
		return err
	}
	defer cleanup()
	for _, part := range newMedia {
		edit.Add(part)
	}

	req := api.PostRequest{
		Content:      content,
		Category:     current.Category,
		SkillTags:    current.SkillTags,
		IsPublic:     current.IsPublic,
		RemovedMedia: edit.Removed(),
	}

	var updated api.Post
	err = withSpinner("Saving", func() error {
		var err error
		updated, err = cosmo.feed.UpdatePost(cmd.Context(), id, req, edit.Added())
		return err
	})
	if err != nil {
		return err
	}
	ux.Success(fmt.Sprintf("Updated %s.", updated.ID))
	return nil
}

func runFeedDelete(cmd *cobra.Command, args []string) error {
	id := args[0]
	if err := withSpinner("Fetching the feed", func() error {
		return cosmo.feed.Refresh(cmd.Context())
	}); err != nil {
		return err
	}
	err := cosmo.feed.DeletePost(cmd.Context(), id, func() bool {
		return confirm(fmt.Sprintf("Delete post %s? This cannot be undone.", id))
	})
	if err != nil {
		return err
	}
	ux.Success("Done.")
	return nil
}

func runFeedLike(cmd *cobra.Command, args []string) error {
	if err := requireLogin(); err != nil {
		return err
	}
	if err := withSpinner("Fetching the feed", func() error {
		return cosmo.feed.Refresh(cmd.Context())
	}); err != nil {
		return err
	}
	if err := cosmo.feed.ToggleLike(cmd.Context(), args[0]); err != nil {
		return err
	}
	post, _ := cosmo.feed.Post(args[0])
	if post.IsLiked {
		ux.Success(fmt.Sprintf("Liked. Now at %d likes.", post.LikeCount))
	} else {
		ux.Success(fmt.Sprintf("Unliked. Now at %d likes.", post.LikeCount))
	}
	return nil
}

func init() {
	feedPostCmd.Flags().StringVarP(&postContent, "content", "c", "", "post text")
	feedPostCmd.Flags().StringVar(&postCategory, "category", "", "post category")
	feedPostCmd.Flags().StringSliceVar(&postTags, "tags", nil, "skill tags")
	feedPostCmd.Flags().StringSliceVar(&postMedia, "media", nil, "image/video files to attach")
	feedPostCmd.Flags().BoolVar(&postPublic, "public", true, "visible to everyone")
	feedPostCmd.Flags().StringVar(&pollQuestion, "poll", "", "poll question")
	feedPostCmd.Flags().StringSliceVar(&pollOptions, "poll-option", nil, "poll option (repeatable)")

	feedEditCmd.Flags().StringVarP(&postContent, "content", "c", "", "replacement text")
	feedEditCmd.Flags().StringSliceVar(&postMedia, "media", nil, "new files to attach")
	feedEditCmd.Flags().StringSliceVar(&removedMedia, "remove-media", nil, "stored filenames to detach")
}
