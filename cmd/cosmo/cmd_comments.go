// Copyright (C) 2025 Cosmo Connect (dayanakumar-IT)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/pkg/ux"
	"github.com/dayanakumar-IT/CosmoConnect-SkillSharingApp-PAF-sub000/services/feed"
)

var (
	commentCmd = &cobra.Command{
		Use:   "comment",
		Short: "Read and write post comments",
	}

	commentListCmd = &cobra.Command{
		Use:   "list [post-id]",
		Short: "Show a post's comment thread",
		Args:  cobra.ExactArgs(1),
		RunE:  runCommentList,
	}

	commentAddCmd = &cobra.Command{
		Use:   "add [post-id] [text]",
		Short: "Comment on a post",
		Args:  cobra.ExactArgs(2),
		RunE:  runCommentAdd,
	}

	commentEditCmd = &cobra.Command{
		Use:   "edit [post-id] [comment-id] [text]",
		Short: "Edit one of your comments",
		Args:  cobra.ExactArgs(3),
		RunE:  runCommentEdit,
	}

	commentDeleteCmd = &cobra.Command{
		Use:   "delete [post-id] [comment-id]",
		Short: "Delete one of your comments",
		Args:  cobra.ExactArgs(2),
		RunE:  runCommentDelete,
	}

	commentLikeCmd = &cobra.Command{
		Use:   "like [post-id] [comment-id]",
		Short: "Like or unlike a comment",
		Args:  cobra.ExactArgs(2),
		RunE:  runCommentLike,
	}
)

func openSection(cmd *cobra.Command, postID string) (*feed.CommentSection, error) {
	section := feed.NewCommentSection(cosmo.client, cosmo.session, postID)
	err := withSpinner("Fetching comments", func() error {
		return section.Refresh(cmd.Context())
	})
	if err != nil {
		return nil, err
	}
	return section, nil
}

func runCommentList(cmd *cobra.Command, args []string) error {
	section, err := openSection(cmd, args[0])
	if err != nil {
		return err
	}
	comments := section.Comments()
	if len(comments) == 0 {
		ux.Muted("No comments yet.")
		return nil
	}
	for _, c := range comments {
		ux.Info(fmt.Sprintf("%s %s: %s %s",
			ux.Styles.Muted.Render(c.ID),
			ux.Styles.Bold.Render(c.Author.Name),
			c.Content,
			ux.Styles.Muted.Render(fmt.Sprintf("(%d likes)", c.LikeCount))))
	}
	return nil
}

func runCommentAdd(cmd *cobra.Command, args []string) error {
	if err := requireLogin(); err != nil {
		return err
	}
	section, err := openSection(cmd, args[0])
	if err != nil {
		return err
	}
	created, err := section.Add(cmd.Context(), args[1])
	if err != nil {
		return err
	}
	ux.Success(fmt.Sprintf("Comment %s added.", created.ID))
	return nil
}

func runCommentEdit(cmd *cobra.Command, args []string) error {
	if err := requireLogin(); err != nil {
		return err
	}
	section, err := openSection(cmd, args[0])
	if err != nil {
		return err
	}
	if _, err := section.Edit(cmd.Context(), args[1], args[2]); err != nil {
		return err
	}
	ux.Success("Comment updated.")
	return nil
}

func runCommentDelete(cmd *cobra.Command, args []string) error {
	if err := requireLogin(); err != nil {
		return err
	}
	section, err := openSection(cmd, args[0])
	if err != nil {
		return err
	}
	err = section.Delete(cmd.Context(), args[1], func() bool {
		return confirm("Delete this comment?")
	})
	if err != nil {
		return err
	}
	ux.Success("Done.")
	return nil
}

func runCommentLike(cmd *cobra.Command, args []string) error {
	if err := requireLogin(); err != nil {
		return err
	}
	section, err := openSection(cmd, args[0])
	if err != nil {
		return err
	}
	if err := section.ToggleLike(cmd.Context(), args[1]); err != nil {
		return err
	}
	ux.Success("Done.")
	return nil
}
