package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/AdrianaGRO/PyArch.dev/internal/domain"
)

func newPostsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "posts",
		Short: "Inspect blog posts",
	}

	var all bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List posts, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			postRepo, projectRepo, pricingRepo := openRepositories(a.cfg)
			content := newReadOnlyService(postRepo, projectRepo.ReadOnly(), pricingRepo)

			posts, err := content.ListPosts(cmd.Context(), all)
			if err != nil {
				return err
			}
			return writePosts(cmd, posts)
		},
	}
	list.Flags().BoolVar(&all, "all", false, "include unpublished posts")

	cmd.AddCommand(list)
	return cmd
}

func writePosts(cmd *cobra.Command, posts []domain.Post) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCREATED\tPUBLISHED\tTITLE")
	for _, p := range posts {
		fmt.Fprintf(tw, "%d\t%s\t%t\t%s\n", p.ID, p.DisplayDate(), p.IsPublished(), p.Title)
	}
	return tw.Flush()
}
