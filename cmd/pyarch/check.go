package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AdrianaGRO/PyArch.dev/internal/repository"
	"github.com/AdrianaGRO/PyArch.dev/internal/service"
	"github.com/AdrianaGRO/PyArch.dev/internal/validator"
)

// errCheckFailed is returned when any document has problems.
var errCheckFailed = errors.New("content check failed")

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Load every content document and report problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			postRepo, projectRepo, pricingRepo := openRepositories(a.cfg)
			problems := checkContent(cmd.Context(), cmd.OutOrStdout(), postRepo, projectRepo.ReadOnly(), pricingRepo)
			if problems > 0 {
				return fmt.Errorf("%w: %d problem(s)", errCheckFailed, problems)
			}
			return nil
		},
	}
}

// newReadOnlyService builds a content service without image storage.
func newReadOnlyService(
	postRepo *repository.JSONPostRepository,
	projectRepo *repository.JSONProjectRepository,
	pricingRepo *repository.JSONPricingRepository,
) *service.ContentService {
	return service.NewContentService(postRepo, projectRepo, pricingRepo, nil, validator.NewValidator())
}

// checkContent writes one line per document plus one per bad record and
// returns the number of problems found.
func checkContent(
	ctx context.Context,
	out io.Writer,
	postRepo *repository.JSONPostRepository,
	projectRepo *repository.JSONProjectRepository,
	pricingRepo *repository.JSONPricingRepository,
) int {
	v := validator.NewValidator()
	problems := 0

	report := func(format string, args ...any) {
		problems++
		fmt.Fprintf(out, "  "+format+"\n", args...)
	}

	posts, err := postRepo.LoadAll(ctx)
	if err != nil {
		fmt.Fprintf(out, "posts     %s (%s): %v\n", postRepo.Path(), postRepo.Mode(), err)
		problems++
	} else {
		fmt.Fprintf(out, "posts     %s (%s): %d record(s)\n", postRepo.Path(), postRepo.Mode(), len(posts))
		seen := make(map[int]bool, len(posts))
		for i := range posts {
			if err := v.ValidatePost(&posts[i]); err != nil {
				report("post #%d: %s", posts[i].ID, joinMessages(err))
			}
			if seen[posts[i].ID] {
				report("post #%d: duplicate id", posts[i].ID)
			}
			seen[posts[i].ID] = true
		}
	}

	projects, err := projectRepo.LoadAll(ctx)
	if err != nil {
		fmt.Fprintf(out, "projects  %s (%s): %v\n", projectRepo.Path(), projectRepo.Mode(), err)
		problems++
	} else {
		fmt.Fprintf(out, "projects  %s (%s): %d record(s)%s\n", projectRepo.Path(), projectRepo.Mode(), len(projects), missingNote(projectRepo.Path()))
		seen := make(map[string]bool, len(projects))
		for i := range projects {
			if err := v.ValidateProject(&projects[i]); err != nil {
				report("project %q: %s", projects[i].Slug, joinMessages(err))
			}
			if seen[projects[i].Slug] {
				report("project %q: duplicate slug", projects[i].Slug)
			}
			seen[projects[i].Slug] = true
		}
	}

	pricing, err := pricingRepo.Load(ctx)
	if err != nil {
		fmt.Fprintf(out, "pricing   %s (%s): %v\n", pricingRepo.Path(), pricingRepo.Mode(), err)
		problems++
	} else {
		fmt.Fprintf(out, "pricing   %s (%s): %d tier(s)%s\n", pricingRepo.Path(), pricingRepo.Mode(), len(pricing.PricingTierInfo()), missingNote(pricingRepo.Path()))
	}

	return problems
}

// missingNote flags lenient documents that are served empty because the
// file does not exist.
func missingNote(path string) string {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return ", file missing"
	}
	return ""
}

func joinMessages(err error) string {
	return strings.Join(validator.Messages(err), " ")
}
