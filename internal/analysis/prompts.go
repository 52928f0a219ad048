package analysis

import (
	"fmt"
	"strings"

	"github.com/tensorus/repoagent/internal/domain/models"
)

// BuildPrompt renders the analysis prompt for a repository category. It
// is a pure string template: repository content is embedded as-is, with
// no escaping or validation.
func BuildPrompt(cat Category, info *models.RepositoryInfo) (string, error) {
	if cat == CategoryReview {
		return "", fmt.Errorf("category %q requires a pull request, use BuildReviewPrompt", cat)
	}
	spec, ok := promptSpecs[cat]
	if !ok {
		return "", fmt.Errorf("unknown analysis category %q", cat)
	}

	var sb strings.Builder
	sb.WriteString(spec.intro)
	sb.WriteString("\n\nRepository Information:\n")
	fmt.Fprintf(&sb, "- Description: %s\n", info.Description)
	fmt.Fprintf(&sb, "- Languages: %s\n", strings.Join(info.Languages, ", "))
	fmt.Fprintf(&sb, "- Stars: %d\n", info.Stars)
	fmt.Fprintf(&sb, "- Forks: %d\n", info.Forks)
	fmt.Fprintf(&sb, "- Watchers: %d\n", info.Watchers)
	fmt.Fprintf(&sb, "- Open Issues: %d\n", info.OpenIssuesCount)
	fmt.Fprintf(&sb, "- Default Branch: %s\n", info.DefaultBranch)

	if len(info.RecentCommits) > 0 {
		sb.WriteString("\nRecent Commits:\n")
		sb.WriteString(formatCommits(info.RecentCommits))
	}

	sb.WriteString("\nPlease analyze the repository and provide detailed suggestions for improvements in the following categories:\n")
	writeSections(&sb, spec.sections)
	writeFormatInstruction(&sb, spec.sections)
	return sb.String(), nil
}

// BuildReviewPrompt renders the review prompt for a single pull request.
func BuildReviewPrompt(pr *models.PullRequestInfo) string {
	spec := promptSpecs[CategoryReview]

	var sb strings.Builder
	sb.WriteString(spec.intro)
	sb.WriteString("\n\nPull Request Information:\n")
	fmt.Fprintf(&sb, "- Title: %s\n", pr.Title)
	fmt.Fprintf(&sb, "- Author: %s\n", pr.Author)
	fmt.Fprintf(&sb, "- Created: %s\n", pr.CreatedAt)
	fmt.Fprintf(&sb, "- Changes: %d files changed\n", pr.ChangedFiles)
	if pr.Body != "" {
		fmt.Fprintf(&sb, "\nDescription:\n%s\n", pr.Body)
	}

	sb.WriteString("\nPlease review the changes and provide feedback in the following categories:\n")
	writeSections(&sb, spec.sections)
	writeFormatInstruction(&sb, spec.sections)
	return sb.String()
}

func formatCommits(commits []models.CommitSummary) string {
	var sb strings.Builder
	for _, c := range commits {
		author := c.AuthorName
		if author == "" {
			author = "Unknown"
		}
		fmt.Fprintf(&sb, "- %s (%s)\n", c.Message, author)
	}
	return sb.String()
}

func writeSections(sb *strings.Builder, sections []promptSection) {
	for i, s := range sections {
		fmt.Fprintf(sb, "\n%d. %s:\n", i+1, s.heading)
		for _, b := range s.bullets {
			fmt.Fprintf(sb, "- %s\n", b)
		}
	}
}

func writeFormatInstruction(sb *strings.Builder, sections []promptSection) {
	sb.WriteString("\nPlease format your response as a JSON object with the following structure:\n{\n")
	for i, s := range sections {
		sb.WriteString(fmt.Sprintf("    %q: [\"description\", ...]", s.key))
		if i < len(sections)-1 {
			sb.WriteByte(',')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("}\n")
}
