package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rios0rios0/nextver/internal/domain/entities"
)

const (
	bodyIndent     = "  "
	headerDemotion = "###"
	maxScaledLevel = 3
)

// RenderOptions toggles the optional parts of the changelog.
type RenderOptions struct {
	Contributors  bool
	HeaderScaling bool
	CompareLink   bool
}

// DefaultRenderOptions enables header scaling and the comparison link.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{HeaderScaling: true, CompareLink: true}
}

// ReleaseInfo describes the release the changelog is rendered for.
type ReleaseInfo struct {
	Previous entities.Version
	Next     entities.Version
	Remote   *entities.RemoteInfo
}

// ChangelogRenderer turns a changeset summary into markdown.
type ChangelogRenderer struct{}

// NewChangelogRenderer creates a new ChangelogRenderer.
func NewChangelogRenderer() *ChangelogRenderer {
	return &ChangelogRenderer{}
}

// Render writes one bullet per commit in summary order. The resolver is
// only consulted when contributor attribution is enabled and may be nil.
func (it *ChangelogRenderer) Render(
	ctx context.Context,
	summary *entities.ChangesetSummary,
	release ReleaseInfo,
	options RenderOptions,
	resolver HandleResolver,
) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "### What's changed in %s\n\n", release.Next.Tag())

	if summary == nil || summary.IsEmpty() {
		builder.WriteString("* No changes\n")
	} else {
		for _, commit := range summary.Commits {
			it.renderCommit(ctx, &builder, commit, options, resolver)
		}
	}

	if link := compareLink(release, options); link != "" {
		builder.WriteString("\n")
		builder.WriteString(link)
		builder.WriteString("\n")
	}

	return builder.String()
}

func (it *ChangelogRenderer) renderCommit(
	ctx context.Context,
	builder *strings.Builder,
	commit entities.Commit,
	options RenderOptions,
	resolver HandleResolver,
) {
	builder.WriteString("* ")
	builder.WriteString(commit.HeadLine())
	if options.Contributors && resolver != nil {
		if handle, ok := resolver.ResolveHandle(ctx, commit); ok && handle != "" {
			fmt.Fprintf(builder, " (by @%s)", handle)
		}
	}
	builder.WriteString("\n")

	body := commit.BodyLines()
	if len(body) == 0 {
		return
	}

	builder.WriteString("\n")
	for _, line := range body {
		if strings.TrimSpace(line) == "" {
			builder.WriteString("\n")
			continue
		}
		if options.HeaderScaling {
			line = ScaleHeader(line)
		}
		builder.WriteString(bodyIndent)
		builder.WriteString(line)
		builder.WriteString("\n")
	}
}

// ScaleHeader demotes markdown headers of level 1 to 3 by three levels so
// they rank below the changelog's own heading. Deeper headers are kept.
func ScaleHeader(line string) string {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 || level > maxScaledLevel {
		return line
	}
	if level < len(line) && line[level] != ' ' {
		return line
	}
	return headerDemotion + line
}

func compareLink(release ReleaseInfo, options RenderOptions) string {
	if !options.CompareLink || release.Previous.IsZero() || !release.Remote.IsKnown() {
		return ""
	}
	from, to := release.Previous.Tag(), release.Next.Tag()
	url := release.Remote.CompareURL(from, to)
	if url == "" {
		return ""
	}
	return fmt.Sprintf("See full diff: [%s...%s](%s)", from, to, url)
}
