// Package ecr implements the repository and image browsing service on top of
// the AWS Elastic Container Registry API.
package ecr

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jaehong21/ats/internal/service"
)

// Service exposes ECR repositories (list view) and their images (detail
// view) through the resource-browsing contract.
type Service struct {
	client *Client
}

// Ensure Service satisfies the contract at compile time.
var _ service.Service = (*Service)(nil)

// NewService builds the ECR service on top of client.
func NewService(client *Client) *Service {
	return &Service{client: client}
}

// Metadata implements service.Service.
func (s *Service) Metadata() service.Metadata {
	return service.Metadata{
		ID:          "ecr",
		Name:        "Elastic Container Registry",
		Description: "AWS container registry for Docker images",
		Command:     "ecr",
	}
}

// LoadData implements service.Service. The list view fetches repositories;
// the detail view fetches the images of the drilled-into repository. A
// detail view without drill context yields empty data rather than an error.
func (s *Service) LoadData(ctx context.Context, view service.ViewState) (service.Data, error) {
	switch view.View {
	case service.ViewList:
		repos, err := s.client.ListRepositories(ctx)
		if err != nil {
			return service.Data{}, &service.RemoteError{Service: s.Metadata().ID, Err: err}
		}
		items := make([]service.Item, 0, len(repos))
		for _, r := range repos {
			items = append(items, r)
		}
		return service.Data{Items: items}, nil

	case service.ViewDetail:
		if view.Drill == nil {
			return service.Data{}, nil
		}
		images, err := s.client.ListImages(ctx, view.Drill.ParentName)
		if err != nil {
			return service.Data{}, &service.RemoteError{Service: s.Metadata().ID, Err: err}
		}
		items := make([]service.Item, 0, len(images))
		for _, img := range images {
			items = append(items, img)
		}
		return service.Data{Items: items}, nil

	default:
		return service.Data{}, nil
	}
}

// HandleEnter implements service.Service. A list-view enter drills into the
// selected repository; the image view is a terminal state.
func (s *Service) HandleEnter(view service.ViewState, data service.Data) (service.ViewState, bool) {
	if view.View != service.ViewList {
		return service.ViewState{}, false
	}
	filtered := service.Filter(s, data, view.SearchFilter)
	if view.SelectedIndex >= len(filtered) {
		return service.ViewState{}, false
	}
	repo, ok := filtered[view.SelectedIndex].(Repository)
	if !ok {
		return service.ViewState{}, false
	}
	next := service.NewViewState(s.Metadata().ID, service.ViewDetail)
	next.Drill = &service.DrillContext{ParentName: repo.Name, ParentURI: repo.URI}
	return next, true
}

// CopyContent implements service.Service. Repositories export their URI;
// images export a pullable reference, by tag when present and by digest
// otherwise.
func (s *Service) CopyContent(view service.ViewState, data service.Data) (service.CopyPayload, bool) {
	filtered := service.Filter(s, data, view.SearchFilter)
	if view.SelectedIndex >= len(filtered) {
		return service.CopyPayload{}, false
	}

	switch item := filtered[view.SelectedIndex].(type) {
	case Repository:
		return service.CopyPayload{Content: item.URI, Label: item.Name}, true

	case Image:
		if view.Drill == nil {
			return service.CopyPayload{}, false
		}
		name, uri := view.Drill.ParentName, view.Drill.ParentURI
		if item.Tag != "" {
			return service.CopyPayload{
				Content: fmt.Sprintf("%s:%s", uri, item.Tag),
				Label:   fmt.Sprintf("%s:%s", name, item.Tag),
			}, true
		}
		return service.CopyPayload{
			Content: fmt.Sprintf("%s@%s", uri, item.Digest),
			Label:   fmt.Sprintf("%s@%s", name, shortDigest(item.Digest)),
		}, true

	default:
		return service.CopyPayload{}, false
	}
}

// MatchesFilter implements service.Service. Repositories match on name,
// images on tag; untagged images never match a non-empty filter.
func (s *Service) MatchesFilter(item service.Item, filter string) bool {
	needle := strings.ToLower(filter)
	switch it := item.(type) {
	case Repository:
		return strings.Contains(strings.ToLower(it.Name), needle)
	case Image:
		if it.Tag == "" {
			return false
		}
		return strings.Contains(strings.ToLower(it.Tag), needle)
	default:
		return false
	}
}

// Render implements service.Service.
func (s *Service) Render(rc service.RenderContext, view service.ViewState, data service.Data) string {
	switch view.View {
	case service.ViewList:
		return s.renderRepositories(rc, view, data)
	case service.ViewDetail:
		return s.renderImages(rc, view, data)
	default:
		return ""
	}
}

func (s *Service) renderRepositories(rc service.RenderContext, view service.ViewState, data service.Data) string {
	filtered := service.Filter(s, data, view.SearchFilter)
	title := paneTitle("ECR Repositories", rc.Loading, view.SearchFilter, len(filtered), len(data.Items))

	if len(filtered) == 0 {
		msg := emptyMessage("repositories", rc.Loading, view.SearchFilter)
		return renderEmptyPane(rc, title, msg)
	}

	cols := []column{
		{"REPOSITORY NAME", 30},
		{"REGISTRY ID", 14},
		{"CREATED", 17},
		{"TAG MUTABILITY", 14},
		{"SCAN ON PUSH", 12},
		{"ENCRYPTION", 10},
	}

	rows := make([][]cell, 0, len(filtered))
	styles := rc.Theme.Styles()
	for _, item := range filtered {
		repo, ok := item.(Repository)
		if !ok {
			continue
		}
		scan := "No"
		if repo.ScanOnPush {
			scan = "Yes"
		}
		rows = append(rows, []cell{
			{repo.Name, styles.Text},
			{repo.RegistryID, styles.MutedText},
			{formatTime(repo.CreatedAt), styles.MutedText},
			{repo.TagMutability, styles.FaintText},
			{scan, styles.FaintText},
			{repo.Encryption, styles.FaintText},
		})
	}

	return renderTable(rc, title, cols, rows, view.SelectedIndex)
}

func (s *Service) renderImages(rc service.RenderContext, view service.ViewState, data service.Data) string {
	repoName := "Unknown"
	if view.Drill != nil {
		repoName = view.Drill.ParentName
	}
	heading := fmt.Sprintf("ECR Repositories: %s > ECR Images", repoName)

	filtered := service.Filter(s, data, view.SearchFilter)
	title := paneTitle(heading, rc.Loading, view.SearchFilter, len(filtered), len(data.Items))

	if len(filtered) == 0 {
		msg := emptyMessage("images", rc.Loading, view.SearchFilter)
		return renderEmptyPane(rc, title, msg)
	}

	cols := []column{
		{"IMAGE TAG", 24},
		{"DIGEST", 30},
		{"PUSHED AT", 17},
		{"SIZE", 10},
		{"VULNERABILITIES", 18},
	}

	rows := make([][]cell, 0, len(filtered))
	styles := rc.Theme.Styles()
	for _, item := range filtered {
		img, ok := item.(Image)
		if !ok {
			continue
		}
		tag := img.Tag
		tagStyle := styles.Text
		if tag == "" {
			tag = "<none>"
			tagStyle = styles.FaintText
		}
		rows = append(rows, []cell{
			{tag, tagStyle},
			{img.Digest, styles.MutedText},
			{formatTime(img.PushedAt), styles.MutedText},
			{formatSize(img.SizeBytes), styles.FaintText},
			{scanSummaryLabel(img.ScanSummary), scanSummaryStyle(img.ScanSummary, styles)},
		})
	}

	return renderTable(rc, title, cols, rows, view.SelectedIndex)
}

func scanSummaryLabel(summary string) string {
	if summary == "" {
		return "Not scanned"
	}
	return summary
}

func scanSummaryStyle(summary string, styles themeStyles) lipgloss.Style {
	switch {
	case summary == "":
		return styles.FaintText
	case summary == "Scan pending":
		return styles.WarningText
	case summary == "No vulnerabilities":
		return styles.SuccessText
	default:
		return styles.DangerText
	}
}

const digestLabelLimit = 36

// shortDigest shortens a digest for footer labels; clipboard content always
// carries the full digest.
func shortDigest(digest string) string {
	runes := []rune(digest)
	if len(runes) <= digestLabelLimit {
		return digest
	}
	return string(runes[:digestLabelLimit]) + "..."
}
