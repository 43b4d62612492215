package ecr

import (
	"context"
	"fmt"

	awsecr "github.com/aws/aws-sdk-go-v2/service/ecr"
)

// API is the slice of the ECR SDK client this package consumes.
// This interface is implemented by *awsecr.Client and can be used for testing.
type API interface {
	DescribeRepositories(ctx context.Context, params *awsecr.DescribeRepositoriesInput, optFns ...func(*awsecr.Options)) (*awsecr.DescribeRepositoriesOutput, error)
	DescribeImages(ctx context.Context, params *awsecr.DescribeImagesInput, optFns ...func(*awsecr.Options)) (*awsecr.DescribeImagesOutput, error)
}

// Ensure the SDK client implements API at compile time.
var _ API = (*awsecr.Client)(nil)

// Client wraps the ECR API with the listing calls the browser needs.
type Client struct {
	api API
}

// NewClient builds a Client on top of an ECR API implementation.
func NewClient(api API) *Client {
	return &Client{api: api}
}

// ListRepositories fetches every repository visible to the configured
// registry in one page.
func (c *Client) ListRepositories(ctx context.Context) ([]Repository, error) {
	if c == nil || c.api == nil {
		return nil, fmt.Errorf("ecr client is not initialized")
	}
	out, err := c.api.DescribeRepositories(ctx, &awsecr.DescribeRepositoriesInput{})
	if err != nil {
		return nil, fmt.Errorf("describe repositories: %w", err)
	}
	repos := make([]Repository, 0, len(out.Repositories))
	for _, r := range out.Repositories {
		repos = append(repos, repositoryFromSDK(r))
	}
	return repos, nil
}

// ListImages fetches the image details of one repository, newest first.
func (c *Client) ListImages(ctx context.Context, repositoryName string) ([]Image, error) {
	if c == nil || c.api == nil {
		return nil, fmt.Errorf("ecr client is not initialized")
	}
	out, err := c.api.DescribeImages(ctx, &awsecr.DescribeImagesInput{
		RepositoryName: &repositoryName,
	})
	if err != nil {
		return nil, fmt.Errorf("describe images for %s: %w", repositoryName, err)
	}
	images := make([]Image, 0, len(out.ImageDetails))
	for _, d := range out.ImageDetails {
		images = append(images, imageFromSDK(d))
	}
	sortImages(images)
	return images, nil
}
