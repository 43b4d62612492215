package ecr

import (
	"fmt"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecr/types"
)

// Repository is one ECR repository as shown in the list view.
type Repository struct {
	Name          string
	URI           string
	RegistryID    string
	CreatedAt     *time.Time
	TagMutability string
	ScanOnPush    bool
	Encryption    string
}

// ItemID implements service.Item.
func (r Repository) ItemID() string { return r.Name }

// Image is one image inside a repository as shown in the detail view.
type Image struct {
	// Tag is the first tag of the image; empty for untagged images.
	Tag         string
	Digest      string
	PushedAt    *time.Time
	SizeBytes   int64
	ScanSummary string
}

// ItemID implements service.Item.
func (i Image) ItemID() string { return i.Digest }

func repositoryFromSDK(r types.Repository) Repository {
	repo := Repository{
		Name:          aws.ToString(r.RepositoryName),
		URI:           aws.ToString(r.RepositoryUri),
		RegistryID:    aws.ToString(r.RegistryId),
		CreatedAt:     r.CreatedAt,
		TagMutability: string(types.ImageTagMutabilityMutable),
		Encryption:    string(types.EncryptionTypeAes256),
	}
	if r.ImageTagMutability != "" {
		repo.TagMutability = string(r.ImageTagMutability)
	}
	if r.ImageScanningConfiguration != nil {
		repo.ScanOnPush = r.ImageScanningConfiguration.ScanOnPush
	}
	if r.EncryptionConfiguration != nil && r.EncryptionConfiguration.EncryptionType != "" {
		repo.Encryption = string(r.EncryptionConfiguration.EncryptionType)
	}
	return repo
}

func imageFromSDK(d types.ImageDetail) Image {
	img := Image{
		Digest:    aws.ToString(d.ImageDigest),
		PushedAt:  d.ImagePushedAt,
		SizeBytes: aws.ToInt64(d.ImageSizeInBytes),
	}
	if len(d.ImageTags) > 0 {
		img.Tag = d.ImageTags[0]
	}
	if summary := d.ImageScanFindingsSummary; summary != nil {
		if counts := summary.FindingSeverityCounts; counts != nil {
			var total int32
			for _, n := range counts {
				total += n
			}
			if total > 0 {
				img.ScanSummary = fmt.Sprintf("%d findings", total)
			} else {
				img.ScanSummary = "No vulnerabilities"
			}
		} else {
			img.ScanSummary = "Scan pending"
		}
	}
	return img
}

// sortImages orders images by push date, latest first. Undated images sort
// after dated ones.
func sortImages(images []Image) {
	sort.SliceStable(images, func(i, j int) bool {
		ti, tj := images[i].PushedAt, images[j].PushedAt
		switch {
		case ti != nil && tj != nil:
			return ti.After(*tj)
		case ti != nil:
			return true
		default:
			return false
		}
	})
}
