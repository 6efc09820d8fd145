package utils

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/younsl/shotty/internal/models"
)

// GetTagsMap converts a slice of tags to a tag set.
// Tags with a nil value are kept with an empty value so that lookups still see the key.
func GetTagsMap(tags []types.Tag) models.Tags {
	result := make(models.Tags, len(tags))
	for _, tag := range tags {
		if tag.Key == nil {
			continue
		}
		result[*tag.Key] = aws.ToString(tag.Value)
	}
	return result
}

// TagFilter builds a DescribeX filter matching resources tagged key=value
func TagFilter(key, value string) types.Filter {
	return types.Filter{
		Name:   aws.String("tag:" + key),
		Values: []string{value},
	}
}
