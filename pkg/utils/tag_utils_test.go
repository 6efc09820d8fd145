package utils

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/stretchr/testify/assert"
)

func TestGetTagsMap(t *testing.T) {
	tags := []types.Tag{
		{Key: aws.String("Project"), Value: aws.String("demo")},
		{Key: aws.String("Empty"), Value: nil},
		{Key: nil, Value: aws.String("orphan")},
	}

	got := GetTagsMap(tags)

	assert.Equal(t, "demo", got["Project"])
	v, ok := got.Get("Empty")
	assert.True(t, ok)
	assert.Equal(t, "", v)
	assert.Len(t, got, 2)
}

func TestTagFilter(t *testing.T) {
	f := TagFilter("Project", "demo")

	assert.Equal(t, "tag:Project", aws.ToString(f.Name))
	assert.Equal(t, []string{"demo"}, f.Values)
}

func TestSafeDeref(t *testing.T) {
	assert.Equal(t, 0, SafeDerefInt32(nil))
	assert.Equal(t, 8, SafeDerefInt32(aws.Int32(8)))
	assert.False(t, SafeDerefBool(nil))
	assert.True(t, SafeDerefBool(aws.Bool(true)))
}
