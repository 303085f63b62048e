package tfplan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePlan = `{
  "format_version": "1.2",
  "terraform_version": "1.7.0",
  "resource_changes": [
    {
      "address": "aws_s3_bucket.logs",
      "mode": "managed",
      "type": "aws_s3_bucket",
      "name": "logs",
      "provider_name": "registry.terraform.io/hashicorp/aws",
      "change": {
        "actions": ["create"],
        "before": null,
        "after": {"acl": "public-read", "bucket": "logs"}
      }
    },
    {
      "address": "aws_s3_bucket.assets",
      "mode": "managed",
      "type": "aws_s3_bucket",
      "name": "assets",
      "change": {
        "actions": ["update"],
        "after": {"acl": "private", "bucket": "assets"}
      }
    },
    {
      "address": "aws_s3_bucket.old",
      "mode": "managed",
      "type": "aws_s3_bucket",
      "name": "old",
      "change": {
        "actions": ["delete"],
        "after": null
      }
    },
    {
      "address": "data.aws_s3_bucket.external",
      "mode": "data",
      "type": "aws_s3_bucket",
      "name": "external",
      "change": {
        "actions": ["read"],
        "after": {}
      }
    },
    {
      "address": "aws_instance.web",
      "mode": "managed",
      "type": "aws_instance",
      "name": "web",
      "change": {
        "actions": ["create"],
        "after": {"instance_type": "t3.micro"}
      }
    }
  ]
}`

func TestParse(t *testing.T) {
	plan, err := Parse(strings.NewReader(samplePlan))
	require.NoError(t, err)

	assert.Equal(t, "1.7.0", plan.TerraformVersion)
	require.Len(t, plan.ResourceChanges, 5)

	rc := plan.ResourceChanges[0]
	assert.Equal(t, "aws_s3_bucket.logs", rc.Address)
	assert.Equal(t, ModeManaged, rc.Mode)
	assert.True(t, rc.Change.HasAction(ActionCreate))

	after, ok := rc.Change.After.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "public-read", after["acl"])
}

func TestParseRejectsBadJSON(t *testing.T) {
	_, err := Parse(strings.NewReader("{not json"))
	assert.Error(t, err)
}

func TestFindResources(t *testing.T) {
	plan, err := Parse(strings.NewReader(samplePlan))
	require.NoError(t, err)

	buckets := plan.FindResources("aws_s3_bucket")
	// Deleted and data resources are excluded.
	require.Len(t, buckets, 2)
	assert.Contains(t, buckets, "aws_s3_bucket.logs")
	assert.Contains(t, buckets, "aws_s3_bucket.assets")

	instances := plan.FindResources("aws_instance")
	assert.Len(t, instances, 1)

	assert.Empty(t, plan.FindResources("aws_ebs_volume"))
}

func TestHasAction(t *testing.T) {
	c := Change{Actions: []string{ActionDelete, ActionCreate}}
	assert.True(t, c.HasAction(ActionCreate))
	assert.True(t, c.HasAction(ActionDelete))
	assert.False(t, c.HasAction(ActionUpdate))
}
