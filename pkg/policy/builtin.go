package policy

// BuiltinSuite returns the default check suite applied when no suite
// files are supplied. The checks cover a few common baseline
// requirements; hosts are expected to replace them with their own.
func BuiltinSuite() *Suite {
	return &Suite{
		Name:        "builtin",
		Description: "Default baseline checks",
		Checks: []Check{
			{
				Name:         "s3-bucket-private-acl",
				Description:  "S3 buckets must use the private canned ACL",
				ResourceType: "aws_s3_bucket",
				Attribute:    "acl",
				Op:           OpNotEqual,
				Value:        "private",
				Severity:     SeverityError,
			},
			{
				Name:         "instance-count-limit",
				Description:  "EC2 autoscaling groups may not exceed 10 instances",
				ResourceType: "aws_autoscaling_group",
				Attribute:    "max_size",
				Op:           OpGreaterThan,
				Value:        10,
				Severity:     SeverityWarning,
			},
			{
				Name:         "ebs-volume-size-limit",
				Description:  "EBS volumes above 1000 GiB need review",
				ResourceType: "aws_ebs_volume",
				Attribute:    "size",
				Op:           OpGreaterThan,
				Value:        1000,
				Severity:     SeverityWarning,
			},
		},
	}
}
