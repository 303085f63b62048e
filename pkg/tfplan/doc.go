// Package tfplan models the JSON representation of a Terraform plan
// (the output of `terraform show -json`) and provides the resource
// selection helper used by policy checks. Only the fields the check
// engine needs are decoded; the rest of the document is ignored.
package tfplan
