package tfplan

// Action values as they appear in a plan's resource_changes entries.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionNoOp   = "no-op"
	ActionRead   = "read"
)

// ModeManaged marks resources managed by Terraform, as opposed to
// data sources ("data").
const ModeManaged = "managed"

// Plan is the top-level structure of a JSON plan document.
type Plan struct {
	FormatVersion    string           `json:"format_version"`
	TerraformVersion string           `json:"terraform_version"`
	ResourceChanges  []ResourceChange `json:"resource_changes"`
}

// ResourceChange describes one proposed change to a single resource.
// Records are supplied wholesale by the plan and are never mutated.
type ResourceChange struct {
	Address      string `json:"address"`
	Mode         string `json:"mode"`
	Type         string `json:"type"`
	Name         string `json:"name"`
	ProviderName string `json:"provider_name"`
	Change       Change `json:"change"`
}

// Change holds the action list and the before/after attribute trees.
// After is an arbitrarily nested structure of JSON-decoded values.
type Change struct {
	Actions []string `json:"actions"`
	Before  any      `json:"before"`
	After   any      `json:"after"`
}

// HasAction reports whether the change includes the given action.
func (c Change) HasAction(action string) bool {
	for _, a := range c.Actions {
		if a == action {
			return true
		}
	}
	return false
}

// FindResources returns the managed resources of the given type that the
// plan creates or updates, keyed by address. Deleted and no-op resources
// are excluded because their post-change attributes are not meaningful
// for compliance checks.
func (p *Plan) FindResources(resourceType string) map[string]*ResourceChange {
	resources := make(map[string]*ResourceChange)
	for i := range p.ResourceChanges {
		rc := &p.ResourceChanges[i]
		if rc.Type != resourceType || rc.Mode != ModeManaged {
			continue
		}
		if rc.Change.HasAction(ActionCreate) || rc.Change.HasAction(ActionUpdate) {
			resources[rc.Address] = rc
		}
	}
	return resources
}
