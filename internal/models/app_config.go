// Package models provides the data structures persisted by the repositories and
// returned by the API. This file contains the decoded appconfig values that back
// the app manager.
package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yasinhessnawi1/sharecloud/internal/constants"
	"github.com/yasinhessnawi1/sharecloud/internal/utils"
)

// Enablement is the decoded form of an app's "enabled" value.
//
// The stored value is "yes" (enabled for everyone), "no" (installed but disabled)
// or a JSON array of group ids the app is restricted to.
type Enablement struct {
	Enabled bool
	Groups  []string
}

// ForEveryone reports whether the app is enabled without a group restriction.
func (e Enablement) ForEveryone() bool {
	return e.Enabled && len(e.Groups) == 0
}

// AllowsGroups reports whether a member of the given groups may use the app.
func (e Enablement) AllowsGroups(groups []string) bool {
	if !e.Enabled {
		return false
	}
	if len(e.Groups) == 0 {
		return true
	}
	return utils.Intersects(groups, e.Groups)
}

// Value encodes the enablement the way it is stored in appconfig.
func (e Enablement) Value() string {
	if !e.Enabled {
		return constants.EnabledNo
	}
	if len(e.Groups) == 0 {
		return constants.EnabledYes
	}
	// Marshalling a []string cannot fail
	data, _ := json.Marshal(e.Groups)
	return string(data)
}

// ParseEnablement decodes a stored "enabled" value.
// Unknown values are treated as disabled and reported as an error.
func ParseEnablement(value string) (Enablement, error) {
	switch v := strings.TrimSpace(value); {
	case v == constants.EnabledYes:
		return Enablement{Enabled: true}, nil
	case v == constants.EnabledNo || v == "":
		return Enablement{}, nil
	case strings.HasPrefix(v, "["):
		var groups []string
		if err := json.Unmarshal([]byte(v), &groups); err != nil {
			return Enablement{}, fmt.Errorf("invalid group list %q: %w", v, err)
		}
		if len(groups) == 0 {
			// An empty group list never matches anyone
			return Enablement{}, nil
		}
		return Enablement{Enabled: true, Groups: groups}, nil
	default:
		return Enablement{}, fmt.Errorf("unknown enabled value %q", v)
	}
}

// AppStatus describes one app as reported by the provisioning API.
type AppStatus struct {
	ID        string   `json:"id"`
	Installed bool     `json:"installed"`
	Enabled   bool     `json:"enabled"`
	Groups    []string `json:"groups"`

	// Version is the installed_version recorded when the app was installed, if any
	Version string `json:"version"`
}
