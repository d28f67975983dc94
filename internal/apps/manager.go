// Package apps keeps track of which apps are installed and who they are enabled for.
//
// An app is installed when it has an "enabled" value in appconfig. The value is
// "yes" (everyone), "no" (disabled) or a JSON list of groups.
package apps

import (
	"context"
	"sort"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/yasinhessnawi1/sharecloud/internal/auth"
	"github.com/yasinhessnawi1/sharecloud/internal/constants"
	"github.com/yasinhessnawi1/sharecloud/internal/models"
	"github.com/yasinhessnawi1/sharecloud/internal/repository"
	"github.com/yasinhessnawi1/sharecloud/internal/utils"
)

// AppManager is the contract plugin code and the provisioning API use to
// query and change the enablement of apps.
type AppManager interface {
	// IsEnabledForUser checks if an app is enabled for user. When user is nil
	// the user attached to ctx is used.
	IsEnabledForUser(ctx context.Context, appID string, user *models.User) (bool, error)

	// IsInstalled checks if an app is installed in the instance.
	IsInstalled(ctx context.Context, appID string) (bool, error)

	// EnableApp enables an app for every user.
	EnableApp(ctx context.Context, appID string) error

	// EnableAppForGroups enables an app only for members of groups.
	EnableAppForGroups(ctx context.Context, appID string, groups []string) error

	// DisableApp disables an app for every user.
	DisableApp(ctx context.Context, appID string) error

	// GetEnabledAppsForUser lists all apps enabled for user, sorted by id.
	GetEnabledAppsForUser(ctx context.Context, user *models.User) ([]string, error)

	// GetInstalledApps lists all installed apps, sorted by id.
	GetInstalledApps(ctx context.Context) ([]string, error)
}

// Manager is the AppManager backed by the appconfig table.
type Manager struct {
	repo          repository.AppConfigRepository
	alwaysEnabled []string

	mu        sync.RWMutex
	installed map[string]models.Enablement // nil until loaded
	gen       uint64                       // bumped on every invalidation
}

// NewManager creates a Manager. Apps listed in alwaysEnabled can never be disabled.
func NewManager(repo repository.AppConfigRepository, alwaysEnabled []string) *Manager {
	return &Manager{
		repo:          repo,
		alwaysEnabled: utils.NormalizeList(alwaysEnabled),
	}
}

var _ AppManager = (*Manager)(nil)

// loadInstalled returns the cached enablement map, reading it from the database on a miss.
func (m *Manager) loadInstalled(ctx context.Context) (map[string]models.Enablement, error) {
	m.mu.RLock()
	installed, gen := m.installed, m.gen
	m.mu.RUnlock()
	if installed != nil {
		return installed, nil
	}

	values, err := m.repo.GetValuesByKey(ctx, constants.ConfigKeyEnabled)
	if err != nil {
		return nil, err
	}

	installed = make(map[string]models.Enablement, len(values))
	for appID, value := range values {
		enablement, err := models.ParseEnablement(value)
		if err != nil {
			// A broken value must not take the whole app list down
			log.Warn().Err(err).Str(constants.ParamAppID, appID).Msg("Treating app with unreadable enabled value as disabled")
		}
		installed[appID] = enablement
	}

	// Always enabled apps are installed and enabled for everyone, stored or not
	for _, appID := range m.alwaysEnabled {
		if enablement, ok := installed[appID]; !ok || !enablement.Enabled {
			installed[appID] = models.Enablement{Enabled: true}
		}
	}

	// A write that raced with this read leaves the cache empty
	m.mu.Lock()
	if m.gen == gen {
		m.installed = installed
	}
	m.mu.Unlock()

	return installed, nil
}

// invalidate drops the cached enablement map
func (m *Manager) invalidate() {
	m.mu.Lock()
	m.installed = nil
	m.gen++
	m.mu.Unlock()
}

// Refresh drops the cached enablement map so the next call rereads appconfig.
// Writes made by other server processes become visible this way.
func (m *Manager) Refresh() {
	m.invalidate()
}

// IsEnabledForUser implements AppManager.
func (m *Manager) IsEnabledForUser(ctx context.Context, appID string, user *models.User) (bool, error) {
	if m.isAlwaysEnabled(appID) {
		return true, nil
	}

	installed, err := m.loadInstalled(ctx)
	if err != nil {
		return false, err
	}

	enablement, ok := installed[appID]
	if !ok {
		return false, nil
	}

	if user == nil {
		user, _ = auth.UserFromContext(ctx)
	}

	if enablement.ForEveryone() {
		return true, nil
	}
	if user == nil {
		// Group restricted apps are never enabled for anonymous callers
		return false, nil
	}
	return enablement.AllowsGroups(user.Groups), nil
}

// IsInstalled implements AppManager.
func (m *Manager) IsInstalled(ctx context.Context, appID string) (bool, error) {
	installed, err := m.loadInstalled(ctx)
	if err != nil {
		return false, err
	}
	_, ok := installed[appID]
	return ok, nil
}

// EnableApp implements AppManager.
func (m *Manager) EnableApp(ctx context.Context, appID string) error {
	return m.setEnablement(ctx, appID, models.Enablement{Enabled: true}, constants.LogEventAppEnabled)
}

// EnableAppForGroups implements AppManager. An empty group list is a validation error.
func (m *Manager) EnableAppForGroups(ctx context.Context, appID string, groups []string) error {
	groups = utils.NormalizeList(groups)
	if len(groups) == 0 {
		return utils.NewValidationError("groups", "At least one group is required")
	}
	return m.setEnablement(ctx, appID, models.Enablement{Enabled: true, Groups: groups}, constants.LogEventAppEnabled)
}

// DisableApp implements AppManager.
func (m *Manager) DisableApp(ctx context.Context, appID string) error {
	if m.isAlwaysEnabled(appID) {
		return utils.NewOperationFailedError(constants.MsgAppCannotBeDisabled)
	}
	return m.setEnablement(ctx, appID, models.Enablement{}, constants.LogEventAppDisabled)
}

func (m *Manager) setEnablement(ctx context.Context, appID string, enablement models.Enablement, event string) error {
	if err := utils.ValidateAppID(appID); err != nil {
		return err
	}

	// Invalidate even when the write fails, the stored state is unknown then
	defer m.invalidate()

	if err := m.repo.SetValue(ctx, appID, constants.ConfigKeyEnabled, enablement.Value()); err != nil {
		return err
	}

	var userID string
	if user, ok := auth.UserFromContext(ctx); ok {
		userID = user.ID
	}
	utils.LogAppEvent(event, appID, userID, enablement.Groups)

	return nil
}

// GetEnabledAppsForUser implements AppManager.
func (m *Manager) GetEnabledAppsForUser(ctx context.Context, user *models.User) ([]string, error) {
	installed, err := m.loadInstalled(ctx)
	if err != nil {
		return nil, err
	}

	var groups []string
	if user != nil {
		groups = user.Groups
	}

	enabled := make([]string, 0, len(installed))
	for appID, enablement := range installed {
		if m.isAlwaysEnabled(appID) || enablement.AllowsGroups(groups) {
			enabled = append(enabled, appID)
		}
	}
	sort.Strings(enabled)
	return enabled, nil
}

// GetInstalledApps implements AppManager.
func (m *Manager) GetInstalledApps(ctx context.Context) ([]string, error) {
	installed, err := m.loadInstalled(ctx)
	if err != nil {
		return nil, err
	}

	apps := make([]string, 0, len(installed))
	for appID := range installed {
		apps = append(apps, appID)
	}
	sort.Strings(apps)
	return apps, nil
}

// GetAppStatus describes one app. Unknown apps are reported as not found.
func (m *Manager) GetAppStatus(ctx context.Context, appID string) (*models.AppStatus, error) {
	installed, err := m.loadInstalled(ctx)
	if err != nil {
		return nil, err
	}

	enablement, ok := installed[appID]
	if !ok {
		return nil, utils.NewNotFoundError("App", appID)
	}

	groups := enablement.Groups
	if groups == nil {
		groups = []string{}
	}

	version, err := m.repo.GetValue(ctx, appID, constants.ConfigKeyInstalledVersion)
	if err != nil && !utils.IsNotFoundError(err) {
		return nil, err
	}

	return &models.AppStatus{
		ID:        appID,
		Installed: true,
		Enabled:   enablement.Enabled,
		Groups:    groups,
		Version:   version,
	}, nil
}

// ListApps returns the installed apps, optionally filtered by enabled state.
// Group restricted apps count as enabled.
func (m *Manager) ListApps(ctx context.Context, filter string) ([]string, error) {
	installed, err := m.loadInstalled(ctx)
	if err != nil {
		return nil, err
	}

	switch filter {
	case "", constants.FilterEnabled, constants.FilterDisabled:
	default:
		return nil, utils.NewValidationError(constants.QueryParamFilter, "Filter must be enabled or disabled")
	}

	apps := make([]string, 0, len(installed))
	for appID, enablement := range installed {
		enabled := enablement.Enabled
		if (filter == constants.FilterEnabled && !enabled) || (filter == constants.FilterDisabled && enabled) {
			continue
		}
		apps = append(apps, appID)
	}
	sort.Strings(apps)
	return apps, nil
}

func (m *Manager) isAlwaysEnabled(appID string) bool {
	return utils.ContainsString(m.alwaysEnabled, appID)
}
