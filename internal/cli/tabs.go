package cli

import (
	"tpstats/domain/timepoint"
	"tpstats/internal/config"
	"tpstats/internal/errors"
	"tpstats/ui/view"
)

// tabsFromConfig converts the configured timepoints into page tabs
func tabsFromConfig(timepoints []config.TimepointConfig) ([]view.Tab, error) {
	tabs := make([]view.Tab, 0, len(timepoints))
	for _, tp := range timepoints {
		id, err := timepoint.ParseID(tp.ID)
		if err != nil {
			return nil, errors.WithCode(errors.CodeConfigInvalid, errors.Wrapf(err, "timepoint %q", tp.ID))
		}
		tabs = append(tabs, view.Tab{ID: id, Label: tp.Label, Active: tp.Active})
	}
	return tabs, nil
}

// selectTabs keeps the tabs named by ids, in the order given. No ids keeps
// every tab.
func selectTabs(tabs []view.Tab, ids []string) ([]view.Tab, error) {
	if len(ids) == 0 {
		return tabs, nil
	}
	byID := make(map[timepoint.ID]view.Tab, len(tabs))
	for _, tab := range tabs {
		byID[tab.ID] = tab
	}
	selected := make([]view.Tab, 0, len(ids))
	for _, raw := range ids {
		id, err := timepoint.ParseID(raw)
		if err != nil {
			return nil, errors.InvalidInput(err.Error())
		}
		tab, ok := byID[id]
		if !ok {
			tab = view.Tab{ID: id}
		}
		tab.Active = false
		selected = append(selected, tab)
	}
	return selected, nil
}
