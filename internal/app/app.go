// internal/app/app.go
package app

import (
	"errors"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/logr"

	"github.com/llehouerou/timesplit/internal/config"
	"github.com/llehouerou/timesplit/internal/keymap"
	"github.com/llehouerou/timesplit/internal/splitter"
)

// errLocked is shown when a drag is refused because the minimum share
// cannot hold for every item.
var errLocked = errors.New("minimum share cannot hold for every item")

// Model is the root application model containing all state.
type Model struct {
	Splitter splitter.Model[config.Item]
	Help     help.Model
	Keys     *keymap.Resolver
	Logger   logr.Logger
	Notice   string
	Width    int
	Height   int
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// New creates a new application model from configuration.
func New(cfg *config.Config, logger logr.Logger) (Model, error) {
	if err := cfg.Validate(); err != nil {
		return Model{}, err
	}
	total, err := cfg.TotalDuration()
	if err != nil {
		return Model{}, err
	}

	items := cfg.GetItems()
	constraints := cfg.GetConstraints()

	logger.Info("starting",
		"items", len(items),
		"total", total.String(),
		"minShare", constraints.MinShare,
		"push", constraints.EnablePush)
	if !constraints.Feasible(len(items)) {
		logger.Info("minimum share infeasible, separators locked",
			"minShare", constraints.MinShare, "items", len(items))
	}

	sp := splitter.New(items, cfg.InitialShares(items), splitter.Options{
		Total:       total,
		Constraints: constraints,
		MaxDistance: cfg.GetMaxDistance(),
		Logger:      logger.WithName("splitter"),
	})

	return Model{
		Splitter: sp,
		Help:     help.New(),
		Keys:     keymap.ForContexts("global"),
		Logger:   logger,
	}, nil
}
