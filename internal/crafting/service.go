package crafting

import (
	"context"
	"fmt"

	"github.com/osse101/IconIdle_Go/internal/domain"
	"github.com/osse101/IconIdle_Go/internal/event"
	"github.com/osse101/IconIdle_Go/internal/logger"
	"github.com/osse101/IconIdle_Go/internal/metrics"
)

// Inventory is the icon collaborator crafted results are committed to
type Inventory interface {
	AddIcon(ctx context.Context, iconID string, quantity int) error
	UnlockIcon(ctx context.Context, iconID string) (bool, error)
}

// IconLookup resolves result ids to catalog entries
type IconLookup interface {
	GetByID(id string) (domain.Icon, bool)
}

// DiscoverySaver persists the discovered recipe ids of a player
type DiscoverySaver interface {
	SaveDiscovery(ctx context.Context, playerID string, blob domain.DiscoveryBlob) error
}

// Service resolves ingredient submissions for one player
type Service struct {
	playerID  string
	registry  *Registry
	icons     IconLookup
	inventory Inventory
	saver     DiscoverySaver
	bus       event.Bus
}

// NewService creates a crafting service bound to one player's registry
func NewService(playerID string, registry *Registry, icons IconLookup, inventory Inventory, saver DiscoverySaver, bus event.Bus) *Service {
	return &Service{
		playerID:  playerID,
		registry:  registry,
		icons:     icons,
		inventory: inventory,
		saver:     saver,
		bus:       bus,
	}
}

// Registry exposes the player's recipe registry
func (s *Service) Registry() *Registry {
	return s.registry
}

// Craft matches the submission and commits the result icon.
// No match is reported in the result, not as an error.
func (s *Service) Craft(ctx context.Context, ingredients []string) (*domain.CraftResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCraftCalled, "ingredients", ingredients)

	if len(ingredients) == 0 || len(ingredients) > MaxIngredients {
		return nil, fmt.Errorf("%w: submit between 1 and %d ingredients", domain.ErrInvalidInput, MaxIngredients)
	}

	recipe, ok := s.registry.FindMatch(ingredients)
	if !ok {
		metrics.CraftAttempts.WithLabelValues(metrics.OutcomeNoMatch).Inc()
		log.Debug(LogMsgNoMatch, "ingredients", ingredients)
		return &domain.CraftResult{Matched: false}, nil
	}
	metrics.CraftAttempts.WithLabelValues(metrics.OutcomeMatched).Inc()

	result := &domain.CraftResult{Matched: true}

	if s.registry.MarkDiscovered(recipe.ID) {
		result.NewDiscovery = true
		log.Info(LogMsgRecipeDiscovered, "recipe_id", recipe.ID)
		s.persistDiscovery(ctx)
		s.publish(ctx, event.NewRecipeDiscoveredEvent(s.playerID, recipe.ID, recipe.ResultID))
	}
	recipe.Discovered = true
	result.Recipe = recipe

	icon, found := s.icons.GetByID(recipe.ResultID)
	if !found {
		icon = domain.Icon{ID: recipe.ResultID, DisplayName: recipe.DisplayName}
	}
	result.Result = &icon

	if err := s.inventory.AddIcon(ctx, icon.ID, 1); err != nil {
		log.Error(LogMsgInventoryAddFailed, "icon_id", icon.ID, "error", err)
		return result, nil
	}
	isNew, err := s.inventory.UnlockIcon(ctx, icon.ID)
	if err != nil {
		log.Error(LogMsgInventoryUnlockFail, "icon_id", icon.ID, "error", err)
		return result, nil
	}
	if isNew {
		result.NewlyUnlocked = true
		s.publish(ctx, event.NewIconUnlockedEvent(s.playerID, icon.ID, EventSource))
	}

	return result, nil
}

// ListDiscovered returns the player's discovered recipes
func (s *Service) ListDiscovered() []*domain.Recipe {
	return s.registry.ListDiscovered()
}

// RestoreDiscovery marks recipes from a loaded save as discovered
func (s *Service) RestoreDiscovery(ctx context.Context, blob domain.DiscoveryBlob) {
	for _, id := range blob.DiscoveredRecipeIDs {
		if _, ok := s.registry.Get(id); !ok {
			logger.FromContext(ctx).Warn(LogMsgUnknownDiscoveredID, "recipe_id", id)
			continue
		}
		s.registry.MarkDiscovered(id)
	}
}

func (s *Service) persistDiscovery(ctx context.Context) {
	if s.saver == nil {
		return
	}
	blob := domain.DiscoveryBlob{DiscoveredRecipeIDs: s.registry.DiscoveredIDs()}
	if err := s.saver.SaveDiscovery(ctx, s.playerID, blob); err != nil {
		logger.FromContext(ctx).Error(LogMsgSaveDiscoveryFailed, "error", err)
	}
}

func (s *Service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}
