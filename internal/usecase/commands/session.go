package commands

import (
	"context"

	"vending-server/internal/domain/character"
	"vending-server/internal/pkg/config"
	"vending-server/internal/pkg/errs"
	"vending-server/internal/usecase/shared"
)

//go:generate mockgen -source=session.go -destination=../../../tests/mock/commands/session.go -package=commandsmock

type SessionCommands interface {
	Connect(ctx context.Context, id character.ID) (*character.Character, error)
	Disconnect(ctx context.Context, charID int32) error
	DisconnectAll(ctx context.Context) int
}

func NewSessionCommands(deps Deps, cfg config.VendingConfig, persist config.PersistenceConfig) SessionCommands {
	return NewVendingCommands(deps, cfg, persist).(*vendingCommandsImpl)
}

// Connect makes a character resident as a live player. A resident
// autotrader of the same character is closed and replaced.
func (v *vendingCommandsImpl) Connect(ctx context.Context, id character.ID) (*character.Character, error) {
	if cur, ok := v.Sessions.ByCharID(id.CharID); ok {
		if !cur.IsAutotrader() {
			return nil, shared.ErrAlreadyOnline
		}
		v.quit(ctx, cur, true)
		v.Logger.InfoContext(ctx, "autotrader replaced by login", "char", id.String())
	}

	snap, err := v.Chars.Load(ctx, id)
	if err != nil {
		return nil, errs.Wrapf(err, "load character %s", id)
	}
	c := character.FromSnapshot(snap, character.KindPlayer)
	if err := v.Sessions.Attach(c); err != nil {
		return nil, err
	}
	v.Logger.InfoContext(ctx, "character connected", "char", id.String())
	return c, nil
}

// Disconnect ends a live player's session, closing their shop. Autotraders
// have no connection to drop.
func (v *vendingCommandsImpl) Disconnect(ctx context.Context, charID int32) error {
	c, ok := v.Sessions.ByCharID(charID)
	if !ok || c.IsAutotrader() {
		return shared.ErrCharacterOffline
	}
	v.quit(ctx, c, true)
	v.Logger.InfoContext(ctx, "character disconnected", "char", c.ID().String())
	return nil
}

// DisconnectAll empties the world at process stop. Live shops are closed
// normally; autotrader shops keep their rows so they restore on next boot.
func (v *vendingCommandsImpl) DisconnectAll(ctx context.Context) int {
	all := v.Sessions.All()
	for _, c := range all {
		v.quit(ctx, c, !c.IsAutotrader())
	}
	return len(all)
}

func (v *vendingCommandsImpl) quit(ctx context.Context, c *character.Character, purge bool) {
	v.closeShop(ctx, c, purge)
	v.checkpoint(ctx, c)
	v.Sessions.Detach(c.ID().CharID)
}
